package response

const (
	MessageSuccess            = "Success"
	DefaultUnavailableMessage = "Service unavailable"

	// BadRequestErrorCode is the error_code of errors without an explicit status.
	BadRequestErrorCode = 1
)
