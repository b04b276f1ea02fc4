package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
	// RequestID echoes X-Request-ID on failures so clients can quote it.
	RequestID string `json:"request_id,omitempty"`
}

// Paging describes a page of a list response.
type Paging struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// NewPaging clamps negative values to zero.
func NewPaging(total, limit, offset int) Paging {
	if total < 0 {
		total = 0
	}
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	return Paging{Total: total, Limit: limit, Offset: offset}
}
