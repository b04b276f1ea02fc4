package media

import "errors"

var (
	ErrMissingURL  = errors.New("url is required")
	ErrInvalidURL  = errors.New("invalid url")
	ErrBlockedHost = errors.New("host not allowed")
	ErrUpstream    = errors.New("failed to fetch image")
)
