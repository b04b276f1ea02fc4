package metadata

import "errors"

var (
	ErrMissingURL = errors.New("url is required")
	ErrInvalidURL = errors.New("invalid url")
)
