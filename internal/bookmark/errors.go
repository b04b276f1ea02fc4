package bookmark

import "errors"

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubCategoryNotFound = errors.New("sub-category not found")
	ErrBookmarkNotFound    = errors.New("bookmark not found")
	ErrDuplicateURL        = errors.New("url already exists in this sub-category")
	ErrInvalidURL          = errors.New("url must be an absolute http(s) url")
	ErrInvalidName         = errors.New("name must be 1-100 characters")
	ErrInvalidTitle        = errors.New("title must be at most 500 characters")
	ErrInvalidPayload      = errors.New("invalid payload")
	ErrEnhanceRunning      = errors.New("an enhancement job is already running")
)
