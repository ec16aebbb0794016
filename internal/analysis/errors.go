package analysis

import "errors"

var (
	ErrInvalidContentType = errors.New("invalid content type")
	ErrContentIDRequired  = errors.New("content_id is required")
	ErrContentRequired    = errors.New("content text is required")
)
