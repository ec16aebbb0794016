package moderation

import "errors"

var (
	ErrInvalidContentType = errors.New("invalid content type")
	ErrContentIDRequired  = errors.New("content_id is required")
	ErrInvalidCategory    = errors.New("invalid report category")
	ErrInvalidDecision    = errors.New("invalid decision")
	ErrReportFailed       = errors.New("failed to submit report")
	ErrQueueItemNotFound  = errors.New("queue item not found")
	ErrAlreadyDecided     = errors.New("queue item already decided")
)
