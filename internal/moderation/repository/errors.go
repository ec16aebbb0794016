package repository

import "errors"

var (
	ErrReportCreateFailed = errors.New("repository: failed to create report")
	ErrQueueCreateFailed  = errors.New("repository: failed to create queue item")
	ErrQueueItemNotFound  = errors.New("repository: queue item not found")
	ErrQueueUpdateFailed  = errors.New("repository: failed to update queue item")
	ErrRatingNotFound     = errors.New("repository: rating not found")
)
