package http

import (
	"errors"

	"moderation-srv/internal/moderation"
	pkgErrors "moderation-srv/pkg/errors"
)

var (
	errInvalidContentType = pkgErrors.NewHTTPError(400, "Invalid content type")
	errContentIDRequired  = pkgErrors.NewHTTPError(400, "Content ID is required")
	errInvalidCategory    = pkgErrors.NewHTTPError(400, "Invalid report category")
	errInvalidDecision    = pkgErrors.NewHTTPError(400, "Invalid decision")
	errReportFailed       = pkgErrors.NewHTTPError(500, "Failed to submit report")
	errQueueItemNotFound  = pkgErrors.NewHTTPError(404, "Queue item not found")
	errAlreadyDecided     = pkgErrors.NewHTTPError(409, "Queue item already decided")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, moderation.ErrInvalidContentType):
		return errInvalidContentType
	case errors.Is(err, moderation.ErrContentIDRequired):
		return errContentIDRequired
	case errors.Is(err, moderation.ErrInvalidCategory):
		return errInvalidCategory
	case errors.Is(err, moderation.ErrInvalidDecision):
		return errInvalidDecision
	case errors.Is(err, moderation.ErrReportFailed):
		return errReportFailed
	case errors.Is(err, moderation.ErrQueueItemNotFound):
		return errQueueItemNotFound
	case errors.Is(err, moderation.ErrAlreadyDecided):
		return errAlreadyDecided
	default:
		panic(err)
	}
}
