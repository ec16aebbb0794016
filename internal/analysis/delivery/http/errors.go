package http

import (
	"errors"

	"moderation-srv/internal/analysis"
	pkgErrors "moderation-srv/pkg/errors"
)

var (
	errInvalidContentType = pkgErrors.NewHTTPError(400, "Invalid content type")
	errContentIDRequired  = pkgErrors.NewHTTPError(400, "Content ID is required")
	errContentRequired    = pkgErrors.NewHTTPError(400, "Content text is required")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrInvalidContentType):
		return errInvalidContentType
	case errors.Is(err, analysis.ErrContentIDRequired):
		return errContentIDRequired
	case errors.Is(err, analysis.ErrContentRequired):
		return errContentRequired
	default:
		panic(err)
	}
}
