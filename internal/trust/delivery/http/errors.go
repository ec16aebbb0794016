package http

import (
	"errors"

	"moderation-srv/internal/trust"
	pkgErrors "moderation-srv/pkg/errors"
)

var (
	errUserIDRequired = pkgErrors.NewHTTPError(400, "User ID is required")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, trust.ErrUserIDRequired):
		return errUserIDRequired
	default:
		panic(err)
	}
}
