package http

import (
	"errors"

	"codeatlas-gateway/internal/account"
	pkgErrors "codeatlas-gateway/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, account.ErrUserNotFound):
		return pkgErrors.NewHTTPError(404, "user not found")
	case errors.Is(err, account.ErrInvalidToken):
		return pkgErrors.NewHTTPError(422, "provider rejected the credential")
	case errors.Is(err, account.ErrNotLinked):
		return pkgErrors.NewHTTPError(400, "no credential linked for this provider")
	case errors.Is(err, account.ErrMissingArgument):
		return pkgErrors.NewHTTPError(400, "token is required")
	default:
		return err
	}
}
