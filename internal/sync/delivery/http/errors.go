package http

import (
	"errors"

	"codeatlas-gateway/internal/sync"
	"codeatlas-gateway/pkg/analysis"
	pkgErrors "codeatlas-gateway/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from
// pkg/errors. Downstream analysis-service errors pass through with their
// original status and body.
func (h *handler) mapError(err error) error {
	var statusErr *analysis.StatusError
	if errors.As(err, &statusErr) {
		return pkgErrors.NewHTTPError(statusErr.StatusCode, string(statusErr.Body))
	}

	switch {
	case errors.Is(err, sync.ErrProjectNotFound):
		return pkgErrors.NewHTTPError(404, "project not found")
	case errors.Is(err, sync.ErrUserNotFound):
		return pkgErrors.NewHTTPError(404, "user not found")
	case errors.Is(err, sync.ErrMissingCredential):
		return pkgErrors.NewHTTPError(400, "no provider credential linked to this account")
	case errors.Is(err, sync.ErrWebhookExists):
		return pkgErrors.NewHTTPError(409, "webhook already registered for this project")
	case errors.Is(err, sync.ErrArchiveTooLarge):
		return pkgErrors.NewHTTPError(413, err.Error())
	case errors.Is(err, sync.ErrInvalidArchive):
		return pkgErrors.NewHTTPError(400, "uploaded file must be a zip archive")
	case errors.Is(err, sync.ErrMissingPayload):
		return pkgErrors.NewHTTPError(400, "provide either a zip file or a repository reference")
	case errors.Is(err, sync.ErrDownloadFailed):
		return pkgErrors.NewHTTPError(502, "repository download failed")
	case errors.Is(err, sync.ErrRelayFailed):
		return pkgErrors.NewHTTPError(502, "analysis service unavailable")
	default:
		return err
	}
}
