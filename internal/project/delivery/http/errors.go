package http

import (
	"errors"

	"codeatlas-gateway/internal/project"
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
	case errors.Is(err, project.ErrNotFound):
		return pkgErrors.NewHTTPError(404, "project not found")
	case errors.Is(err, project.ErrNameRequired):
		return pkgErrors.NewHTTPError(400, "project name is required")
	default:
		return err
	}
}
