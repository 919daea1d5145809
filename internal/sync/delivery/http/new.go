package http

import (
	"codeatlas-gateway/internal/sync"
	"codeatlas-gateway/pkg/log"
)

// Handler is the public interface for the sync HTTP delivery layer.
type Handler interface {
	Upload(c interface{})
	Sync(c interface{})
	SetupWebhook(c interface{})
	SetupExistingWebhook(c interface{})
}

type handler struct {
	l  log.Logger
	uc sync.UseCase
}

// New creates a new HTTP handler for the sync domain.
func New(l log.Logger, uc sync.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
