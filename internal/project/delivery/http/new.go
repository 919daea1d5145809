package http

import (
	"codeatlas-gateway/internal/project"
	"codeatlas-gateway/pkg/log"
)

// Handler is the public interface for the project HTTP delivery layer.
type Handler interface {
	Initialize(c interface{})
	List(c interface{})
	Delete(c interface{})
	GenerateSummary(c interface{})
	GenerateDiagram(c interface{})
	AddCollaborator(c interface{})
	RemoveCollaborator(c interface{})
	GetCollaborators(c interface{})
}

type handler struct {
	l  log.Logger
	uc project.UseCase
}

// New creates a new HTTP handler for the project domain.
func New(l log.Logger, uc project.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
