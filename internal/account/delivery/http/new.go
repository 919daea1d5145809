package http

import (
	"codeatlas-gateway/internal/account"
	"codeatlas-gateway/pkg/log"
)

// Handler is the public interface for the account HTTP delivery layer.
type Handler interface {
	LinkGitHub(c interface{})
	LinkGitLab(c interface{})
	LinkAzure(c interface{})
	ListGitLabRepositories(c interface{})
	ListAzureProjects(c interface{})
	ListAzureRepositories(c interface{})
	ListAzureBranches(c interface{})
}

type handler struct {
	l  log.Logger
	uc account.UseCase
}

// New creates a new HTTP handler for the account domain.
func New(l log.Logger, uc account.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
