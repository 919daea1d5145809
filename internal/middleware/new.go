package middleware

import (
	"codeatlas-gateway/pkg/kvstore"
	"codeatlas-gateway/pkg/log"
)

type Middleware struct {
	l         log.Logger
	jwtSecret string
	sessions  *kvstore.Store
}

func New(l log.Logger, jwtSecret string, sessions *kvstore.Store) Middleware {
	return Middleware{
		l:         l,
		jwtSecret: jwtSecret,
		sessions:  sessions,
	}
}
