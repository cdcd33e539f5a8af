package middleware

import (
	"detection-srv/pkg/log"
)

type Middleware struct {
	l      log.Logger
	apiKey string
}

func New(l log.Logger, apiKey string) Middleware {
	return Middleware{
		l:      l,
		apiKey: apiKey,
	}
}
