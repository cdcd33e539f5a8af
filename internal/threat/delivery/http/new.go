package http

import (
	"github.com/gin-gonic/gin"

	"detection-srv/internal/threat"
	"detection-srv/pkg/discord"
	"detection-srv/pkg/log"
)

type handler struct {
	l  log.Logger
	uc threat.UseCase
	d  discord.IDiscord
}

type Handler interface {
	ListThreats(c *gin.Context)
}

func New(l log.Logger, uc threat.UseCase, d discord.IDiscord) Handler {
	return &handler{
		l:  l,
		uc: uc,
		d:  d,
	}
}
