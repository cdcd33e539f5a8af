package http

import (
	"github.com/gin-gonic/gin"

	"detection-srv/internal/analysis"
	"detection-srv/pkg/discord"
	"detection-srv/pkg/log"
)

type handler struct {
	l     log.Logger
	uc    analysis.UseCase
	model string
	d     discord.IDiscord
}

type Handler interface {
	AnalyzeMedia(c *gin.Context)
	AnalyzeFrames(c *gin.Context)
}

// New builds the analysis handler. model names the detector model reported in
// responses.
func New(l log.Logger, uc analysis.UseCase, model string, d discord.IDiscord) Handler {
	return &handler{
		l:     l,
		uc:    uc,
		model: model,
		d:     d,
	}
}
