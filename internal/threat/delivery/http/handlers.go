package http

import (
	"github.com/gin-gonic/gin"

	"detection-srv/pkg/response"
)

// @Summary List threat taxonomy
// @Description List every threat category the service can report, with impact grading
// @Tags Threat
// @Produce json
// @Param X-API-Key header string false "API key"
// @Success 200 {object} listThreatsResp
// @Failure 401 {object} response.Resp "Unauthorized"
// @Router /api/v1/threats [get]
func (h handler) ListThreats(c *gin.Context) {
	entries := h.uc.Taxonomy()
	response.OK(c, h.newListThreatsResp(entries))
}
