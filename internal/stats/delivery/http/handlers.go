package http

import (
	"github.com/gin-gonic/gin"

	"detection-srv/pkg/response"
)

// @Summary Get analysis statistics
// @Description Return process-wide counters for finished analyses
// @Tags Stats
// @Produce json
// @Param X-API-Key header string false "API key"
// @Success 200 {object} getStatsResp
// @Failure 401 {object} response.Resp "Unauthorized"
// @Router /api/v1/stats [get]
func (h handler) GetStats(c *gin.Context) {
	snap := h.uc.Snapshot()
	response.OK(c, h.newGetStatsResp(snap))
}
