package http

import (
	"github.com/gin-gonic/gin"

	"detection-srv/pkg/response"
)

// @Summary Analyze uploaded media
// @Description Run deepfake detection over one uploaded image or video and return verdict, threats and reasoning
// @Tags Analysis
// @Accept multipart/form-data
// @Produce json
// @Param X-API-Key header string false "API key"
// @Param file formData file true "Media file"
// @Param context formData string false "Deployment context tag (e.g. kyc, vip)"
// @Success 200 {object} analyzeResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 413 {object} response.Resp
// @Failure 415 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/analyze [post]
func (h *handler) AnalyzeMedia(c *gin.Context) {
	ctx := c.Request.Context()

	input, file, err := h.processAnalyzeMediaRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.AnalyzeMedia: processAnalyzeMediaRequest failed: %v", err)
		response.Error(c, err, h.d)
		return
	}
	defer file.Close()

	o, err := h.uc.AnalyzeMedia(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.AnalyzeMedia: usecase AnalyzeMedia failed: %v", err)
		response.Error(c, h.mapError(err), h.d)
		return
	}

	response.OK(c, h.newAnalyzeResp(o))
}

// @Summary Analyze captured frames
// @Description Run deepfake detection over a base64-encoded frame batch captured in the browser
// @Tags Analysis
// @Accept json
// @Produce json
// @Param X-API-Key header string false "API key"
// @Param body body analyzeFramesReq true "Frame batch"
// @Success 200 {object} analyzeResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 413 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/analyze/frames [post]
func (h *handler) AnalyzeFrames(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processAnalyzeFramesRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.AnalyzeFrames: processAnalyzeFramesRequest failed: %v", err)
		response.Error(c, err, h.d)
		return
	}

	o, err := h.uc.AnalyzeFrames(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.AnalyzeFrames: usecase AnalyzeFrames failed: %v", err)
		response.Error(c, h.mapError(err), h.d)
		return
	}

	response.OK(c, h.newAnalyzeResp(o))
}
