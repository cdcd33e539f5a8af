package http

import (
	"encoding/base64"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"detection-srv/internal/analysis"
)

type analyzeFramesReq struct {
	Frames  []string `json:"frames"`
	Context string   `json:"context"`
}

func (h *handler) processAnalyzeMediaRequest(c *gin.Context) (analysis.AnalyzeMediaInput, multipart.File, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return analysis.AnalyzeMediaInput{}, nil, errFileRequired
	}

	file, err := fileHeader.Open()
	if err != nil {
		return analysis.AnalyzeMediaInput{}, nil, err
	}

	return analysis.AnalyzeMediaInput{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Reader:   file,
		Context:  c.PostForm("context"),
	}, file, nil
}

func (h *handler) processAnalyzeFramesRequest(c *gin.Context) (analysis.AnalyzeFramesInput, error) {
	var req analyzeFramesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return analysis.AnalyzeFramesInput{}, err
	}
	if len(req.Frames) == 0 {
		return analysis.AnalyzeFramesInput{}, errFramesRequired
	}

	frames := make([][]byte, 0, len(req.Frames))
	for _, encoded := range req.Frames {
		raw, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return analysis.AnalyzeFramesInput{}, errFrameEncoding
		}
		frames = append(frames, raw)
	}

	return analysis.AnalyzeFramesInput{
		Frames:  frames,
		Context: req.Context,
	}, nil
}
