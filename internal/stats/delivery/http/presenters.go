package http

import (
	"detection-srv/internal/model"
	"detection-srv/pkg/response"
)

type getStatsResp struct {
	TotalAnalyses int64              `json:"total_analyses"`
	FakeCount     int64              `json:"fake_count"`
	RealCount     int64              `json:"real_count"`
	FakeRatio     float64            `json:"fake_ratio"`
	LastAnalysis  *response.DateTime `json:"last_analysis"`
}

func (h handler) newGetStatsResp(snap model.StatsSnapshot) getStatsResp {
	resp := getStatsResp{
		TotalAnalyses: snap.Total,
		FakeCount:     snap.FakeCount,
		RealCount:     snap.RealCount,
	}
	if snap.Total > 0 {
		resp.FakeRatio = float64(snap.FakeCount) / float64(snap.Total)
	}
	if snap.LastAnalysis != nil {
		dt := response.DateTime(*snap.LastAnalysis)
		resp.LastAnalysis = &dt
	}
	return resp
}
