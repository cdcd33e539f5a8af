package http

import (
	"detection-srv/internal/model"
)

type threatItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

type listThreatsResp struct {
	Threats []threatItem `json:"threats"`
	Total   int          `json:"total"`
}

func (h handler) newListThreatsResp(entries []model.ThreatEntry) listThreatsResp {
	items := make([]threatItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, threatItem{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			Impact:      string(e.Impact),
		})
	}
	return listThreatsResp{
		Threats: items,
		Total:   len(items),
	}
}
