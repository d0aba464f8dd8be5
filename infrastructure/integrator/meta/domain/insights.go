package metadomain

import "github.com/kayesami/roas-dashboard-api/internal/domain"

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// Paging.Next vem vazio na última página
type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// InsightsResponse é uma página de /act_{id}/insights
type InsightsResponse struct {
	Data   []domain.InsightRecord `json:"data"`
	Paging *Paging                `json:"paging,omitempty"`
}

func (r *InsightsResponse) NextPage() string {
	if r.Paging == nil {
		return ""
	}
	return r.Paging.Next
}

// InsightsParams define o período e o nível de quebra diária
type InsightsParams struct {
	Since         string
	Until         string
	Fields        string
	TimeIncrement int
}
