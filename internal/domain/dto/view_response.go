package dto

import (
	"github.com/guttosm/pricediff/internal/comparison"
	"github.com/guttosm/pricediff/internal/domain/models"
	"github.com/guttosm/pricediff/internal/service"
)

// ViewResponse represents the JSON structure returned by the view and
// comparison endpoints.
//
// Changes holds the filtered and ordered rows; Total counts every record in
// the held comparison and Visible the rows that survived the filter.
type ViewResponse struct {
	Loading       bool                  `json:"loading" example:"false"`
	Success       bool                  `json:"success" example:"true"`
	Error         string                `json:"error,omitempty" example:"Error al consultar el backend: Internal Server Error"`
	TodayFile     *models.FileInfo      `json:"today_file,omitempty"`
	YesterdayFile *models.FileInfo      `json:"yesterday_file,omitempty"`
	Changes       []models.ChangeRecord `json:"changes"`
	Total         int                   `json:"total" example:"120"`
	Visible       int                   `json:"visible" example:"14"`
	Filters       comparison.Criteria   `json:"filters"`
	Sort          comparison.SortState  `json:"sort"`
}

// NewViewResponse maps a service view onto the API contract.
func NewViewResponse(v service.View) ViewResponse {
	rows := v.Rows
	if rows == nil {
		rows = []models.ChangeRecord{}
	}
	return ViewResponse{
		Loading:       v.Loading,
		Success:       v.Success,
		Error:         v.Error,
		TodayFile:     v.TodayFile,
		YesterdayFile: v.YesterdayFile,
		Changes:       rows,
		Total:         v.Total,
		Visible:       len(rows),
		Filters:       v.Criteria,
		Sort:          v.Sort,
	}
}

// FilterRequest is the body of PUT /api/v1/view/filters. Omitted fields keep
// their current value.
type FilterRequest struct {
	Search      *string `json:"search,omitempty" example:"ab"`
	OnlyNumeric *bool   `json:"only_numeric,omitempty" example:"false"`
	ShowNew     *bool   `json:"show_new,omitempty" example:"false"`
	ShowMissing *bool   `json:"show_missing,omitempty" example:"true"`
}

// Empty reports whether the request carries no field at all.
func (r FilterRequest) Empty() bool {
	return r.Search == nil && r.OnlyNumeric == nil && r.ShowNew == nil && r.ShowMissing == nil
}

// Apply returns c with every field present in the request replaced.
func (r FilterRequest) Apply(c comparison.Criteria) comparison.Criteria {
	if r.Search != nil {
		c = c.WithSearch(*r.Search)
	}
	if r.OnlyNumeric != nil {
		c = c.WithOnlyNumeric(*r.OnlyNumeric)
	}
	if r.ShowNew != nil {
		c = c.WithShowNew(*r.ShowNew)
	}
	if r.ShowMissing != nil {
		c = c.WithShowMissing(*r.ShowMissing)
	}
	return c
}

// ComparisonQuery binds the query string of GET /api/v1/comparison.
type ComparisonQuery struct {
	Search      string `form:"search" example:"ab"`
	OnlyNumeric bool   `form:"only_numeric" example:"false"`
	ShowNew     bool   `form:"show_new" example:"false"`
	ShowMissing bool   `form:"show_missing" example:"false"`
	Sort        string `form:"sort" example:"difference"`
	Dir         string `form:"dir" example:"desc"`
}

// Criteria returns the filter part of the query.
func (q ComparisonQuery) Criteria() comparison.Criteria {
	return comparison.Criteria{
		Search:      q.Search,
		OnlyNumeric: q.OnlyNumeric,
		ShowNew:     q.ShowNew,
		ShowMissing: q.ShowMissing,
	}
}

// SortState resolves the sort part of the query. Without a column the
// default state applies; a column without a direction sorts ascending.
func (q ComparisonQuery) SortState() (comparison.SortState, error) {
	if q.Sort == "" && q.Dir == "" {
		return comparison.DefaultSortState(), nil
	}

	st := comparison.DefaultSortState()
	if q.Sort != "" {
		col, err := comparison.ParseColumn(q.Sort)
		if err != nil {
			return st, err
		}
		st = comparison.SortState{Column: col, Direction: comparison.Asc}
	}
	if q.Dir != "" {
		dir, err := comparison.ParseDirection(q.Dir)
		if err != nil {
			return st, err
		}
		st.Direction = dir
	}
	return st, nil
}
