package http

import (
	"tasktrack/internal/stats"
)

// --- Request DTOs ---

type summaryReq struct {
	Category string `form:"category"`
}

func (r summaryReq) toInput() stats.SummaryInput {
	return stats.SummaryInput{Category: r.Category}
}

// --- Response DTOs ---

type overviewResp struct {
	Total   int `json:"total"`
	Done    int `json:"done"`
	Percent int `json:"percent"`
}

func (h *handler) newOverviewResp(out stats.OverviewOutput) overviewResp {
	return overviewResp{
		Total:   out.Overview.Total,
		Done:    out.Overview.Done,
		Percent: out.Overview.Percent,
	}
}

type categoryProgressResp struct {
	CategoryID int64  `json:"category_id"`
	Name       string `json:"name"`
	Total      int    `json:"total"`
	Done       int    `json:"done"`
	Percent    int    `json:"percent"`
}

type categoriesResp struct {
	Categories []categoryProgressResp `json:"categories"`
}

func (h *handler) newCategoriesResp(out stats.CategoriesOutput) categoriesResp {
	categories := make([]categoryProgressResp, len(out.Categories))
	for i, p := range out.Categories {
		categories[i] = categoryProgressResp{
			CategoryID: p.CategoryID,
			Name:       p.Name,
			Total:      p.Total,
			Done:       p.Done,
			Percent:    p.Percent,
		}
	}
	return categoriesResp{Categories: categories}
}

type summaryResp struct {
	Category       string  `json:"category"`
	TaskCount      int     `json:"task_count"`
	EstimatedHours float64 `json:"estimated_hours"`
	ActualSeconds  float64 `json:"actual_seconds"`
	Percent        int     `json:"percent"`
}

func (h *handler) newSummaryResp(out stats.SummaryOutput) summaryResp {
	return summaryResp{
		Category:       out.Summary.Category,
		TaskCount:      out.Summary.TaskCount,
		EstimatedHours: out.Summary.EstimatedHours,
		ActualSeconds:  out.Summary.ActualSeconds,
		Percent:        out.Summary.Percent,
	}
}

type dailyEntryResp struct {
	Date  string             `json:"date"`
	Label string             `json:"label"`
	Hours map[string]float64 `json:"hours"`
}

type dailyResp struct {
	Days []dailyEntryResp `json:"days"`
}

func (h *handler) newDailyResp(out stats.DailyOutput) dailyResp {
	days := make([]dailyEntryResp, len(out.Days))
	for i, day := range out.Days {
		days[i] = dailyEntryResp{
			Date:  day.Date.Format("2006-01-02"),
			Label: day.Label,
			Hours: day.Hours,
		}
	}
	return dailyResp{Days: days}
}
