package stats

import "time"

// Overview is the dashboard's headline completion figure.
type Overview struct {
	Total   int
	Done    int
	Percent int
}

// CategoryProgress is one category's done/total bar. Categories without
// tasks are omitted from the progress list entirely.
type CategoryProgress struct {
	CategoryID int64
	Name       string
	Total      int
	Done       int
	Percent    int
}

// EffortSummary compares estimated effort against recorded effort for the
// incomplete tasks of one category (or of all categories).
type EffortSummary struct {
	Category       string
	TaskCount      int
	EstimatedHours float64
	ActualSeconds  float64
	Percent        int
}

// DailyEntry is one calendar day's per-category effort breakdown. Hours is
// empty (non-nil) on days without any attributed effort.
type DailyEntry struct {
	Date  time.Time
	Label string
	Hours map[string]float64
}

// --- UseCase Inputs / Outputs ---

// SummaryInput selects which category to summarize. "all" or empty covers
// every category.
type SummaryInput struct {
	Category string
}

type OverviewOutput struct {
	Overview Overview
}

type CategoriesOutput struct {
	Categories []CategoryProgress
}

type SummaryOutput struct {
	Summary EffortSummary
}

type DailyOutput struct {
	Days []DailyEntry
}
