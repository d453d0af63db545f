package stats

import (
	"context"

	"tasktrack/internal/model"
)

// UseCase serves the dashboard's aggregated views. All reads, no mutation.
type UseCase interface {
	Overview(ctx context.Context, sc model.Scope) (OverviewOutput, error)
	Categories(ctx context.Context, sc model.Scope) (CategoriesOutput, error)
	Summary(ctx context.Context, sc model.Scope, input SummaryInput) (SummaryOutput, error)
	Daily(ctx context.Context, sc model.Scope) (DailyOutput, error)
}
