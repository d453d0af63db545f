package task

import (
	"context"

	"tasktrack/internal/model"
)

// UseCase is the task domain's application API: CRUD plus the effort timer
// operations exposed to the dashboard.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Effort timer
	StartWork(ctx context.Context, sc model.Scope, id string) (TimerOutput, error)
	StopWork(ctx context.Context, sc model.Scope, input StopInput) (TimerOutput, error)
	Elapsed(ctx context.Context, sc model.Scope, id string) (ElapsedOutput, error)
}
