package category

import (
	"context"

	"tasktrack/internal/model"
)

// UseCase is the category domain's application API. Delete cascades: every
// task referencing the category is removed with it.
type UseCase interface {
	List(ctx context.Context, sc model.Scope) (ListOutput, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id int64) (DeleteOutput, error)
}
