package localstore

import (
	"context"

	"tasktrack/internal/category"
	repo "tasktrack/internal/category/repository"
	"tasktrack/internal/model"
	"tasktrack/pkg/log"
)

type categoryRepository struct {
	s *Store
	l log.Logger
}

// CategoryRepository exposes the store through the category domain's
// Repository port.
func (s *Store) CategoryRepository() repo.Repository {
	return &categoryRepository{s: s, l: s.l}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, sc model.Scope, opt repo.CreateCategoryOptions) (category.Category, error) {
	var created category.Category
	err := r.s.mutate(ctx, sc.UserID, func(st *userState) error {
		st.NextCategoryID++
		created = category.Category{ID: st.NextCategoryID, Name: opt.Name}
		st.Categories = append(st.Categories, created)
		return nil
	})
	if err != nil {
		return category.Category{}, repo.ErrFailedToInsert
	}
	return created, nil
}

func (r *categoryRepository) GetOneCategory(ctx context.Context, sc model.Scope, opt repo.GetOneCategoryOptions) (category.Category, error) {
	var found category.Category
	err := r.s.view(ctx, sc.UserID, func(st *userState) error {
		for _, cat := range st.Categories {
			if opt.ID != 0 && cat.ID != opt.ID {
				continue
			}
			if opt.Name != "" && cat.Name != opt.Name {
				continue
			}
			found = cat
			return nil
		}
		return nil
	})
	if err != nil {
		return category.Category{}, repo.ErrFailedToGet
	}
	return found, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context, sc model.Scope) ([]category.Category, error) {
	var categories []category.Category
	err := r.s.view(ctx, sc.UserID, func(st *userState) error {
		categories = append(categories, st.Categories...)
		return nil
	})
	if err != nil {
		return nil, repo.ErrFailedToList
	}
	return categories, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, sc model.Scope, opt repo.UpdateCategoryOptions) (category.Category, error) {
	var updated category.Category
	err := r.s.mutate(ctx, sc.UserID, func(st *userState) error {
		for i := range st.Categories {
			if st.Categories[i].ID != opt.ID {
				continue
			}
			st.Categories[i].Name = opt.Name
			updated = st.Categories[i]
			// Tasks carry a denormalized category name; keep it in step.
			for j := range st.Tasks {
				if st.Tasks[j].CategoryID == opt.ID {
					st.Tasks[j].CategoryName = opt.Name
				}
			}
			return nil
		}
		return nil
	})
	if err != nil {
		return category.Category{}, repo.ErrFailedToUpdate
	}
	return updated, nil
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, sc model.Scope, id int64) (int, error) {
	deleted := 0
	err := r.s.mutate(ctx, sc.UserID, func(st *userState) error {
		kept := st.Categories[:0]
		for _, cat := range st.Categories {
			if cat.ID != id {
				kept = append(kept, cat)
			}
		}
		st.Categories = kept

		keptTasks := st.Tasks[:0]
		for _, t := range st.Tasks {
			if t.CategoryID == id {
				deleted++
				continue
			}
			keptTasks = append(keptTasks, t)
		}
		st.Tasks = keptTasks
		return nil
	})
	if err != nil {
		return 0, repo.ErrFailedToDelete
	}
	return deleted, nil
}
