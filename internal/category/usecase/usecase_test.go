package usecase_test

import (
	"context"
	"errors"
	"testing"

	"tasktrack/internal/category"
	repo "tasktrack/internal/category/repository"
	"tasktrack/internal/category/usecase"
	"tasktrack/internal/model"
)

var testScope = model.Scope{UserID: 1}

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockRepo struct {
	createFunc func(opt repo.CreateCategoryOptions) (category.Category, error)
	getFunc    func(opt repo.GetOneCategoryOptions) (category.Category, error)
	listFunc   func() ([]category.Category, error)
	updateFunc func(opt repo.UpdateCategoryOptions) (category.Category, error)
	deleteFunc func(id int64) (int, error)
}

func (m *mockRepo) CreateCategory(ctx context.Context, sc model.Scope, opt repo.CreateCategoryOptions) (category.Category, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return category.Category{}, nil
}

func (m *mockRepo) GetOneCategory(ctx context.Context, sc model.Scope, opt repo.GetOneCategoryOptions) (category.Category, error) {
	if m.getFunc != nil {
		return m.getFunc(opt)
	}
	return category.Category{}, nil
}

func (m *mockRepo) ListCategories(ctx context.Context, sc model.Scope) ([]category.Category, error) {
	if m.listFunc != nil {
		return m.listFunc()
	}
	return nil, nil
}

func (m *mockRepo) UpdateCategory(ctx context.Context, sc model.Scope, opt repo.UpdateCategoryOptions) (category.Category, error) {
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return category.Category{}, nil
}

func (m *mockRepo) DeleteCategory(ctx context.Context, sc model.Scope, id int64) (int, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return 0, nil
}

func TestCreate(t *testing.T) {
	t.Run("Blank Name Rejected", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{})
		_, err := uc.Create(context.Background(), testScope, category.CreateInput{Name: "  "})
		if !errors.Is(err, category.ErrEmptyName) {
			t.Errorf("expected ErrEmptyName, got %v", err)
		}
	})

	t.Run("Duplicate Name Rejected", func(t *testing.T) {
		r := &mockRepo{getFunc: func(opt repo.GetOneCategoryOptions) (category.Category, error) {
			return category.Category{ID: 1, Name: "Work"}, nil
		}}
		uc := usecase.New(&mockLogger{}, r)
		_, err := uc.Create(context.Background(), testScope, category.CreateInput{Name: "Work"})
		if !errors.Is(err, category.ErrDuplicateName) {
			t.Errorf("expected ErrDuplicateName, got %v", err)
		}
	})

	t.Run("Successful Create Trims Name", func(t *testing.T) {
		var captured repo.CreateCategoryOptions
		r := &mockRepo{createFunc: func(opt repo.CreateCategoryOptions) (category.Category, error) {
			captured = opt
			return category.Category{ID: 3, Name: opt.Name}, nil
		}}
		uc := usecase.New(&mockLogger{}, r)

		out, err := uc.Create(context.Background(), testScope, category.CreateInput{Name: "  Study "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.Name != "Study" || out.Category.ID != 3 {
			t.Errorf("unexpected create: %+v / %+v", captured, out.Category)
		}
	})
}

func TestUpdate(t *testing.T) {
	t.Run("Rename To Existing Name Rejected", func(t *testing.T) {
		r := &mockRepo{getFunc: func(opt repo.GetOneCategoryOptions) (category.Category, error) {
			if opt.ID == 1 {
				return category.Category{ID: 1, Name: "Work"}, nil
			}
			if opt.Name == "Home" {
				return category.Category{ID: 2, Name: "Home"}, nil
			}
			return category.Category{}, nil
		}}
		uc := usecase.New(&mockLogger{}, r)

		_, err := uc.Update(context.Background(), testScope, category.UpdateInput{ID: 1, Name: "Home"})
		if !errors.Is(err, category.ErrDuplicateName) {
			t.Errorf("expected ErrDuplicateName, got %v", err)
		}
	})

	t.Run("Rename To Same Name Allowed", func(t *testing.T) {
		r := &mockRepo{
			getFunc: func(opt repo.GetOneCategoryOptions) (category.Category, error) {
				return category.Category{ID: 1, Name: "Work"}, nil
			},
			updateFunc: func(opt repo.UpdateCategoryOptions) (category.Category, error) {
				return category.Category{ID: opt.ID, Name: opt.Name}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, r)

		if _, err := uc.Update(context.Background(), testScope, category.UpdateInput{ID: 1, Name: "Work"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Unknown Category", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{})
		_, err := uc.Update(context.Background(), testScope, category.UpdateInput{ID: 9, Name: "X"})
		if !errors.Is(err, category.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	t.Run("Reports Cascaded Task Count", func(t *testing.T) {
		r := &mockRepo{
			getFunc: func(opt repo.GetOneCategoryOptions) (category.Category, error) {
				return category.Category{ID: 5, Name: "Work"}, nil
			},
			deleteFunc: func(id int64) (int, error) { return 4, nil },
		}
		uc := usecase.New(&mockLogger{}, r)

		out, err := uc.Delete(context.Background(), testScope, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.DeletedTasks != 4 {
			t.Errorf("expected 4 cascaded tasks, got %d", out.DeletedTasks)
		}
	})

	t.Run("Unknown Category", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockRepo{})
		if _, err := uc.Delete(context.Background(), testScope, 9); !errors.Is(err, category.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}
