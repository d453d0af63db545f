package usecase_test

import (
	"context"

	"tasktrack/internal/category"
	catRepo "tasktrack/internal/category/repository"
	"tasktrack/internal/model"
	"tasktrack/internal/task"
	"tasktrack/internal/task/repository"
)

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

// mockTaskRepo implements repository.Repository with overridable funcs.
type mockTaskRepo struct {
	createFunc func(opt repository.CreateTaskOptions) (task.Task, error)
	getFunc    func(opt repository.GetOneTaskOptions) (task.Task, error)
	listFunc   func(opt repository.ListTasksOptions) ([]task.Task, error)
	updateFunc func(opt repository.UpdateTaskOptions) (task.Task, error)
	deleteFunc func(id string) error
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, sc model.Scope, opt repository.CreateTaskOptions) (task.Task, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return task.Task{}, nil
}

func (m *mockTaskRepo) GetOneTask(ctx context.Context, sc model.Scope, opt repository.GetOneTaskOptions) (task.Task, error) {
	if m.getFunc != nil {
		return m.getFunc(opt)
	}
	return task.Task{}, nil
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, sc model.Scope, opt repository.ListTasksOptions) ([]task.Task, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockTaskRepo) UpdateTask(ctx context.Context, sc model.Scope, opt repository.UpdateTaskOptions) (task.Task, error) {
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return task.Task{}, nil
}

func (m *mockTaskRepo) DeleteTask(ctx context.Context, sc model.Scope, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

// mockCategoryRepo implements the category repository with a fixed name set.
type mockCategoryRepo struct {
	categories map[string]category.Category
}

func (m *mockCategoryRepo) CreateCategory(ctx context.Context, sc model.Scope, opt catRepo.CreateCategoryOptions) (category.Category, error) {
	return category.Category{}, nil
}

func (m *mockCategoryRepo) GetOneCategory(ctx context.Context, sc model.Scope, opt catRepo.GetOneCategoryOptions) (category.Category, error) {
	if opt.Name != "" {
		return m.categories[opt.Name], nil
	}
	for _, c := range m.categories {
		if c.ID == opt.ID {
			return c, nil
		}
	}
	return category.Category{}, nil
}

func (m *mockCategoryRepo) ListCategories(ctx context.Context, sc model.Scope) ([]category.Category, error) {
	out := make([]category.Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCategoryRepo) UpdateCategory(ctx context.Context, sc model.Scope, opt catRepo.UpdateCategoryOptions) (category.Category, error) {
	return category.Category{}, nil
}

func (m *mockCategoryRepo) DeleteCategory(ctx context.Context, sc model.Scope, id int64) (int, error) {
	return 0, nil
}

func workCategories() *mockCategoryRepo {
	return &mockCategoryRepo{categories: map[string]category.Category{
		"Work": {ID: 1, Name: "Work"},
		"Home": {ID: 2, Name: "Home"},
	}}
}
