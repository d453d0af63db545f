package usecase

import (
	"context"

	catRepo "tasktrack/internal/category/repository"
	"tasktrack/internal/model"
	"tasktrack/internal/stats"
	"tasktrack/internal/task"
	taskRepo "tasktrack/internal/task/repository"
)

// Overview reports overall completion.
func (uc *implUseCase) Overview(ctx context.Context, sc model.Scope) (stats.OverviewOutput, error) {
	tasks, err := uc.taskRepo.ListTasks(ctx, sc, taskRepo.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Overview ListTasks: %v", err)
		return stats.OverviewOutput{}, err
	}
	return stats.OverviewOutput{Overview: stats.ComputeOverview(tasks)}, nil
}

// Categories reports per-category completion, skipping empty categories.
func (uc *implUseCase) Categories(ctx context.Context, sc model.Scope) (stats.CategoriesOutput, error) {
	tasks, err := uc.taskRepo.ListTasks(ctx, sc, taskRepo.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Categories ListTasks: %v", err)
		return stats.CategoriesOutput{}, err
	}
	categories, err := uc.catRepo.ListCategories(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Categories ListCategories: %v", err)
		return stats.CategoriesOutput{}, err
	}
	return stats.CategoriesOutput{Categories: stats.ComputeCategoryProgress(tasks, categories)}, nil
}

// Summary reports estimated vs. recorded effort for one category's
// incomplete tasks, or for all of them.
func (uc *implUseCase) Summary(ctx context.Context, sc model.Scope, input stats.SummaryInput) (stats.SummaryOutput, error) {
	opt := taskRepo.ListTasksOptions{}
	label := task.FilterAllCategories

	if input.Category != "" && input.Category != task.FilterAllCategories {
		cat, err := uc.catRepo.GetOneCategory(ctx, sc, catRepo.GetOneCategoryOptions{Name: input.Category})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Summary GetOneCategory: %v", err)
			return stats.SummaryOutput{}, err
		}
		if cat.ID == 0 {
			return stats.SummaryOutput{}, stats.ErrCategoryNotFound
		}
		opt.CategoryID = cat.ID
		label = cat.Name
	}

	tasks, err := uc.taskRepo.ListTasks(ctx, sc, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summary ListTasks: %v", err)
		return stats.SummaryOutput{}, err
	}

	summary := stats.ComputeEffortSummary(tasks, uc.clock())
	summary.Category = label
	return stats.SummaryOutput{Summary: summary}, nil
}

// Daily reports the 30-day per-category effort series.
func (uc *implUseCase) Daily(ctx context.Context, sc model.Scope) (stats.DailyOutput, error) {
	tasks, err := uc.taskRepo.ListTasks(ctx, sc, taskRepo.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Daily ListTasks: %v", err)
		return stats.DailyOutput{}, err
	}
	return stats.DailyOutput{Days: stats.ComputeDailySeries(tasks, uc.clock(), uc.cal)}, nil
}
