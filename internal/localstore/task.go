package localstore

import (
	"context"
	"sort"

	"tasktrack/internal/model"
	"tasktrack/internal/task"
	repo "tasktrack/internal/task/repository"
	"tasktrack/pkg/log"
)

type taskRepository struct {
	s *Store
	l log.Logger
}

// TaskRepository exposes the store through the task domain's Repository port.
func (s *Store) TaskRepository() repo.Repository {
	return &taskRepository{s: s, l: s.l}
}

func categoryName(st *userState, categoryID int64) string {
	for _, cat := range st.Categories {
		if cat.ID == categoryID {
			return cat.Name
		}
	}
	return ""
}

func (r *taskRepository) CreateTask(ctx context.Context, sc model.Scope, opt repo.CreateTaskOptions) (task.Task, error) {
	var created task.Task
	err := r.s.mutate(ctx, sc.UserID, func(st *userState) error {
		created = task.Task{
			ID:             opt.ID,
			CategoryID:     opt.CategoryID,
			CategoryName:   categoryName(st, opt.CategoryID),
			Title:          opt.Title,
			Status:         opt.Status,
			CreatedAt:      opt.CreatedAt,
			EstimatedHours: opt.EstimatedHours,
			DueDate:        opt.DueDate,
		}
		st.Tasks = append(st.Tasks, created)
		return nil
	})
	if err != nil {
		return task.Task{}, repo.ErrFailedToInsert
	}
	return created, nil
}

func (r *taskRepository) GetOneTask(ctx context.Context, sc model.Scope, opt repo.GetOneTaskOptions) (task.Task, error) {
	var found task.Task
	err := r.s.view(ctx, sc.UserID, func(st *userState) error {
		for _, t := range st.Tasks {
			if t.ID == opt.ID {
				found = t
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return task.Task{}, repo.ErrFailedToGet
	}
	return found, nil
}

func (r *taskRepository) ListTasks(ctx context.Context, sc model.Scope, opt repo.ListTasksOptions) ([]task.Task, error) {
	var tasks []task.Task
	err := r.s.view(ctx, sc.UserID, func(st *userState) error {
		for _, t := range st.Tasks {
			if opt.Status != "" && t.Status != opt.Status {
				continue
			}
			if opt.CategoryID != 0 && t.CategoryID != opt.CategoryID {
				continue
			}
			tasks = append(tasks, t)
		}
		return nil
	})
	if err != nil {
		return nil, repo.ErrFailedToList
	}

	// Newest first, matching the SQL repository's ordering.
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (r *taskRepository) UpdateTask(ctx context.Context, sc model.Scope, opt repo.UpdateTaskOptions) (task.Task, error) {
	var updated task.Task
	err := r.s.mutate(ctx, sc.UserID, func(st *userState) error {
		for i := range st.Tasks {
			if st.Tasks[i].ID != opt.ID {
				continue
			}
			t := &st.Tasks[i]
			t.CategoryID = opt.CategoryID
			t.CategoryName = categoryName(st, opt.CategoryID)
			t.Title = opt.Title
			t.Status = opt.Status
			t.EstimatedHours = opt.EstimatedHours
			t.ActualHours = opt.ActualHours
			t.IsWorking = opt.IsWorking
			t.WorkStartTime = opt.WorkStartTime
			t.Tracked = opt.Tracked
			t.DueDate = opt.DueDate
			updated = *t
			return nil
		}
		return nil
	})
	if err != nil {
		return task.Task{}, repo.ErrFailedToUpdate
	}
	return updated, nil
}

func (r *taskRepository) DeleteTask(ctx context.Context, sc model.Scope, id string) error {
	err := r.s.mutate(ctx, sc.UserID, func(st *userState) error {
		kept := st.Tasks[:0]
		for _, t := range st.Tasks {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		st.Tasks = kept
		return nil
	})
	if err != nil {
		return repo.ErrFailedToDelete
	}
	return nil
}
