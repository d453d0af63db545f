package usecase

import (
	"context"

	"tasktrack/internal/model"
	"tasktrack/internal/task"
	repo "tasktrack/internal/task/repository"
)

// StartWork opens a work session on an idle task.
func (uc *implUseCase) StartWork(ctx context.Context, sc model.Scope, id string) (task.TimerOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, sc, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.StartWork GetOneTask: %v", err)
		return task.TimerOutput{}, err
	}
	if existing.ID == "" {
		return task.TimerOutput{}, task.ErrTaskNotFound
	}

	if err := existing.Start(uc.clock()); err != nil {
		return task.TimerOutput{}, err
	}

	updated, err := uc.persistTask(ctx, sc, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.StartWork UpdateTask: %v", err)
		return task.TimerOutput{}, err
	}
	return task.TimerOutput{Task: updated}, nil
}

// StopWork closes the open session, folding elapsed time into ActualHours.
// Finalize=true also removes the task from the tracked panel.
func (uc *implUseCase) StopWork(ctx context.Context, sc model.Scope, input task.StopInput) (task.TimerOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, sc, repo.GetOneTaskOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.StopWork GetOneTask: %v", err)
		return task.TimerOutput{}, err
	}
	if existing.ID == "" {
		return task.TimerOutput{}, task.ErrTaskNotFound
	}

	if err := existing.Stop(uc.clock(), input.Finalize); err != nil {
		return task.TimerOutput{}, err
	}

	updated, err := uc.persistTask(ctx, sc, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.StopWork UpdateTask: %v", err)
		return task.TimerOutput{}, err
	}
	return task.TimerOutput{Task: updated}, nil
}

// Elapsed is the pure "observe elapsed time" query the dashboard polls; it
// never mutates timer state.
func (uc *implUseCase) Elapsed(ctx context.Context, sc model.Scope, id string) (task.ElapsedOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, sc, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Elapsed GetOneTask: %v", err)
		return task.ElapsedOutput{}, err
	}
	if existing.ID == "" {
		return task.ElapsedOutput{}, task.ErrTaskNotFound
	}

	return task.ElapsedOutput{
		TaskID:         existing.ID,
		IsWorking:      existing.IsWorking,
		ElapsedSeconds: existing.ElapsedSeconds(uc.clock()),
	}, nil
}
