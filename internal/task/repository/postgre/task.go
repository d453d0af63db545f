package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"tasktrack/internal/model"
	"tasktrack/internal/task"
	repo "tasktrack/internal/task/repository"
)

const taskColumns = `t.id, t.category_id, c.name, t.title, t.status, t.created_at,
	t.estimated_hours, t.actual_hours, t.is_working, t.work_start_time, t.tracked, t.due_date`

// scanTask reads one joined task row into the domain entity.
func scanTask(row interface{ Scan(...any) error }) (task.Task, error) {
	var (
		t         task.Task
		estimated sql.NullFloat64
		workStart sql.NullTime
		dueDate   sql.NullTime
	)
	err := row.Scan(
		&t.ID, &t.CategoryID, &t.CategoryName, &t.Title, &t.Status, &t.CreatedAt,
		&estimated, &t.ActualHours, &t.IsWorking, &workStart, &t.Tracked, &dueDate,
	)
	if err != nil {
		return task.Task{}, err
	}
	if estimated.Valid {
		t.EstimatedHours = &estimated.Float64
	}
	if workStart.Valid {
		t.WorkStartTime = &workStart.Time
	}
	if dueDate.Valid {
		t.DueDate = &dueDate.Time
	}
	return t, nil
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, sc model.Scope, opt repo.CreateTaskOptions) (task.Task, error) {
	const query = `
		WITH inserted AS (
			INSERT INTO tasks (id, user_id, category_id, title, status, created_at,
				estimated_hours, actual_hours, is_working, tracked, due_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, 0, FALSE, FALSE, $8)
			RETURNING *
		)
		SELECT ` + taskColumns + `
		FROM inserted t JOIN categories c ON c.id = t.category_id`

	row := r.db.QueryRowContext(ctx, query,
		opt.ID, sc.UserID, opt.CategoryID, opt.Title, opt.Status, opt.CreatedAt,
		floatPtr(opt.EstimatedHours), timePtr(opt.DueDate),
	)
	t, err := scanTask(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found — do NOT return error
// for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, sc model.Scope, opt repo.GetOneTaskOptions) (task.Task, error) {
	mods, args := r.buildGetOneQuery(sc, opt)
	query := fmt.Sprintf(
		`SELECT %s FROM tasks t JOIN categories c ON c.id = t.category_id WHERE %s LIMIT 1`,
		taskColumns, mods,
	)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return task.Task{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return task.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns the user's tasks matching the filters, newest first.
// View ordering is applied in memory by the caller.
func (r *implRepository) ListTasks(ctx context.Context, sc model.Scope, opt repo.ListTasksOptions) ([]task.Task, error) {
	mods, args := r.buildListQuery(sc, opt)
	query := fmt.Sprintf(
		`SELECT %s FROM tasks t JOIN categories c ON c.id = t.category_id WHERE %s ORDER BY t.created_at DESC`,
		taskColumns, mods,
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, sErr := scanTask(rows)
		if sErr != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), sErr)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask writes the full mutable field set and returns the updated
// entity. Returns zero-value Task when the row does not exist for this user.
func (r *implRepository) UpdateTask(ctx context.Context, sc model.Scope, opt repo.UpdateTaskOptions) (task.Task, error) {
	const query = `
		WITH updated AS (
			UPDATE tasks
			SET category_id = $1, title = $2, status = $3, estimated_hours = $4,
				actual_hours = $5, is_working = $6, work_start_time = $7,
				tracked = $8, due_date = $9
			WHERE id = $10 AND user_id = $11
			RETURNING *
		)
		SELECT ` + taskColumns + `
		FROM updated t JOIN categories c ON c.id = t.category_id`

	row := r.db.QueryRowContext(ctx, query,
		opt.CategoryID, opt.Title, opt.Status, floatPtr(opt.EstimatedHours),
		opt.ActualHours, opt.IsWorking, timePtr(opt.WorkStartTime),
		opt.Tracked, timePtr(opt.DueDate), opt.ID, sc.UserID,
	)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a Task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, sc model.Scope, id string) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, sc.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
