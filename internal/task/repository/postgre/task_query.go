package postgre

import (
	"fmt"
	"strings"
	"time"

	"tasktrack/internal/model"
	repo "tasktrack/internal/task/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneTask. The user scope
// is always the first condition.
func (r *implRepository) buildGetOneQuery(sc model.Scope, opt repo.GetOneTaskOptions) (string, []any) {
	conditions := []string{"t.user_id = $1"}
	args := []any{sc.UserID}
	idx := 2

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("t.id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}

	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds WHERE clause + args for ListTasks.
func (r *implRepository) buildListQuery(sc model.Scope, opt repo.ListTasksOptions) (string, []any) {
	conditions := []string{"t.user_id = $1"}
	args := []any{sc.UserID}
	idx := 2

	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("t.status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}
	if opt.CategoryID != 0 {
		conditions = append(conditions, fmt.Sprintf("t.category_id = $%d", idx))
		args = append(args, opt.CategoryID)
		idx++
	}

	return strings.Join(conditions, " AND "), args
}

// floatPtr converts an optional float into a driver-friendly nullable value.
func floatPtr(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

// timePtr converts an optional time into a driver-friendly nullable value.
func timePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
