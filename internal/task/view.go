package task

import "sort"

// StatusFilter selects tasks by lifecycle state in View.
type StatusFilter string

const (
	FilterAll    StatusFilter = "all"
	FilterActive StatusFilter = "active"
	FilterDone   StatusFilter = "done"
)

// Valid reports whether f is a known filter value.
func (f StatusFilter) Valid() bool {
	return f == FilterAll || f == FilterActive || f == FilterDone
}

// View filters tasks by status and category (logical AND, "all" never
// excludes) and orders the result: active tasks before done tasks, active
// tasks by ascending due date with missing due dates last, done tasks in
// their original relative order. The sort is stable, so equal keys keep
// their input order and the result is deterministic.
func View(tasks []Task, status StatusFilter, category string) []Task {
	filtered := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if status != FilterAll && status != "" && t.Status != Status(status) {
			continue
		}
		if category != FilterAllCategories && category != "" && t.CategoryName != category {
			continue
		}
		filtered = append(filtered, t)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]

		// Done tasks bubble to the end regardless of other fields.
		if a.Status != b.Status {
			return a.Status == StatusActive
		}
		if a.Status != StatusActive {
			return false // done tasks keep original order
		}

		// Within active: ascending due date, nil due dates last.
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return false
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		default:
			return a.DueDate.Before(*b.DueDate)
		}
	})

	return filtered
}

// FilterAllCategories is the category filter value that matches every task.
const FilterAllCategories = "all"
