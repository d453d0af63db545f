package http

import (
	"time"

	"tasktrack/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title          string   `json:"title"           binding:"required,min=1,max=255"`
	Category       string   `json:"category"        binding:"required,min=1,max=100"`
	EstimatedHours *float64 `json:"estimated_hours" binding:"omitempty"`
	DueDate        string   `json:"due_date"        binding:"omitempty"`

	dueDate *time.Time // parsed from DueDate during processing
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:          r.Title,
		CategoryName:   r.Category,
		EstimatedHours: r.EstimatedHours,
		DueDate:        r.dueDate,
	}
}

// ---

type listReq struct {
	Status   string `form:"status"`
	Category string `form:"category"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Status:   task.StatusFilter(r.Status),
		Category: r.Category,
	}
}

// ---

// updateReq is a partial update. A nil due_date leaves the field alone; an
// explicit empty string clears it.
type updateReq struct {
	ID               string   `json:"-"` // populated from URI param
	Title            string   `json:"title"             binding:"omitempty,min=1,max=255"`
	Category         string   `json:"category"          binding:"omitempty,min=1,max=100"`
	Status           string   `json:"status"            binding:"omitempty,oneof=active done"`
	EstimatedHours   *float64 `json:"estimated_hours"   binding:"omitempty"`
	DueDate          *string  `json:"due_date"          binding:"omitempty"`
	ResetActualHours bool     `json:"reset_actual_hours"`

	dueDate *time.Time
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		ID:               r.ID,
		Title:            r.Title,
		CategoryName:     r.Category,
		Status:           task.Status(r.Status),
		EstimatedHours:   r.EstimatedHours,
		ResetActualHours: r.ResetActualHours,
	}
	if r.DueDate != nil {
		if *r.DueDate == "" {
			in.ClearDueDate = true
		} else {
			in.DueDate = r.dueDate
		}
	}
	return in
}

// ---

type stopReq struct {
	ID       string `json:"-"`
	Finalize bool   `json:"finalize"`
}

func (r stopReq) toInput() task.StopInput {
	return task.StopInput{ID: r.ID, Finalize: r.Finalize}
}

// --- Response DTOs ---

type taskResp struct {
	ID             string     `json:"id"`
	CategoryID     int64      `json:"category_id"`
	Category       string     `json:"category"`
	Title          string     `json:"title"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	EstimatedHours *float64   `json:"estimated_hours,omitempty"`
	ActualHours    float64    `json:"actual_hours"`
	IsWorking      bool       `json:"is_working"`
	WorkStartTime  *time.Time `json:"work_start_time,omitempty"`
	Tracked        bool       `json:"tracked"`
	DueDate        *string    `json:"due_date,omitempty"`
}

func (h *handler) newTaskResp(t task.Task) taskResp {
	resp := taskResp{
		ID:             t.ID,
		CategoryID:     t.CategoryID,
		Category:       t.CategoryName,
		Title:          t.Title,
		Status:         string(t.Status),
		CreatedAt:      t.CreatedAt,
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
		IsWorking:      t.IsWorking,
		WorkStartTime:  t.WorkStartTime,
		Tracked:        t.Tracked,
	}
	if t.DueDate != nil {
		due := h.cal.DayKey(*t.DueDate)
		resp.DueDate = &due
	}
	return resp
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: h.newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = h.newTaskResp(t)
	}
	return listResp{Tasks: tasks, Total: out.Total}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: h.newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: h.newTaskResp(out.Task)}
}

type timerResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newTimerResp(out task.TimerOutput) timerResp {
	return timerResp{Task: h.newTaskResp(out.Task)}
}

type elapsedResp struct {
	TaskID         string  `json:"task_id"`
	IsWorking      bool    `json:"is_working"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

func (h *handler) newElapsedResp(out task.ElapsedOutput) elapsedResp {
	return elapsedResp{
		TaskID:         out.TaskID,
		IsWorking:      out.IsWorking,
		ElapsedSeconds: out.ElapsedSeconds,
	}
}
