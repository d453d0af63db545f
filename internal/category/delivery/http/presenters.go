package http

import (
	"tasktrack/internal/category"
)

// --- Request DTOs ---

type createReq struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

func (r createReq) toInput() category.CreateInput {
	return category.CreateInput{Name: r.Name}
}

type updateReq struct {
	ID   int64  `json:"-"` // populated from URI param
	Name string `json:"name" binding:"required,min=1,max=100"`
}

func (r updateReq) toInput() category.UpdateInput {
	return category.UpdateInput{ID: r.ID, Name: r.Name}
}

// --- Response DTOs ---

type categoryResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newCategoryResp(cat category.Category) categoryResp {
	return categoryResp{ID: cat.ID, Name: cat.Name}
}

type listResp struct {
	Categories []categoryResp `json:"categories"`
}

func (h *handler) newListResp(out category.ListOutput) listResp {
	categories := make([]categoryResp, len(out.Categories))
	for i, cat := range out.Categories {
		categories[i] = newCategoryResp(cat)
	}
	return listResp{Categories: categories}
}

type createResp struct {
	Category categoryResp `json:"category"`
}

func (h *handler) newCreateResp(out category.CreateOutput) createResp {
	return createResp{Category: newCategoryResp(out.Category)}
}

type updateResp struct {
	Category categoryResp `json:"category"`
}

func (h *handler) newUpdateResp(out category.UpdateOutput) updateResp {
	return updateResp{Category: newCategoryResp(out.Category)}
}

type deleteResp struct {
	DeletedTasks int `json:"deleted_tasks"`
}

func (h *handler) newDeleteResp(out category.DeleteOutput) deleteResp {
	return deleteResp{DeletedTasks: out.DeletedTasks}
}
