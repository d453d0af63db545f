package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "tasktrack/pkg/errors"
)

// processCreateReq binds the create task request body and parses the
// optional date-only due date.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.DueDate != "" {
		due, err := h.cal.ParseDate(req.DueDate)
		if err != nil {
			return req, pkgErrors.NewHTTPError(400, "due_date must be YYYY-MM-DD")
		}
		req.dueDate = &due
	}
	return req, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.ErrBadRequest
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, err := h.cal.ParseDate(*req.DueDate)
		if err != nil {
			return req, pkgErrors.NewHTTPError(400, "due_date must be YYYY-MM-DD")
		}
		req.dueDate = &due
	}
	return req, nil
}

// processStopReq binds the stop request body + URI param. An empty body
// means a break rather than a finish.
func (h *handler) processStopReq(c *gin.Context) (stopReq, error) {
	var req stopReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}
