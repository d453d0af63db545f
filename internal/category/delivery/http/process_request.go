package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "tasktrack/pkg/errors"
)

// processCreateReq binds the create category request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the rename request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return req, pkgErrors.NewHTTPError(400, "id must be a positive integer")
	}
	req.ID = id
	return req, nil
}

// processDeleteID parses the URI param for delete.
func (h *handler) processDeleteID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgErrors.NewHTTPError(400, "id must be a positive integer")
	}
	return id, nil
}
