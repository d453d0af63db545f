package http

import (
	"github.com/gin-gonic/gin"

	"tasktrack/internal/middleware"
	"tasktrack/pkg/response"
)

// Overview godoc
// @Summary     Overall completion
// @Description Returns done/total counts and the completion percentage across all tasks.
// @Tags        Stats
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} overviewResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/stats/overview [GET]
func (h *handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Overview(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Overview: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newOverviewResp(output))
}

// Categories godoc
// @Summary     Per-category progress
// @Description Returns done/total per category. Categories without tasks are omitted.
// @Tags        Stats
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} categoriesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/stats/categories [GET]
func (h *handler) Categories(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Categories(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Categories: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCategoriesResp(output))
}

// Summary godoc
// @Summary     Effort summary
// @Description Estimated vs. recorded effort over the incomplete tasks of one category (or all). Running timers count live.
// @Tags        Stats
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       category query string false "Category name (all or empty for every category)"
// @Success     200 {object} summaryResp
// @Failure     404 {object} response.Resp "Category not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/stats/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req summaryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Summary(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSummaryResp(output))
}

// Daily godoc
// @Summary     30-day effort series
// @Description Returns one entry per day for the last 30 local calendar days, each with per-category hour sums.
// @Tags        Stats
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} dailyResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/stats/daily [GET]
func (h *handler) Daily(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Daily(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Daily: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDailyResp(output))
}
