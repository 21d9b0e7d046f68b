package http

import (
	"github.com/gin-gonic/gin"

	"task-calendar/internal/majortask"
	"task-calendar/pkg/response"
)

// Create godoc
// @Summary     Create a major task
// @Description Defaults: title "Sample Task #<id>", color red, Monday to Wednesday of the given week.
// @Tags        MajorTasks
// @Accept      json
// @Produce     json
// @Param       body body createReq false "Overrides"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/major-tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, err)
			return
		}
	}

	out, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(out.Task))
}

// List godoc
// @Summary     List major tasks
// @Tags        MajorTasks
// @Produce     json
// @Param       week_start query string false "Any day of the week to show (YYYY-MM-DD)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/major-tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, majortask.ListInput{WeekStart: req.WeekStart})
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Update godoc
// @Summary     Update a major task
// @Tags        MajorTasks
// @Accept      json
// @Produce     json
// @Param       id   path string          true "Major task ID"
// @Param       body body majortask.Patch true "Fields to change"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/major-tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	var patch majortask.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Update(ctx, majortask.UpdateInput{ID: c.Param("id"), Patch: patch})
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(out))
}

// Delete godoc
// @Summary     Delete a major task
// @Tags        MajorTasks
// @Produce     json
// @Param       id path string true "Major task ID"
// @Success     200 {object} deleteResp
// @Router      /api/v1/major-tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Delete(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, deleteResp{Found: out.Found})
}
