package http

import (
	"github.com/gin-gonic/gin"

	"task-calendar/internal/activity"
	"task-calendar/internal/model"
	"task-calendar/internal/subtask"
	"task-calendar/pkg/response"
)

// AddTime godoc
// @Summary     Add or remove worked minutes on a day
// @Description Negative minutes subtract; a day never goes below zero and disappears at zero.
// @Tags        Activity
// @Accept      json
// @Produce     json
// @Param       body body addTimeReq true "Day and minutes"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/activity [POST]
func (h *handler) AddTime(c *gin.Context) {
	ctx := c.Request.Context()

	var req addTimeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.AddTime(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.AddTime: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, dayResp{Date: out.Date, TotalMinutes: out.TotalMinutes})
}

// List godoc
// @Summary     List daily activity
// @Tags        Activity
// @Produce     json
// @Param       from query string false "Range start (YYYY-MM-DD)"
// @Param       to   query string false "Range end (YYYY-MM-DD)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/activity [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Total godoc
// @Summary     Minutes worked on one day
// @Tags        Activity
// @Produce     json
// @Param       date path string true "Day (YYYY-MM-DD)"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/activity/{date} [GET]
func (h *handler) Total(c *gin.Context) {
	ctx := c.Request.Context()
	date := c.Param("date")

	total, err := h.uc.TotalFor(ctx, date)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, dayResp{Date: date, TotalMinutes: total})
}

// Rebuild godoc
// @Summary     Rebuild activity from completed subtasks
// @Description Adds the duration of every completed subtask to the day it was completed on (or its scheduled day). Totals are added to, not replaced, so calling it twice credits the work twice.
// @Tags        Activity
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/activity/rebuild [POST]
func (h *handler) Rebuild(c *gin.Context) {
	ctx := c.Request.Context()

	done, err := h.subtasks.List(ctx, subtask.ListInput{Status: model.StatusCompleted})
	if err != nil {
		h.l.Errorf(ctx, "subtasks.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	out, err := h.uc.Repopulate(ctx, activity.RepopulateInput{Work: activity.WorkFromSubtasks(done.Subtasks)})
	if err != nil {
		h.l.Errorf(ctx, "uc.Repopulate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}
