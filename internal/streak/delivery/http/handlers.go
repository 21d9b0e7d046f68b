package http

import (
	"github.com/gin-gonic/gin"

	"task-calendar/internal/streak"
	"task-calendar/pkg/response"
)

type streakResp struct {
	Count          int    `json:"count"`
	LastActiveDate string `json:"lastActiveDate,omitempty"`
}

func newStreakResp(s streak.State) streakResp {
	return streakResp{Count: s.Count, LastActiveDate: s.LastActiveDate}
}

// Get godoc
// @Summary     Current streak
// @Tags        Streak
// @Produce     json
// @Success     200 {object} streakResp
// @Router      /api/v1/streak [GET]
func (h *handler) Get(c *gin.Context) {
	s, err := h.uc.Get(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, newStreakResp(s))
}

// Record godoc
// @Summary     Record activity today
// @Description Starts, extends or restarts the streak depending on the last active day.
// @Tags        Streak
// @Produce     json
// @Success     200 {object} streakResp
// @Router      /api/v1/streak/record [POST]
func (h *handler) Record(c *gin.Context) {
	ctx := c.Request.Context()
	s, err := h.uc.Record(ctx, h.now())
	if err != nil {
		h.l.Errorf(ctx, "uc.Record: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, newStreakResp(s))
}

// Reset godoc
// @Summary     Reset the streak to zero
// @Tags        Streak
// @Produce     json
// @Success     200 {object} streakResp
// @Router      /api/v1/streak/reset [POST]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()
	s, err := h.uc.Reset(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, newStreakResp(s))
}
