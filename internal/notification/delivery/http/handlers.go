package http

import (
	"github.com/gin-gonic/gin"

	"task-calendar/internal/notification"
	"task-calendar/internal/subtask"
	"task-calendar/pkg/response"
)

type checkResp struct {
	Reminded []int    `json:"reminded"`
	Cleared  []string `json:"cleared"`
}

// CheckUpcoming godoc
// @Summary     Send due reminders
// @Description Sends one reminder per subtask starting within the reminder window and forgets reminders of subtasks that already started.
// @Tags        Reminders
// @Produce     json
// @Success     200 {object} checkResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reminders/check [POST]
func (h *handler) CheckUpcoming(c *gin.Context) {
	ctx := c.Request.Context()

	all, err := h.subtasks.List(ctx, subtask.ListInput{})
	if err != nil {
		h.l.Errorf(ctx, "subtasks.List: %v", err)
		response.InternalError(c, err)
		return
	}

	out, err := h.uc.CheckUpcoming(ctx, notification.CheckInput{Subtasks: all.Subtasks, Now: h.now()})
	if err != nil {
		h.l.Errorf(ctx, "uc.CheckUpcoming: %v", err)
		response.InternalError(c, err)
		return
	}

	resp := checkResp{Reminded: out.Reminded, Cleared: out.Cleared}
	if resp.Reminded == nil {
		resp.Reminded = []int{}
	}
	if resp.Cleared == nil {
		resp.Cleared = []string{}
	}
	response.OK(c, resp)
}
