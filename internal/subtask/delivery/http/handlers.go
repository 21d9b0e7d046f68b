package http

import (
	"github.com/gin-gonic/gin"

	"task-calendar/pkg/response"
)

// Create godoc
// @Summary     Create a subtask
// @Description Creates a subtask. A recurring subtask also gets its instances generated up to recurrenceEndDate (default: 12 months).
// @Tags        Subtasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Subtask data"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/subtasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List subtasks
// @Description Lists subtasks for one day, an inclusive date range, one series, or everything.
// @Tags        Subtasks
// @Accept      json
// @Produce     json
// @Param       date      query string false "Exact day (YYYY-MM-DD)"
// @Param       from      query string false "Range start (YYYY-MM-DD)"
// @Param       to        query string false "Range end (YYYY-MM-DD)"
// @Param       status    query string false "pending, completed or cancelled"
// @Param       series_id query int    false "Root id of a recurrence series"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/subtasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a subtask
// @Tags        Subtasks
// @Produce     json
// @Param       id path int true "Subtask ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/subtasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a subtask or its series
// @Description Applies a partial update. With scope=series the root and every instance are patched and each keeps its own date. An unknown id is a no-op reported as found=false.
// @Tags        Subtasks
// @Accept      json
// @Produce     json
// @Param       id    path  int        true  "Subtask ID"
// @Param       scope query string     false "single (default) or series"
// @Param       body  body  updateReq  true  "Fields to change"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/subtasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a subtask or its series
// @Description With scope=series a root is removed with all its instances; an instance removes its whole series. An unknown id is a no-op reported as found=false.
// @Tags        Subtasks
// @Produce     json
// @Param       id    path  int    true  "Subtask ID"
// @Param       scope query string false "single (default) or series"
// @Success     200 {object} deleteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/subtasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDeleteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Delete(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDeleteResp(output))
}
