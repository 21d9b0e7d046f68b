package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"task-calendar/internal/subtask"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the patch body, the id path param and the scope query param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := parseID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = id
	req.Scope = subtask.ParseScope(c.Query("scope"))
	return req, nil
}

func (h *handler) processDeleteReq(c *gin.Context) (deleteReq, error) {
	id, err := parseID(c)
	if err != nil {
		return deleteReq{}, err
	}
	return deleteReq{ID: id, Scope: subtask.ParseScope(c.Query("scope"))}, nil
}

func parseID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
