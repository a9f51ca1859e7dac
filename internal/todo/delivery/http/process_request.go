package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nl-todo/internal/todo"
	pkgErrors "nl-todo/pkg/errors"
)

// processTodoReq binds and validates the create/update body.
func (h *handler) processTodoReq(c *gin.Context) (todoReq, error) {
	var req todoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "todo.delivery.http.processTodoReq: %v", err)
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	if len(req.Priority) > 0 && string(req.Priority) != "null" {
		p, ok := todo.ParsePriority(req.Priority)
		if !ok {
			h.l.Warnf(c.Request.Context(), "todo.delivery.http.processTodoReq: bad priority %s", req.Priority)
			return req, errInvalidPriority
		}
		req.priority = &p
	}
	return req, nil
}

// processListByDateReq binds the date query parameter.
func (h *handler) processListByDateReq(c *gin.Context) (listByDateReq, error) {
	var req listByDateReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid query: "+err.Error())
	}
	return req, nil
}

// processNLReq binds the natural-language body.
func (h *handler) processNLReq(c *gin.Context) (nlReq, error) {
	var req nlReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "todo.delivery.http.processNLReq: %v", err)
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	return req, nil
}

// processID reads the :id path parameter. A non-numeric id can never match a
// todo, so it is reported as not found.
func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, todo.ErrTodoNotFound
	}
	return id, nil
}
