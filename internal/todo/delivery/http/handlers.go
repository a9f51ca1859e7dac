package http

import (
	"github.com/gin-gonic/gin"

	"nl-todo/pkg/response"
)

// List godoc
// @Summary     List todos
// @Description Returns every todo in insertion order.
// @Tags        Todos
// @Produce     json
// @Success     200 {array}  todoResp
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	todos, err := h.uc.List(ctx)
	if err != nil {
		h.abort(c, "uc.List", err)
		return
	}

	response.OK(c, h.newListResp(todos))
}

// ListByDate godoc
// @Summary     List todos by due date prefix
// @Description Returns todos whose due_date starts with the given text. "2024-03" matches the whole month.
// @Tags        Todos
// @Produce     json
// @Param       date query string true "Due date prefix"
// @Success     200 {array}  todoResp
// @Failure     400 {object} response.ErrorResp "Missing date"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /todos/date [GET]
func (h *handler) ListByDate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListByDateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	todos, err := h.uc.ListByDate(ctx, req.toInput())
	if err != nil {
		h.abort(c, "uc.ListByDate", err)
		return
	}

	response.OK(c, h.newListResp(todos))
}

// Create godoc
// @Summary     Create a todo
// @Description Creates a todo. due_date is normalized to YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS when recognized.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       body body     todoReq true "Todo data"
// @Success     200  {object} todoResp
// @Failure     400  {object} response.ErrorResp "Bad Request"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Router      /todos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTodoReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Create(ctx, req.toCreateInput())
	if err != nil {
		h.abort(c, "uc.Create", err)
		return
	}

	response.OK(c, newTodoResp(t))
}

// Update godoc
// @Summary     Update a todo
// @Description Replaces every field of an existing todo.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       id   path     int     true "Todo ID"
// @Param       body body     todoReq true "Todo data"
// @Success     200  {object} todoResp
// @Failure     400  {object} response.ErrorResp "Bad Request"
// @Failure     404  {object} response.ErrorResp "Not Found"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Router      /todos/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		h.abort(c, "todo.delivery.http.Update", err)
		return
	}

	req, err := h.processTodoReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Update(ctx, req.toUpdateInput(id))
	if err != nil {
		h.abort(c, "uc.Update", err)
		return
	}

	response.OK(c, newTodoResp(t))
}

// Delete godoc
// @Summary     Delete a todo
// @Description Permanently removes a todo by ID.
// @Tags        Todos
// @Param       id path int true "Todo ID"
// @Success     204
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		h.abort(c, "todo.delivery.http.Delete", err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.abort(c, "uc.Delete", err)
		return
	}

	response.NoContent(c)
}

// ProcessNL godoc
// @Summary     Add or delete todos from natural language
// @Description Extracts an intent from free text. Returns the created todo, or the todos removed by a range delete.
// @Description When extraction is unavailable a todo titled with the raw text is created.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       body body     nlReq true "Text and optional reference time (now or current_time)"
// @Success     200  {object} todoResp "Created todo"
// @Success     200  {object} deleteRangeResp "Range delete result"
// @Failure     400  {object} response.ErrorResp "Missing text or unresolvable delete range"
// @Failure     429  {object} response.ErrorResp "Too many requests"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Router      /todos/nl [POST]
func (h *handler) ProcessNL(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processNLReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.ProcessNL(ctx, req.toInput())
	if err != nil {
		h.abort(c, "uc.ProcessNL", err)
		return
	}

	response.OK(c, h.newNLResp(out))
}
