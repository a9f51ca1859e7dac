package http

import (
	"encoding/json"

	"nl-todo/internal/todo"
)

// --- Request DTOs ---

// todoReq accepts priority as a number or a numeric string.
type todoReq struct {
	Title       string          `json:"title" binding:"required"`
	Description *string         `json:"description"`
	DueDate     *string         `json:"due_date"`
	Tags        []string        `json:"tags"`
	Priority    json.RawMessage `json:"priority" swaggertype:"integer"`

	priority *int
}

func (r todoReq) toCreateInput() todo.CreateTodoInput {
	return todo.CreateTodoInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Tags:        r.Tags,
		Priority:    r.priority,
	}
}

func (r todoReq) toUpdateInput(id int64) todo.UpdateTodoInput {
	return todo.UpdateTodoInput{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Tags:        r.Tags,
		Priority:    r.priority,
	}
}

// ---

type listByDateReq struct {
	Date string `form:"date"`
}

func (r listByDateReq) toInput() todo.ListByDateInput {
	return todo.ListByDateInput{DatePrefix: r.Date}
}

// ---

// nlReq accepts the reference time as either "now" or "current_time".
type nlReq struct {
	Text        string `json:"text"`
	Now         string `json:"now"`
	CurrentTime string `json:"current_time"`
}

func (r nlReq) toInput() todo.NLInput {
	now := r.Now
	if now == "" {
		now = r.CurrentTime
	}
	return todo.NLInput{Text: r.Text, Now: now}
}

// --- Response DTOs ---

type todoResp struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	DueDate     *string  `json:"due_date"`
	Tags        []string `json:"tags"`
	Priority    int      `json:"priority"`
}

func newTodoResp(t todo.Todo) todoResp {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return todoResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Tags:        tags,
		Priority:    t.Priority,
	}
}

func (h *handler) newListResp(todos []todo.Todo) []todoResp {
	resp := make([]todoResp, len(todos))
	for i, t := range todos {
		resp[i] = newTodoResp(t)
	}
	return resp
}

type deletedResp struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type deleteRangeResp struct {
	Deleted []deletedResp `json:"deleted"`
	Count   int           `json:"count"`
}

// newNLResp returns a todoResp for a created todo and a deleteRangeResp for a range delete.
func (h *handler) newNLResp(out todo.NLOutput) any {
	if out.Removed == nil {
		if out.Created == nil {
			return deleteRangeResp{Deleted: []deletedResp{}}
		}
		return newTodoResp(*out.Created)
	}

	deleted := make([]deletedResp, len(out.Removed.Deleted))
	for i, d := range out.Removed.Deleted {
		deleted[i] = deletedResp{ID: d.ID, Title: d.Title}
	}
	return deleteRangeResp{Deleted: deleted, Count: out.Removed.Count}
}
