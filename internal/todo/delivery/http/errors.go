package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nl-todo/internal/todo"
	pkgErrors "nl-todo/pkg/errors"
	"nl-todo/pkg/response"
)

var (
	errTodoNotFound       = pkgErrors.NewHTTPError(http.StatusNotFound, "Todo not found")
	errEmptyTitle         = pkgErrors.NewHTTPError(http.StatusBadRequest, "Title is required")
	errEmptyText          = pkgErrors.NewHTTPError(http.StatusBadRequest, "Missing 'text' in payload")
	errMissingDate        = pkgErrors.NewHTTPError(http.StatusBadRequest, "Missing 'date' query parameter")
	errInvalidDeleteRange = pkgErrors.NewHTTPError(http.StatusBadRequest, "Delete action requires a valid 'start'/'end' or a date/due_date to define the range")
	errInvalidPriority    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body: priority must be an integer")
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Anything unmapped becomes a 500.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		return httpErr
	}

	switch {
	case errors.Is(err, todo.ErrTodoNotFound):
		return errTodoNotFound
	case errors.Is(err, todo.ErrEmptyTitle):
		return errEmptyTitle
	case errors.Is(err, todo.ErrEmptyText):
		return errEmptyText
	case errors.Is(err, todo.ErrMissingDate):
		return errMissingDate
	case errors.Is(err, todo.ErrInvalidDeleteRange):
		return errInvalidDeleteRange
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// abort writes the mapped error. Client errors are logged at Warn, the rest at Error.
func (h *handler) abort(c *gin.Context, op string, err error) {
	httpErr := h.mapError(err)
	if httpErr.Code >= http.StatusInternalServerError {
		h.l.Errorf(c.Request.Context(), "%s: %v", op, err)
	} else {
		h.l.Warnf(c.Request.Context(), "%s: %v", op, err)
	}
	response.Error(c, httpErr)
}
