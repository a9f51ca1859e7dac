package http

import (
	"github.com/gin-gonic/gin"

	"nl-todo/internal/todo"
	"nl-todo/pkg/log"
)

// Handler is the public interface for the todo HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	ListByDate(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	ProcessNL(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc todo.UseCase
}

// New creates a new HTTP handler for the todo domain.
func New(l log.Logger, uc todo.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
