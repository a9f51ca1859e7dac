package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"nl-todo/internal/middleware"
	todoHTTP "nl-todo/internal/todo/delivery/http"
	todoUC "nl-todo/internal/todo/usecase"
)

// setupTodoDomain initializes the todo domain and registers its routes.
// The repository is built by the caller so the driver can be chosen at startup.
func (srv HTTPServer) setupTodoDomain(ctx context.Context, rg *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase
	uc := todoUC.New(srv.todoRepo, srv.extractor, srv.l)

	// 2. HTTP Handler
	h := todoHTTP.New(srv.l, uc)

	// 3. Routes: registers /todos
	todoHTTP.RegisterRoutes(rg, h, mw)

	srv.l.Infof(ctx, "Todo domain registered")
	return nil
}
