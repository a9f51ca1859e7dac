package http

import (
	"github.com/gin-gonic/gin"

	"nl-todo/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Only the natural-language route is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	todos := rg.Group("/todos")
	{
		todos.GET("", h.List)
		todos.GET("/date", h.ListByDate)
		todos.POST("", h.Create)
		todos.PUT("/:id", h.Update)
		todos.DELETE("/:id", h.Delete)
		todos.POST("/nl", mw.RateLimit(), h.ProcessNL)
	}
}
