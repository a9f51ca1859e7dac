package httpserver

import (
	"context"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"nl-todo/internal/middleware"
	"nl-todo/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, middleware.Config{
		AllowedOrigins:    srv.corsAllowedOrigins,
		NLRateLimitPerMin: srv.nlRateLimitPerMin,
	})

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(mw.RequestID(), mw.CORS())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production, origins=%v", srv.corsAllowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s, origins=%v", srv.environment, srv.corsAllowedOrigins)
	}
	if srv.nlRateLimitPerMin > 0 {
		srv.l.Infof(ctx, "NL rate limit: %d requests/min per client", srv.nlRateLimitPerMin)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	if err := srv.setupTodoDomain(ctx, srv.gin.Group(""), mw); err != nil {
		return err
	}

	return nil
}
