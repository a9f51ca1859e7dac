package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"nl-todo/internal/intent"
	"nl-todo/internal/todo/repository"
	"nl-todo/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Todo domain
	todoRepo  repository.Repository
	extractor intent.Extractor

	// Middleware
	corsAllowedOrigins []string
	nlRateLimitPerMin  int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Todo domain
	TodoRepo  repository.Repository
	Extractor intent.Extractor

	// Middleware
	CORSAllowedOrigins []string
	NLRateLimitPerMin  int
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                  logger,
		gin:                gin.Default(),
		port:               cfg.Port,
		mode:               cfg.Mode,
		environment:        cfg.Environment,
		todoRepo:           cfg.TodoRepo,
		extractor:          cfg.Extractor,
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		nlRateLimitPerMin:  cfg.NLRateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.todoRepo == nil {
		return errors.New("todo repository is required")
	}
	if srv.extractor == nil {
		return errors.New("intent extractor is required")
	}
	return nil
}
