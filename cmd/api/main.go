package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"

	"nl-todo/config"
	_ "nl-todo/docs" // Swagger docs
	"nl-todo/internal/httpserver"
	"nl-todo/internal/intent"
	"nl-todo/internal/todo/repository"
	"nl-todo/internal/todo/repository/postgre"
	"nl-todo/internal/todo/repository/sqlite"
	"nl-todo/pkg/database"
	"nl-todo/pkg/deepseek"
	"nl-todo/pkg/log"
)

// @title       NL Todo API
// @description Personal to-do list with natural-language task creation and range deletion.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting NL Todo...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, driver, err := database.Open(ctx, database.Config{Driver: cfg.Database.Driver, URL: cfg.Database.URL})
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database driver: %s", driver)

	todoRepo := newTodoRepository(driver, db, logger)
	if err := todoRepo.Migrate(ctx); err != nil {
		logger.Error(ctx, "Failed to migrate database: ", err)
		return
	}

	// 4. Intent extraction (optional)
	var llm deepseek.IDeepSeek
	if cfg.DeepSeek.APIKey != "" {
		client, dsErr := deepseek.New(deepseek.Config{
			APIKey:  cfg.DeepSeek.APIKey,
			BaseURL: cfg.DeepSeek.BaseURL,
			Model:   cfg.DeepSeek.Model,
			Timeout: cfg.DeepSeek.Timeout,
		})
		if dsErr != nil {
			logger.Warnf(ctx, "DeepSeek client not available: %v", dsErr)
		} else {
			llm = client
			logger.Infof(ctx, "DeepSeek extraction enabled (model: %s)", client.Model())
		}
	} else {
		logger.Warn(ctx, "DEEPSEEK_API_KEY is not set: /todos/nl will store the raw text as the title")
	}
	extractor := intent.New(intent.Config{
		Timeout:     cfg.DeepSeek.Timeout,
		Temperature: cfg.DeepSeek.Temperature,
	}, llm, logger)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:             logger,
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		TodoRepo:           todoRepo,
		Extractor:          extractor,
		CORSAllowedOrigins: cfg.CORS.AllowedOrigins,
		NLRateLimitPerMin:  cfg.NL.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func newTodoRepository(driver string, db *sqlx.DB, l log.Logger) repository.Repository {
	if driver == database.DriverPostgres {
		return postgre.New(db, l)
	}
	return sqlite.New(db, l)
}
