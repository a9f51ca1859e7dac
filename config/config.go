package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"nl-todo/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Storage
	Database DatabaseConfig

	// Natural-language ingestion
	DeepSeek DeepSeekConfig
	NL       NLConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// DatabaseConfig selects the store. A postgres:// URL overrides Driver.
type DatabaseConfig struct {
	Driver string
	URL    string
}

// DeepSeekConfig configures the completion API. An empty APIKey disables extraction.
type DeepSeekConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Timeout     time.Duration
	Temperature float64
}

type NLConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first; variables already set in
// the environment win. Config file name: config.yaml, searched in ./config, ., /etc/nl-todo/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/nl-todo/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(viper.GetStringSlice("cors.allowed_origins"))

	// Storage. database.url is also read from DATABASE_URL.
	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Database.URL = viper.GetString("database.url")

	// DeepSeek. Keys map to DEEPSEEK_API_KEY, DEEPSEEK_BASE_URL, DEEPSEEK_MODEL.
	cfg.DeepSeek.APIKey = viper.GetString("deepseek.api_key")
	cfg.DeepSeek.BaseURL = viper.GetString("deepseek.base_url")
	cfg.DeepSeek.Model = viper.GetString("deepseek.model")
	cfg.DeepSeek.Timeout = viper.GetDuration("deepseek.timeout")
	cfg.DeepSeek.Temperature = viper.GetFloat64("deepseek.temperature")

	cfg.NL.RateLimitPerMin = viper.GetInt("nl.rate_limit_per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", "*")

	viper.SetDefault("database.driver", "sqlite3")
	viper.SetDefault("database.url", "./todos.db")

	viper.SetDefault("deepseek.base_url", "https://api.deepseek.com")
	viper.SetDefault("deepseek.model", "deepseek-chat")
	viper.SetDefault("deepseek.timeout", "15s")

	viper.SetDefault("nl.rate_limit_per_min", 0)
}

func validate(cfg *Config) error {
	switch model.Environment(cfg.Environment.Name) {
	case model.EnvironmentDevelopment, model.EnvironmentStaging, model.EnvironmentProduction:
	default:
		return fmt.Errorf("unsupported environment.name %q", cfg.Environment.Name)
	}
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("invalid http_server.port %d", cfg.HTTPServer.Port)
	}
	switch cfg.Database.Driver {
	case "sqlite3", "postgres":
	default:
		return fmt.Errorf("unsupported database.driver %q", cfg.Database.Driver)
	}
	if cfg.DeepSeek.Timeout <= 0 {
		return fmt.Errorf("deepseek.timeout must be positive")
	}
	if cfg.NL.RateLimitPerMin < 0 {
		return fmt.Errorf("nl.rate_limit_per_min must not be negative")
	}
	return nil
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for _, s := range strings.Split(item, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
