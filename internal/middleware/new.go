package middleware

import (
	"nl-todo/pkg/log"
)

// Config holds the settings of the cross-cutting HTTP middlewares.
type Config struct {
	// AllowedOrigins lists CORS origins. Empty means "*".
	AllowedOrigins []string
	// NLRateLimitPerMin caps natural-language requests per client IP. 0 disables it.
	NLRateLimitPerMin int
}

type Middleware struct {
	l           log.Logger
	origins     []string
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	var rl *rateLimiter
	if cfg.NLRateLimitPerMin > 0 {
		rl = newRateLimiter(cfg.NLRateLimitPerMin)
	}

	return Middleware{
		l:           l,
		origins:     origins,
		rateLimiter: rl,
	}
}
