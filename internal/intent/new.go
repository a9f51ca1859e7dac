package intent

import (
	"context"
	"time"

	"nl-todo/pkg/deepseek"
	"nl-todo/pkg/log"
)

// Extractor turns free text into a structured intent.
type Extractor interface {
	Extract(ctx context.Context, text string, ref *time.Time) Result
}

// DeepSeekExtractor asks a chat completion model for the intent.
type DeepSeekExtractor struct {
	llm         deepseek.IDeepSeek
	l           log.Logger
	timeout     time.Duration
	temperature float64
	now         func() time.Time
}

var _ Extractor = (*DeepSeekExtractor)(nil)

// New creates a DeepSeekExtractor. A nil llm disables extraction and every call
// returns OutcomeDisabled.
func New(cfg Config, llm deepseek.IDeepSeek, l log.Logger) *DeepSeekExtractor {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &DeepSeekExtractor{
		llm:         llm,
		l:           l,
		timeout:     cfg.Timeout,
		temperature: cfg.Temperature,
		now:         time.Now,
	}
}
