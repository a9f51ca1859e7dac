package deepseek

import "time"

const (
	// DefaultBaseURL is the default DeepSeek API endpoint
	DefaultBaseURL = "https://api.deepseek.com"

	// DefaultModel is the default model to use
	DefaultModel = "deepseek-chat"

	// DefaultTimeout bounds a single completion call
	DefaultTimeout = 15 * time.Second

	completionsPath = "/chat/completions"
)

// Chat roles
const (
	RoleSystem = "system"
	RoleUser   = "user"
)
