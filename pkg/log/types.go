package log

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string
	Mode         string // "production" or anything else for development
	Encoding     string // "console" or "json"
	ColorEnabled bool
}

const (
	ModeProduction   = "production"
	EncodingConsole  = "console"
	EncodingJSON     = "json"
	fieldRequestID   = "request_id"
	defaultLogLevel  = "info"
	defaultEncoding  = EncodingConsole
	callerSkipFrames = 1
)

type ctxKey struct{}
