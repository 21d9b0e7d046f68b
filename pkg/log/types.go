package log

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // "production" writes JSON, anything else is development console output
	Encoding     string // "console" or "json"
	ColorEnabled bool
	File         FileConfig
}

// FileConfig enables rotating file output. Empty Filename keeps logs on stderr.
type FileConfig struct {
	Filename   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

type ctxKey string

// RequestIDKey is the context key under which the request id is stored.
const RequestIDKey ctxKey = "request_id"

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)
