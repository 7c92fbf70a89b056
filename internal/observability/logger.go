package observability

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const EnvLogLevel = "MEGA_LOG_LEVEL"

// NewLogger builds the console logger shared by every command. The
// level comes from MEGA_LOG_LEVEL so verbosity can change without a
// flag on every subcommand.
func NewLogger(app string, out io.Writer) zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}

	return zerolog.New(writer).
		Level(ParseLevel(os.Getenv(EnvLogLevel))).
		With().
		Timestamp().
		Str("app", app).
		Logger()
}

func ParseLevel(raw string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "", "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled", "silent":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
