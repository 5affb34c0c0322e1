package observability

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LoggerConfig selects the output format and level of the process logger.
type LoggerConfig struct {
	Level string    // trace, debug, info, warn, error; empty means info
	JSON  bool      // structured JSON lines instead of the console writer
	Out   io.Writer // defaults to os.Stderr
}

// InitLogger builds the process logger, installs it as the global zerolog
// logger and returns it.
func InitLogger(app string, cfg LoggerConfig) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if s := strings.TrimSpace(cfg.Level); s != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(s))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("parse log level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if !cfg.JSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger

	return logger, nil
}
