package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu    sync.RWMutex
	base  zerolog.Logger
	ready bool
)

// Options selects the level, format and destination of the global logger.
type Options struct {
	Level  string    // debug|info|warn|error (default: info)
	Pretty bool      // human readable console output instead of JSON
	Output io.Writer // defaults to os.Stdout
}

// Init configures the global JSON logger from the environment.
//
// Environment variables (optional):
//   - LOG_LEVEL: debug|info|warn|error (default: info)
//   - LOG_PRETTY: true|false (default: false)
func Init() {
	Configure(Options{
		Level:  getenv("LOG_LEVEL", "info"),
		Pretty: strings.EqualFold(getenv("LOG_PRETTY", "false"), "true"),
	})
}

// Configure replaces the global logger.
func Configure(opts Options) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var w io.Writer = os.Stdout
	if opts.Output != nil {
		w = opts.Output
	}
	if opts.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	l := zerolog.New(w).With().Timestamp().Logger().Level(parseLevel(opts.Level))

	mu.Lock()
	base = l
	ready = true
	mu.Unlock()
}

// L returns the global logger, initializing it from the environment on
// first use.
func L() *zerolog.Logger {
	mu.RLock()
	ok := ready
	mu.RUnlock()
	if !ok {
		Init()
	}

	mu.RLock()
	defer mu.RUnlock()
	l := base
	return &l
}

// With returns a child logger tagged with a component name.
func With(component string) zerolog.Logger {
	return L().With().Str("component", component).Logger()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
