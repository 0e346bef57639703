// Package logger wraps a process-wide zerolog logger.
//
//	logger.Init(logger.Config{Level: "debug", Format: "console"})
//	logger.Info().Str("port", port).Msg("Server starting")
//	logger.Ctx(ctx).Warn().Err(err).Msg("probe failed")
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	// Level is one of debug, info, warn, error, fatal, disabled
	Level string
	// Format is json or console
	Format string
	Output io.Writer
}

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	Init(Config{Level: "info", Format: "json"})
}

// Init (re)configures the global logger
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	out := cfg.Output
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "15:04:05"}
	}

	log = zerolog.New(out).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Logger returns a copy of the global logger
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// SetLogger replaces the global logger, mostly for tests
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

func Debug() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Debug()
}

func Info() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Info()
}

func Warn() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Warn()
}

func Error() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Error()
}

func Fatal() *zerolog.Event {
	mu.RLock()
	defer mu.RUnlock()
	return log.Fatal()
}

type ctxKey struct{}

// WithRequestID returns a context whose logger carries the request id
func WithRequestID(ctx context.Context, requestID string) context.Context {
	l := Logger().With().Str("request_id", requestID).Logger()
	return context.WithValue(ctx, ctxKey{}, l)
}

// Ctx returns the request-scoped logger, falling back to the global one
func Ctx(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(zerolog.Logger); ok {
			return &l
		}
	}
	l := Logger()
	return &l
}
