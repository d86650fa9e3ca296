package log

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/YuminosukeSato/tunex/pkg/errors"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = &slogLogger{logger: slog.Default()}
)

// SetupLogger installs a JSON slog handler wrapped so that cockroachdb/errors
// stack traces are expanded into a "stacktrace" attribute, and routes library
// warnings through it at debug level.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		Level: ToLogLevel(loglevel),
	}
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(os.Stderr, &ops))
	slog.SetDefault(slog.New(handler))
	SetLogger(&slogLogger{logger: slog.Default()})

	// Non-fatal warnings (unsupported families, missing metadata) surface as
	// debug notes only.
	errors.SetWarningHandler(func(w error) {
		GetLogger().Debug("tuning extraction warning", ErrAttrKey, w)
	})
}

// ToLogLevel converts a level name to a slog.Level.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetLogger replaces the package-level logger.
func SetLogger(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// GetLogger returns the package-level logger.
func GetLogger() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// slogLogger adapts *slog.Logger to the Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

func (s *slogLogger) Debug(msg string, fields ...any) { s.logger.Debug(msg, fields...) }
func (s *slogLogger) Info(msg string, fields ...any)  { s.logger.Info(msg, fields...) }
func (s *slogLogger) Warn(msg string, fields ...any)  { s.logger.Warn(msg, fields...) }
func (s *slogLogger) Error(msg string, fields ...any) { s.logger.Error(msg, fields...) }

func (s *slogLogger) With(fields ...any) Logger {
	return &slogLogger{logger: s.logger.With(fields...)}
}

func (s *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.logger.Enabled(ctx, slog.Level(level))
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr wraps an error for structured logging.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
