package log

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/tunex/pkg/errors"
)

// UseZerologWarnings routes library warnings to a zerolog logger writing to w.
// Warnings are emitted at debug level; warning types implementing
// zerolog.LogObjectMarshaler are logged with their structured fields.
func UseZerologWarnings(w io.Writer) zerolog.Logger {
	logger := zerolog.New(w).With().Timestamp().Logger()
	errors.SetZerologWarnFunc(func(warning error) {
		ev := logger.Debug()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			ev.EmbedObject(obj).Msg("tuning extraction warning")
			return
		}
		ev.Err(warning).Msg("tuning extraction warning")
	})
	return logger
}
