package common

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger. format "json" writes one object per
// line; anything else uses the console writer.
func NewLogger(out io.Writer, level zerolog.Level, format string) zerolog.Logger {
	zerolog.SetGlobalLevel(level)

	if format == "json" {
		return zerolog.New(out).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	}).With().Timestamp().Logger()
}
