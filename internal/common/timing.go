package common

import (
	"time"

	"github.com/rs/zerolog"
)

// TimeTrack logs the time elapsed since start. Use with defer:
//
//	defer common.TimeTrack(time.Now(), "controller pass", logger)
func TimeTrack(start time.Time, name string, logger zerolog.Logger) time.Duration {
	elapsed := time.Since(start)
	logger.Debug().
		Str("scope", name).
		Dur("elapsed", elapsed).
		Msg("Scope finished")
	return elapsed
}
