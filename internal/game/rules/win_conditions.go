package rules

import (
	"github.com/mitchelldurbincs/GridArena/internal/game/core"
	"github.com/rs/zerolog"
)

// WinConditionChecker detects when a level is decided by elimination
type WinConditionChecker struct {
	logger        zerolog.Logger
	originalTeams int
}

// NewWinConditionChecker creates a checker for a level that started with
// originalTeams non-empty teams
func NewWinConditionChecker(logger zerolog.Logger, originalTeams int) *WinConditionChecker {
	return &WinConditionChecker{
		logger:        logger.With().Str("component", "WinConditionChecker").Logger(),
		originalTeams: originalTeams,
	}
}

// Outcome is the result of an elimination check
type Outcome struct {
	Over   bool
	Winner core.Team
	// Draw is set when every team was eliminated
	Draw bool
}

// Check inspects live unit counts per team. A level with several teams is
// over once at most one team has live units; a single-team level is over
// when that team is gone. A level that started empty never ends this way.
func (wc *WinConditionChecker) Check(alive map[core.Team]int) Outcome {
	aliveTeams := 0
	var last core.Team
	for _, team := range []core.Team{core.TeamA, core.TeamB} {
		if alive[team] > 0 {
			aliveTeams++
			last = team
		}
	}

	var out Outcome
	switch {
	case wc.originalTeams == 0:
		return out
	case wc.originalTeams > 1:
		out.Over = aliveTeams <= 1
	default:
		out.Over = aliveTeams == 0
	}

	if out.Over && aliveTeams == 1 {
		out.Winner = last
		wc.logger.Info().Str("winner", last.String()).Msg("Winner determined")
	} else if out.Over {
		out.Draw = true
		wc.logger.Info().Msg("No winner, every team eliminated")
	}

	wc.logger.Debug().
		Bool("is_over", out.Over).
		Int("alive_teams", aliveTeams).
		Msg("Elimination check complete")
	return out
}
