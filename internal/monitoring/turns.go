package monitoring

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// TurnMonitor accumulates per-turn controller metrics and warns when a pass
// runs longer than the slow-turn threshold.
type TurnMonitor struct {
	mu            sync.RWMutex
	logger        zerolog.Logger
	turns         int
	moves         int
	holds         int
	draws         uint64
	total         time.Duration
	slowest       time.Duration
	slowThreshold time.Duration
	lastAlert     time.Time
	alertCooldown time.Duration
}

// NewTurnMonitor creates a monitor with a 50ms slow-turn threshold
func NewTurnMonitor(logger zerolog.Logger) *TurnMonitor {
	return &TurnMonitor{
		logger:        logger.With().Str("component", "TurnMonitor").Logger(),
		slowThreshold: 50 * time.Millisecond,
		alertCooldown: 5 * time.Second,
	}
}

// SetSlowThreshold changes the duration above which a turn is reported
func (tm *TurnMonitor) SetSlowThreshold(d time.Duration) {
	tm.mu.Lock()
	defer tm.mu.Unlock()
	tm.slowThreshold = d
}

// Record adds one finished turn
func (tm *TurnMonitor) Record(turn, moved, held int, draws uint64, elapsed time.Duration) {
	tm.mu.Lock()
	tm.turns++
	tm.moves += moved
	tm.holds += held
	tm.draws += draws
	tm.total += elapsed
	if elapsed > tm.slowest {
		tm.slowest = elapsed
	}

	shouldAlert := tm.slowThreshold > 0 && elapsed > tm.slowThreshold &&
		time.Since(tm.lastAlert) > tm.alertCooldown
	if shouldAlert {
		tm.lastAlert = time.Now()
	}
	threshold := tm.slowThreshold
	tm.mu.Unlock()

	if shouldAlert {
		tm.logger.Warn().
			Int("turn", turn).
			Dur("elapsed", elapsed).
			Dur("threshold", threshold).
			Msg("Slow turn detected")
	}
}

// GetMetrics returns a copy of the accumulated metrics
func (tm *TurnMonitor) GetMetrics() TurnMetrics {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	m := TurnMetrics{
		Turns:   tm.turns,
		Moves:   tm.moves,
		Holds:   tm.holds,
		Draws:   tm.draws,
		Total:   tm.total,
		Slowest: tm.slowest,
	}
	if tm.turns > 0 {
		m.Average = tm.total / time.Duration(tm.turns)
	}
	return m
}

// TurnMetrics contains turn statistics
type TurnMetrics struct {
	Turns   int           `json:"turns"`
	Moves   int           `json:"moves"`
	Holds   int           `json:"holds"`
	Draws   uint64        `json:"draws"`
	Total   time.Duration `json:"total"`
	Average time.Duration `json:"average"`
	Slowest time.Duration `json:"slowest"`
}

// MarshalZerologObject lets metrics be logged with Object()
func (m TurnMetrics) MarshalZerologObject(e *zerolog.Event) {
	e.Int("turns", m.Turns).
		Int("moves", m.Moves).
		Int("holds", m.Holds).
		Uint64("draws", m.Draws).
		Dur("average", m.Average).
		Dur("slowest", m.Slowest)
}
