package terminal

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/GridArena/internal/common"
	"github.com/mitchelldurbincs/GridArena/internal/game"
	"github.com/mitchelldurbincs/GridArena/internal/game/core"
	"github.com/mitchelldurbincs/GridArena/internal/game/events"
	"github.com/mitchelldurbincs/GridArena/internal/game/states"
)

const (
	boardTop    = 2
	cellWidth   = 2
	minInterval = 25 * time.Millisecond
	maxInterval = 5 * time.Second
	emptyRune   = '·'
	deadRune    = 'x'
	frameRate   = 16 * time.Millisecond
)

// Viewer draws an Engine on a terminal screen and steps it on a timer
type Viewer struct {
	screen tcell.Screen
	engine *game.Engine
	logger zerolog.Logger

	interval time.Duration
	lastTurn time.Time
	message  string

	endedHandler string
}

// NewViewer wraps an initialised screen. The caller owns screen.Fini.
func NewViewer(screen tcell.Screen, engine *game.Engine, interval time.Duration, logger zerolog.Logger) *Viewer {
	v := &Viewer{
		screen:   screen,
		engine:   engine,
		logger:   logger.With().Str("component", "TerminalViewer").Logger(),
		interval: clampInterval(interval),
	}
	v.endedHandler = engine.EventBus().SubscribeFunc(events.TypeLevelEnded, v.onLevelEnded)
	return v
}

// Close detaches the viewer from the engine's event bus
func (v *Viewer) Close() {
	v.engine.EventBus().UnsubscribeFunc(v.endedHandler)
}

func clampInterval(d time.Duration) time.Duration {
	return min(max(d, minInterval), maxInterval)
}

// Interval returns the auto-step period
func (v *Viewer) Interval() time.Duration { return v.interval }

// Run polls input and steps the engine until the user quits or ctx is done
func (v *Viewer) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameRate)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go v.screen.ChannelEvents(eventChan, done)

	v.lastTurn = time.Now()
	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-eventChan:
			if !ok || !v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case now := <-ticker.C:
			if v.engine.Phase() == states.PhaseRunning && now.Sub(v.lastTurn) >= v.interval {
				v.lastTurn = now
				v.step()
			}
			v.Draw()
		}
	}
}

func (v *Viewer) onLevelEnded(event events.Event) {
	if ended, ok := event.(*events.LevelEndedEvent); ok {
		v.message = fmt.Sprintf("level over after %d turns: %s", ended.FinalTurn, ended.Reason)
	}
}

// HandleEvent applies one input event. It returns false when the viewer
// should exit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ', 'n':
				v.step()
			case 'p':
				v.togglePause()
			case '+', '=':
				v.interval = clampInterval(v.interval / 2)
			case '-':
				v.interval = clampInterval(v.interval * 2)
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) step() {
	res, err := v.engine.Step(context.Background())
	if err != nil {
		v.message = err.Error()
		if !errors.Is(err, core.ErrLevelEnded) && !errors.Is(err, core.ErrLevelPaused) {
			v.logger.Error().Err(err).Msg("Turn failed")
		}
		return
	}
	if !v.engine.IsOver() {
		v.message = fmt.Sprintf("moved %d held %d", res.Moved, res.Held)
	}
}

func (v *Viewer) togglePause() {
	var err error
	if v.engine.Phase() == states.PhasePaused {
		err = v.engine.Resume()
	} else {
		err = v.engine.Pause()
	}
	if err != nil {
		v.message = err.Error()
	}
}

// Draw renders the status line and board to the back buffer and shows it
func (v *Viewer) Draw() {
	v.screen.Clear()

	alive := v.engine.AliveByTeam()
	status := fmt.Sprintf("turn %d  %s  A=%d B=%d  seed %d",
		v.engine.Turn(), v.engine.Phase(), alive[core.TeamA], alive[core.TeamB], v.engine.Seed())
	v.drawText(0, 0, status, tcell.StyleDefault.Bold(true))
	v.drawText(0, 1, v.message, tcell.StyleDefault.Foreground(tcell.ColorGray))

	snap := v.engine.Snapshot()
	units := v.engine.Units()
	for idx := range snap.Tiles {
		x, y := idx%snap.Width, idx/snap.Width
		r, style := Cell(snap.Tiles[idx], v.engine.SlotAt(x, y), units)
		v.screen.SetContent(x*cellWidth, boardTop+y, r, nil, style)
	}

	help := "space/n step  p pause  +/- speed  q quit"
	v.drawText(0, boardTop+snap.Height+1, help, tcell.StyleDefault)
	v.screen.Show()
}

func (v *Viewer) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Cell returns the rune and style for one tile
func Cell(tile core.TileState, slot int, units []core.Unit) (rune, tcell.Style) {
	if tile != core.TileOccupied || slot < 0 || slot >= len(units) {
		return emptyRune, tcell.StyleDefault.Foreground(toTcell(common.EmptyTileColor))
	}
	u := units[slot]
	if !u.Alive() {
		return deadRune, tcell.StyleDefault.Foreground(toTcell(common.DeadUnitColor))
	}
	return []rune(u.Team.String())[0], tcell.StyleDefault.Foreground(toTcell(common.TeamColor(int(u.Team)))).Bold(true)
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
