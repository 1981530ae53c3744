package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/GridArena/internal/common"
	"github.com/mitchelldurbincs/GridArena/internal/game"
	"github.com/mitchelldurbincs/GridArena/internal/game/core"
	"github.com/mitchelldurbincs/GridArena/internal/game/events"
	"github.com/mitchelldurbincs/GridArena/internal/game/states"
	"github.com/mitchelldurbincs/GridArena/internal/testutil"
)

func newTestViewer(t *testing.T, maxTurns int) (*Viewer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	e, err := game.NewEngine(context.Background(), game.GameConfig{
		Width:    5,
		Height:   4,
		TeamSize: 2,
		MaxTurns: maxTurns,
		Kind:     core.KindMeleeAttacker,
		RNG:      testutil.NewTestOptions(7),
		Logger:   testutil.NopLogger(),
	})
	require.NoError(t, err)
	v := NewViewer(screen, e, 100*time.Millisecond, testutil.NopLogger())
	t.Cleanup(v.Close)
	return v, screen
}

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestViewer_DrawBoard(t *testing.T) {
	v, screen := newTestViewer(t, 0)
	v.Draw()

	snap := v.engine.Snapshot()
	occupied := 0
	for idx, tile := range snap.Tiles {
		x, y := idx%snap.Width, idx/snap.Width
		r, _, _, _ := screen.GetContent(x*cellWidth, boardTop+y)
		if tile == core.TileOccupied {
			occupied++
			assert.Contains(t, []rune{'A', 'B'}, r, "tile %d", idx)
		} else {
			assert.Equal(t, emptyRune, r, "tile %d", idx)
		}
	}
	assert.Equal(t, 4, occupied)

	r, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, 't', r, "status line starts with the turn counter")
}

func TestViewer_StepKeys(t *testing.T) {
	v, _ := newTestViewer(t, 0)

	assert.True(t, v.HandleEvent(keyRune(' ')))
	assert.Equal(t, 1, v.engine.Turn())
	assert.True(t, v.HandleEvent(keyRune('n')))
	assert.Equal(t, 2, v.engine.Turn())
	assert.Contains(t, v.message, "moved")
}

func TestViewer_PauseToggle(t *testing.T) {
	v, _ := newTestViewer(t, 0)

	v.HandleEvent(keyRune('p'))
	assert.Equal(t, states.PhasePaused, v.engine.Phase())

	v.HandleEvent(keyRune(' '))
	assert.Equal(t, 0, v.engine.Turn(), "paused levels do not step")
	assert.NotEmpty(t, v.message)

	v.HandleEvent(keyRune('p'))
	assert.Equal(t, states.PhaseRunning, v.engine.Phase())
}

func TestViewer_Quit(t *testing.T) {
	v, _ := newTestViewer(t, 0)

	assert.False(t, v.HandleEvent(keyRune('q')))
	assert.False(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, v.HandleEvent(keyRune('z')))
}

func TestViewer_Speed(t *testing.T) {
	v, _ := newTestViewer(t, 0)

	v.HandleEvent(keyRune('+'))
	assert.Equal(t, 50*time.Millisecond, v.Interval())
	v.HandleEvent(keyRune('='))
	assert.Equal(t, minInterval, v.Interval())
	v.HandleEvent(keyRune('='))
	assert.Equal(t, minInterval, v.Interval(), "clamped")

	v.HandleEvent(keyRune('-'))
	assert.Equal(t, 50*time.Millisecond, v.Interval())
}

func TestViewer_EndedLevel(t *testing.T) {
	v, _ := newTestViewer(t, 1)

	v.HandleEvent(keyRune(' '))
	assert.Equal(t, states.PhaseEnded, v.engine.Phase())
	assert.Equal(t, "level over after 1 turns: turn limit reached", v.message)

	v.HandleEvent(keyRune(' '))
	assert.Equal(t, 1, v.engine.Turn())
	assert.NotEmpty(t, v.message)
}

func TestViewer_RunCancelled(t *testing.T) {
	v, _ := newTestViewer(t, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	err := v.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, v.engine.Turn(), 1, "auto-step ran while running")
}

func TestViewer_Close(t *testing.T) {
	v, _ := newTestViewer(t, 1)
	bus := v.engine.EventBus()
	assert.Equal(t, 1, bus.GetFuncHandlerCount(events.TypeLevelEnded))

	v.Close()
	assert.Equal(t, 0, bus.GetFuncHandlerCount(events.TypeLevelEnded))

	v.HandleEvent(keyRune(' '))
	assert.Equal(t, states.PhaseEnded, v.engine.Phase())
	assert.Empty(t, v.message, "detached viewer no longer hears level events")
}

// A finished Run must not leave a reader on the screen's event queue that
// swallows input meant for the next Run.
func TestViewer_RunReleasesEventQueue(t *testing.T) {
	v, screen := newTestViewer(t, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, v.Run(ctx), context.DeadlineExceeded)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx2, cancel2 := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel2()
	assert.NoError(t, v.Run(ctx2), "second run sees the quit key")
}

func TestViewer_RunQuitKey(t *testing.T) {
	v, screen := newTestViewer(t, 0)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, v.Run(ctx))
}

func TestCell(t *testing.T) {
	units := []core.Unit{
		core.NewUnit(core.KindMeleeAttacker, core.TeamA),
		core.NewUnit(core.KindMeleeAttacker, core.TeamB),
	}
	units[1].HP = 0

	r, style := Cell(core.TileOccupied, 0, units)
	assert.Equal(t, 'A', r)
	fg, _, _ := style.Decompose()
	assert.Equal(t, toTcell(common.TeamColor(0)), fg)

	r, _ = Cell(core.TileOccupied, 1, units)
	assert.Equal(t, deadRune, r)

	r, _ = Cell(core.TileEmpty, core.NoUnit, units)
	assert.Equal(t, emptyRune, r)
}
