package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/GridArena/internal/game"
	"github.com/mitchelldurbincs/GridArena/internal/game/core"
	"github.com/mitchelldurbincs/GridArena/internal/game/states"
	"github.com/mitchelldurbincs/GridArena/internal/testutil"
)

func newTestUIGame(t *testing.T, interval int) *UIGame {
	t.Helper()
	e, err := game.NewEngine(context.Background(), game.GameConfig{
		Width:    4,
		Height:   4,
		TeamSize: 2,
		Kind:     core.KindMeleeAttacker,
		RNG:      testutil.NewTestOptions(3),
		Logger:   testutil.NopLogger(),
	})
	require.NoError(t, err)

	g, err := NewUIGame(e, 32, interval, testutil.NopLogger())
	require.NoError(t, err)
	return g
}

func TestNewUIGame_InvalidSettings(t *testing.T) {
	e, err := game.NewEngine(context.Background(), game.GameConfig{
		Width:  3,
		Height: 3,
		RNG:    testutil.NewTestOptions(1),
		Logger: testutil.NopLogger(),
	})
	require.NoError(t, err)

	_, err = NewUIGame(e, 0, 30, testutil.NopLogger())
	assert.Error(t, err)
	_, err = NewUIGame(e, 32, 0, testutil.NopLogger())
	assert.Error(t, err)
}

func TestUIGame_TickStepsOnInterval(t *testing.T) {
	g := newTestUIGame(t, 3)

	g.Tick()
	g.Tick()
	assert.Equal(t, 0, g.engine.Turn())
	g.Tick()
	assert.Equal(t, 1, g.engine.Turn())

	for i := 0; i < 6; i++ {
		g.Tick()
	}
	assert.Equal(t, 3, g.engine.Turn())
}

func TestUIGame_TickIdleWhilePaused(t *testing.T) {
	g := newTestUIGame(t, 1)

	g.togglePause()
	assert.Equal(t, states.PhasePaused, g.engine.Phase())
	for i := 0; i < 5; i++ {
		g.Tick()
	}
	assert.Equal(t, 0, g.engine.Turn())

	g.step()
	assert.ErrorIs(t, g.lastErr, core.ErrLevelPaused)

	g.togglePause()
	g.Tick()
	assert.Equal(t, 1, g.engine.Turn())
}

func TestUIGame_StatusLine(t *testing.T) {
	g := newTestUIGame(t, 30)
	assert.Contains(t, g.StatusLine(), "Turn 0")
	assert.Contains(t, g.StatusLine(), "Running")

	g.step()
	assert.Contains(t, g.StatusLine(), "Turn 1")
}

func TestUIGame_Selection(t *testing.T) {
	g := newTestUIGame(t, 30)
	snap := g.engine.Snapshot()
	pos := snap.Positions[0]
	x, y := pos%snap.Width, pos/snap.Width

	g.inputHandler.Click(x*32, y*32+boardOffsetY)
	g.refreshSelection()

	want := g.engine.Adjacency(0).Slice()
	assert.Equal(t, want, g.boardRenderer.Candidates())
	assert.Contains(t, g.StatusLine(), "moves")

	g.inputHandler.ClearSelection()
	g.refreshSelection()
	assert.Nil(t, g.boardRenderer.Candidates())
}
