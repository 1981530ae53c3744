package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/mitchelldurbincs/GridArena/internal/common"
	"github.com/mitchelldurbincs/GridArena/internal/config"
	"github.com/mitchelldurbincs/GridArena/internal/game"
	"github.com/mitchelldurbincs/GridArena/internal/game/core"
	"github.com/mitchelldurbincs/GridArena/internal/game/states"
	"github.com/mitchelldurbincs/GridArena/internal/ui/input"
	"github.com/mitchelldurbincs/GridArena/internal/ui/renderer"
)

// Status text occupies the top of the window
const boardOffsetY = 40

// UI configuration functions
func ScreenWidth() int {
	return config.Get().UI.Window.Width
}

func ScreenHeight() int {
	return config.Get().UI.Window.Height
}

// UIGame drives an Engine from the Ebitengine frame loop. A turn is
// triggered every turnInterval frames, or on demand with space.
type UIGame struct {
	engine        *game.Engine
	boardRenderer *renderer.EnhancedBoardRenderer
	inputHandler  *input.Handler
	defaultFont   font.Face
	logger        zerolog.Logger

	turnInterval int
	turnTimer    int
	lastErr      error
}

// NewUIGame creates a new Ebitengine game instance.
func NewUIGame(engine *game.Engine, tileSize, turnInterval int, logger zerolog.Logger) (*UIGame, error) {
	if tileSize <= 1 || turnInterval <= 0 {
		return nil, fmt.Errorf("invalid ui settings: tile size %d, turn interval %d", tileSize, turnInterval)
	}

	g := &UIGame{
		engine:       engine,
		defaultFont:  basicfont.Face7x13,
		logger:       logger.With().Str("component", "UIGame").Logger(),
		turnInterval: turnInterval,
	}
	g.boardRenderer = renderer.NewEnhancedBoardRenderer(tileSize, g.defaultFont)
	g.inputHandler = input.NewHandler(tileSize)
	g.inputHandler.SetBoardOffset(0, boardOffsetY)

	snap := engine.Snapshot()
	g.inputHandler.SetTileValidator(func(x, y int) (bool, string) {
		if x < 0 || x >= snap.Width || y < 0 || y >= snap.Height {
			return false, "outside the arena"
		}
		return true, ""
	})

	return g, nil
}

// Update proceeds the game state.
func (g *UIGame) Update() error {
	for _, cmd := range g.inputHandler.Update() {
		switch cmd {
		case input.CommandQuit:
			return ebiten.Termination
		case input.CommandStep:
			g.step()
		case input.CommandTogglePause:
			g.togglePause()
		case input.CommandFaster:
			g.turnInterval = max(1, g.turnInterval/2)
		case input.CommandSlower:
			g.turnInterval = min(600, g.turnInterval*2)
		}
	}

	g.Tick()
	g.refreshSelection()
	return nil
}

// Tick advances the frame counter and steps the engine when it expires
func (g *UIGame) Tick() {
	if g.engine.Phase() != states.PhaseRunning {
		return
	}
	g.turnTimer++
	if g.turnTimer < g.turnInterval {
		return
	}
	g.turnTimer = 0
	g.step()
}

func (g *UIGame) step() {
	if _, err := g.engine.Step(context.Background()); err != nil {
		g.lastErr = err
		if !errors.Is(err, core.ErrLevelEnded) && !errors.Is(err, core.ErrLevelPaused) {
			g.logger.Error().Err(err).Msg("Turn failed")
		}
	}
}

func (g *UIGame) togglePause() {
	var err error
	if g.engine.Phase() == states.PhasePaused {
		err = g.engine.Resume()
	} else {
		err = g.engine.Pause()
	}
	if err != nil {
		g.lastErr = err
	}
}

// refreshSelection keeps the legal-move overlay in step with the unit under
// the selected tile
func (g *UIGame) refreshSelection() {
	hx, hy := g.inputHandler.GetHoveredTile()
	g.boardRenderer.SetHover(hx, hy)

	x, y, ok := g.inputHandler.GetSelectedTile()
	if !ok {
		g.boardRenderer.ClearSelection()
		return
	}
	slot := g.engine.SlotAt(x, y)
	if slot == core.NoUnit {
		g.boardRenderer.ClearSelection()
		return
	}
	g.boardRenderer.SetSelection(y*g.engine.Snapshot().Width+x, g.engine.Adjacency(slot))
}

// Draw renders the game screen.
func (g *UIGame) Draw(screen *ebiten.Image) {
	screen.Fill(common.BackgroundColor)

	snap := g.engine.Snapshot()
	g.boardRenderer.Draw(screen, snap, g.engine.Units(), 0, boardOffsetY)

	ebitenutil.DebugPrintAt(screen, g.StatusLine(), 5, 5)
	alive := g.engine.AliveByTeam()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("A=%d B=%d  space:step p:pause +/-:speed q:quit", alive[core.TeamA], alive[core.TeamB]), 5, 20)
}

// StatusLine summarizes the level for the header
func (g *UIGame) StatusLine() string {
	line := fmt.Sprintf("Turn %d  %s  seed %d", g.engine.Turn(), g.engine.Phase(), g.engine.Seed())
	if cands := g.boardRenderer.Candidates(); cands != nil {
		line += fmt.Sprintf("  moves %v", cands)
	}
	return line
}

// Layout defines the Ebitengine screen size.
func (g *UIGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenWidth(), ScreenHeight()
}
