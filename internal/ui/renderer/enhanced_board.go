package renderer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/GridArena/internal/game/core"
)

var (
	SelectionColor = color.RGBA{255, 255, 100, 255} // Yellow border
	ValidMoveColor = color.RGBA{100, 255, 100, 128} // Semi-transparent green
	HoverColor     = color.RGBA{255, 255, 255, 64}  // Semi-transparent white
)

// EnhancedBoardRenderer adds a hover highlight and, for a selected unit,
// overlays on the tiles its adjacency currently allows.
type EnhancedBoardRenderer struct {
	*BoardRenderer

	selected     int
	hasSelection bool
	moves        core.Adjacency

	hoverX, hoverY int
}

func NewEnhancedBoardRenderer(tileSize int, f font.Face) *EnhancedBoardRenderer {
	return &EnhancedBoardRenderer{
		BoardRenderer: NewBoardRenderer(tileSize, f),
		selected:      -1,
	}
}

// SetSelection marks tile idx and the legal destinations of the unit on it
func (ebr *EnhancedBoardRenderer) SetSelection(idx int, candidates core.Adjacency) {
	ebr.selected = idx
	ebr.hasSelection = true
	ebr.moves = candidates
}

func (ebr *EnhancedBoardRenderer) ClearSelection() {
	ebr.selected = -1
	ebr.hasSelection = false
	ebr.moves = core.Adjacency{}
}

// Candidates returns the highlighted destination tiles, nil without a selection
func (ebr *EnhancedBoardRenderer) Candidates() []int {
	if !ebr.hasSelection {
		return nil
	}
	return ebr.moves.Slice()
}

// IsCandidate reports whether tile idx is highlighted as a legal destination
func (ebr *EnhancedBoardRenderer) IsCandidate(idx int) bool {
	return ebr.hasSelection && ebr.moves.Contains(idx)
}

func (ebr *EnhancedBoardRenderer) SetHover(x, y int) {
	ebr.hoverX = x
	ebr.hoverY = y
}

func (ebr *EnhancedBoardRenderer) Draw(screen *ebiten.Image, snap core.Snapshot, units []core.Unit, offsetX, offsetY int) {
	ebr.BoardRenderer.Draw(screen, snap, units, offsetX, offsetY)

	for idx := range snap.Tiles {
		if ebr.IsCandidate(idx) {
			ebr.drawTileOverlay(screen, idx%snap.Width, idx/snap.Width, offsetX, offsetY, ValidMoveColor)
		}
	}
	if ebr.hoverX >= 0 && ebr.hoverX < snap.Width && ebr.hoverY >= 0 && ebr.hoverY < snap.Height {
		ebr.drawTileOverlay(screen, ebr.hoverX, ebr.hoverY, offsetX, offsetY, HoverColor)
	}
	if ebr.hasSelection {
		ebr.drawSelectionBorder(screen, ebr.selected%snap.Width, ebr.selected/snap.Width, offsetX, offsetY)
	}
}

func (ebr *EnhancedBoardRenderer) drawTileOverlay(screen *ebiten.Image, gridX, gridY, offsetX, offsetY int, c color.Color) {
	screenX := float32(offsetX + gridX*ebr.tileSize)
	screenY := float32(offsetY + gridY*ebr.tileSize)
	size := float32(ebr.tileSize)

	vector.DrawFilledRect(screen, screenX, screenY, size, size, c, false)
}

func (ebr *EnhancedBoardRenderer) drawSelectionBorder(screen *ebiten.Image, gridX, gridY, offsetX, offsetY int) {
	screenX := float32(offsetX + gridX*ebr.tileSize)
	screenY := float32(offsetY + gridY*ebr.tileSize)
	size := float32(ebr.tileSize)
	thickness := float32(3)

	vector.DrawFilledRect(screen, screenX, screenY, size, thickness, SelectionColor, false)
	vector.DrawFilledRect(screen, screenX, screenY+size-thickness, size, thickness, SelectionColor, false)
	vector.DrawFilledRect(screen, screenX, screenY, thickness, size, SelectionColor, false)
	vector.DrawFilledRect(screen, screenX+size-thickness, screenY, thickness, size, SelectionColor, false)
}
