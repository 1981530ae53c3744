package renderer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"github.com/mitchelldurbincs/GridArena/internal/common"
	"github.com/mitchelldurbincs/GridArena/internal/game/core"
)

// BoardRenderer draws a grid snapshot, one square per tile
type BoardRenderer struct {
	tileSize    int
	defaultFont font.Face
	cell        *ebiten.Image
}

// NewBoardRenderer returns a renderer ready to use.
func NewBoardRenderer(tileSize int, f font.Face) *BoardRenderer {
	return &BoardRenderer{tileSize: tileSize, defaultFont: f}
}

func (br *BoardRenderer) TileSize() int { return br.tileSize }

// Draw renders the snapshot on the supplied Ebiten screen at (offsetX, offsetY).
func (br *BoardRenderer) Draw(screen *ebiten.Image, snap core.Snapshot, units []core.Unit, offsetX, offsetY int) {
	if br.cell == nil {
		// One pixel smaller than the tile leaves a grid line
		br.cell = ebiten.NewImage(br.tileSize-1, br.tileSize-1)
	}

	occupant := occupants(snap)
	for i, tile := range snap.Tiles {
		gridX, gridY := i%snap.Width, i/snap.Width
		screenX := float64(offsetX + gridX*br.tileSize)
		screenY := float64(offsetY + gridY*br.tileSize)

		br.cell.Fill(TileColor(tile, occupant[i], units))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(screenX, screenY)
		screen.DrawImage(br.cell, op)

		label := TileLabel(tile, occupant[i], units)
		if label == "" || br.defaultFont == nil {
			continue
		}
		b := text.BoundString(br.defaultFont, label)
		textW := b.Max.X - b.Min.X
		textH := b.Max.Y - b.Min.Y
		x := int(screenX) + (br.tileSize-textW)/2
		y := int(screenY) + (br.tileSize+textH)/2
		text.Draw(screen, label, br.defaultFont, x, y, common.TextColor)
	}
}

// TileColor picks the fill for a tile holding slot (or core.NoUnit)
func TileColor(tile core.TileState, slot int, units []core.Unit) color.Color {
	switch {
	case tile == core.TileEmpty:
		return common.EmptyTileColor
	case slot < 0 || slot >= len(units):
		return common.TeamColor(-1)
	case !units[slot].Alive():
		return common.DeadUnitColor
	default:
		return common.TeamColor(int(units[slot].Team))
	}
}

// TileLabel is the text drawn on a tile: the team letter, or nothing
func TileLabel(tile core.TileState, slot int, units []core.Unit) string {
	if tile == core.TileEmpty || slot < 0 || slot >= len(units) {
		return ""
	}
	if !units[slot].Alive() {
		return "x"
	}
	return units[slot].Team.String()
}

func occupants(snap core.Snapshot) []int {
	out := make([]int, len(snap.Tiles))
	for i := range out {
		out[i] = core.NoUnit
	}
	for slot, pos := range snap.Positions {
		out[pos] = slot
	}
	return out
}
