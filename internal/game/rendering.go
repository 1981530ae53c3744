package game

import (
	"strings"

	"github.com/mitchelldurbincs/GridArena/internal/game/core"
)

// ANSI color codes
const (
	ColorReset = "\033[0m"
	ColorRed   = "\033[31m"
	ColorBlue  = "\033[34m"
	ColorWhite = "\033[37m"
	ColorGray  = "\033[90m"
)

const (
	EmptySymbol = "·"
	DeadSymbol  = "x"
)

var teamColors = []string{ColorRed, ColorBlue}

// Board returns a colored text rendering of the grid
func (e *Engine) Board() string {
	return RenderBoard(e.grid.Snapshot(), e.roster.Units(), true)
}

// RenderBoard draws a snapshot in scan order. Each occupied tile shows its
// unit's team letter; dead units are drawn as x. Colors are optional so
// the output can be compared in tests.
func RenderBoard(snap core.Snapshot, units []core.Unit, color bool) string {
	// Each cell: up to 2 symbol chars plus ANSI codes; plus header and legend
	var sb strings.Builder
	sb.Grow((snap.Width*16+8)*(snap.Height+3) + 64)

	occupant := make([]int, len(snap.Tiles))
	for i := range occupant {
		occupant[i] = core.NoUnit
	}
	for slot, pos := range snap.Positions {
		occupant[pos] = slot
	}

	sb.WriteString("   ")
	for x := 0; x < snap.Width; x++ {
		sb.WriteString(core.IntToStringFixedWidth(x, 2))
	}
	sb.WriteString("\n")

	for y := 0; y < snap.Height; y++ {
		sb.WriteString(core.IntToStringFixedWidth(y, 2))
		sb.WriteString(" ")
		for x := 0; x < snap.Width; x++ {
			idx := y*snap.Width + x
			writeTile(&sb, snap.Tiles[idx], occupant[idx], units, color)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(EmptySymbol)
	sb.WriteString("=empty A,B=teams ")
	sb.WriteString(DeadSymbol)
	sb.WriteString("=dead\n")
	return sb.String()
}

func writeTile(sb *strings.Builder, tile core.TileState, slot int, units []core.Unit, color bool) {
	var symbol, code string
	switch {
	case tile == core.TileEmpty:
		symbol, code = EmptySymbol, ColorGray
	case slot < 0 || slot >= len(units):
		symbol, code = "?", ColorWhite
	case !units[slot].Alive():
		symbol, code = DeadSymbol, ColorGray
	default:
		symbol, code = units[slot].Team.String(), teamColor(units[slot].Team)
	}

	sb.WriteString(" ")
	if color {
		sb.WriteString(code)
	}
	sb.WriteString(symbol)
	if color {
		sb.WriteString(ColorReset)
	}
}

func teamColor(team core.Team) string {
	if int(team) >= 0 && int(team) < len(teamColors) {
		return teamColors[team]
	}
	return ColorWhite
}
