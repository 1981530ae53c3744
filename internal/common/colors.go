package common

import (
	"image/color"
)

// Team palette, indexed by team id. Overridden from config by SetPalette.
var TeamColors = map[int]color.RGBA{
	0: {200, 50, 50, 255},  // Team A, red
	1: {50, 100, 200, 255}, // Team B, blue
}

// Tile and UI colors
var (
	EmptyTileColor  = color.RGBA{120, 120, 120, 255}
	DeadUnitColor   = color.RGBA{60, 60, 60, 255}
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	GridLineColor   = color.RGBA{50, 50, 50, 255}
	TextColor       = color.White
)

// RGB converts a config triple to an opaque color
func RGB(c [3]int) color.RGBA {
	return color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255}
}

// SetPalette replaces the team and tile colors
func SetPalette(teamA, teamB, empty, background, gridLines [3]int) {
	TeamColors[0] = RGB(teamA)
	TeamColors[1] = RGB(teamB)
	EmptyTileColor = RGB(empty)
	BackgroundColor = RGB(background)
	GridLineColor = RGB(gridLines)
}

// TeamColor returns the palette entry for team, falling back to white
func TeamColor(team int) color.RGBA {
	if c, ok := TeamColors[team]; ok {
		return c
	}
	return color.RGBA{255, 255, 255, 255}
}
