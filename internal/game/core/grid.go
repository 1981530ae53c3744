package core

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// TileState is the occupancy of a single grid cell.
type TileState uint8

const (
	TileEmpty TileState = iota
	TileOccupied
)

func (s TileState) String() string {
	switch s {
	case TileEmpty:
		return "empty"
	case TileOccupied:
		return "occupied"
	default:
		return fmt.Sprintf("TileState(%d)", uint8(s))
	}
}

// NoUnit marks a tile that no unit slot occupies.
const NoUnit = -1

// MinDimension is the smallest accepted width or height.
const MinDimension = 2

// Grid owns tile occupancy for a W×H board. Units are referred to by slot:
// the order in which they were placed. The grid never holds unit values.
type Grid struct {
	W, H int
	T    []TileState // length = W*H (row-major)

	positions []int // slot -> linear index
	occupants []int // linear index -> slot, NoUnit when empty

	logger zerolog.Logger
}

// NewGrid allocates a width×height grid with every tile Empty.
func NewGrid(width, height int) (*Grid, error) {
	if width < MinDimension || height < MinDimension {
		return nil, WrapSetupError("init grid", width, height,
			fmt.Errorf("%w: width and height must be at least %d", ErrInvalidDimension, MinDimension))
	}
	if width > math.MaxInt/height {
		return nil, WrapSetupError("init grid", width, height,
			fmt.Errorf("%w: width*height overflows", ErrInvalidDimension))
	}

	size := width * height
	g := &Grid{
		W:         width,
		H:         height,
		T:         make([]TileState, size),
		positions: make([]int, 0, 8),
		occupants: make([]int, size),
		logger:    zerolog.Nop(),
	}
	for i := range g.occupants {
		g.occupants[i] = NoUnit
	}
	return g, nil
}

// SetLogger attaches a logger used for per-direction trace output.
func (g *Grid) SetLogger(logger zerolog.Logger) {
	g.logger = logger.With().Str("component", "grid").Logger()
}

func (g *Grid) Size() int                { return len(g.T) }
func (g *Grid) Idx(x, y int) int         { return y*g.W + x }
func (g *Grid) Coord(idx int) Coordinate { return FromIndex(idx, g.W) }

// InBounds checks if coordinates are within grid boundaries
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// ValidIndex checks if a linear index addresses a tile
func (g *Grid) ValidIndex(idx int) bool {
	return idx >= 0 && idx < len(g.T)
}

// Tile returns the state at idx. idx must be valid.
func (g *Grid) Tile(idx int) TileState { return g.T[idx] }

// UnitCount returns the number of placed units.
func (g *Grid) UnitCount() int { return len(g.positions) }

// Position returns the linear index held by slot.
func (g *Grid) Position(slot int) int {
	g.mustSlot(slot)
	return g.positions[slot]
}

// Positions returns a copy of every slot's position, in slot order.
func (g *Grid) Positions() []int {
	out := make([]int, len(g.positions))
	copy(out, g.positions)
	return out
}

// SlotAt returns the slot occupying idx, or NoUnit.
func (g *Grid) SlotAt(idx int) int {
	if !g.ValidIndex(idx) {
		return NoUnit
	}
	return g.occupants[idx]
}

// Place puts a new unit on idx and returns its slot. Placing onto an invalid
// or occupied tile is a programming error and panics.
func (g *Grid) Place(idx int) int {
	if !g.ValidIndex(idx) {
		panic(fmt.Sprintf("grid: place at %d outside [0,%d)", idx, len(g.T)))
	}
	if g.T[idx] != TileEmpty {
		panic(fmt.Sprintf("grid: place at %d: tile already occupied by slot %d", idx, g.occupants[idx]))
	}

	slot := len(g.positions)
	g.T[idx] = TileOccupied
	g.occupants[idx] = slot
	g.positions = append(g.positions, idx)
	return slot
}

// Move relocates slot to idx. The destination must be an Empty tile one step
// away; callers obtain it from Adjacency so a violation is a programming error
// and panics.
func (g *Grid) Move(slot, idx int) {
	g.mustSlot(slot)
	if !g.ValidIndex(idx) {
		panic(fmt.Sprintf("grid: move slot %d to %d outside [0,%d)", slot, idx, len(g.T)))
	}
	if g.T[idx] != TileEmpty {
		panic(fmt.Sprintf("grid: move slot %d to %d: tile occupied by slot %d", slot, idx, g.occupants[idx]))
	}

	from := g.positions[slot]
	dir := g.Coord(from).DirectionTo(g.Coord(idx))
	if dir < Left {
		panic(fmt.Sprintf("grid: move slot %d from %s to %s: not a neighbouring tile", slot, g.Coord(from), g.Coord(idx)))
	}
	g.logger.Trace().
		Int("slot", slot).
		Int("from", from).
		Int("to", idx).
		Stringer("direction", dir).
		Msg("Unit moved")

	g.T[from] = TileEmpty
	g.occupants[from] = NoUnit
	g.T[idx] = TileOccupied
	g.occupants[idx] = slot
	g.positions[slot] = idx
}

// Snapshot copies tile states and unit positions for read-only consumers.
func (g *Grid) Snapshot() Snapshot {
	tiles := make([]TileState, len(g.T))
	copy(tiles, g.T)
	return Snapshot{
		Width:     g.W,
		Height:    g.H,
		Tiles:     tiles,
		Positions: g.Positions(),
	}
}

func (g *Grid) mustSlot(slot int) {
	if slot < 0 || slot >= len(g.positions) {
		panic(fmt.Sprintf("grid: unknown unit slot %d (have %d)", slot, len(g.positions)))
	}
}

// Snapshot is an immutable copy of grid state in board-scan order.
type Snapshot struct {
	Width, Height int
	Tiles         []TileState // row-major, index 0..W*H-1
	Positions     []int       // slot -> linear index
}

// OccupiedCount returns how many tiles are Occupied.
func (s Snapshot) OccupiedCount() int {
	n := 0
	for _, t := range s.Tiles {
		if t == TileOccupied {
			n++
		}
	}
	return n
}
