package core

import "fmt"

// Coordinate represents a position on the arena grid
type Coordinate struct {
	X, Y int
}

// FromIndex creates a coordinate from a linear grid index using row-major ordering
func FromIndex(idx, width int) Coordinate {
	return Coordinate{
		X: idx % width,
		Y: idx / width,
	}
}

// ChebyshevDistance is the number of king moves between two coordinates
func (c Coordinate) ChebyshevDistance(other Coordinate) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// IsNeighbor reports whether other is one of the 8 tiles surrounding c
func (c Coordinate) IsNeighbor(other Coordinate) bool {
	return c.ChebyshevDistance(other) == 1
}

// Sub returns a new coordinate that is the difference between this coordinate and another
func (c Coordinate) Sub(other Coordinate) Coordinate {
	return Coordinate{
		X: c.X - other.X,
		Y: c.Y - other.Y,
	}
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction names one of the 8 neighbouring tiles. The declaration order is
// the order in which adjacency results are produced.
type Direction int

const (
	Left Direction = iota
	Right
	Top
	Bottom
	TopLeft
	TopRight
	BottomLeft
	BottomRight
)

var directionNames = [...]string{"left", "right", "top", "bottom", "top-left", "top-right", "bottom-left", "bottom-right"}

func (d Direction) String() string {
	if d < Left || d > BottomRight {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// DirectionVectors provides coordinate offsets for each direction
var DirectionVectors = [...]Coordinate{
	Left:        {X: -1, Y: 0},
	Right:       {X: 1, Y: 0},
	Top:         {X: 0, Y: -1},
	Bottom:      {X: 0, Y: 1},
	TopLeft:     {X: -1, Y: -1},
	TopRight:    {X: 1, Y: -1},
	BottomLeft:  {X: -1, Y: 1},
	BottomRight: {X: 1, Y: 1},
}

// DirectionTo returns the direction from this coordinate to a neighbouring coordinate.
// Returns -1 if the coordinates are not neighbours.
func (c Coordinate) DirectionTo(other Coordinate) Direction {
	if !c.IsNeighbor(other) {
		return -1
	}
	delta := other.Sub(c)
	for d, v := range DirectionVectors {
		if v == delta {
			return Direction(d)
		}
	}
	return -1
}
