package core

import "fmt"

// MaxNeighbors is the most tiles that can surround a cell.
const MaxNeighbors = 8

// Adjacency is a fixed-capacity, order-preserving list of legal move targets.
type Adjacency struct {
	idx  [MaxNeighbors]int
	dirs [MaxNeighbors]Direction
	n    int
}

func (a *Adjacency) push(idx int, d Direction) {
	a.idx[a.n] = idx
	a.dirs[a.n] = d
	a.n++
}

func (a Adjacency) Len() int    { return a.n }
func (a Adjacency) Empty() bool { return a.n == 0 }

// At returns the i-th target index.
func (a Adjacency) At(i int) int {
	if i < 0 || i >= a.n {
		panic(fmt.Sprintf("adjacency: index %d out of range [0,%d)", i, a.n))
	}
	return a.idx[i]
}

// DirectionAt returns the direction the i-th target lies in.
func (a Adjacency) DirectionAt(i int) Direction {
	if i < 0 || i >= a.n {
		panic(fmt.Sprintf("adjacency: index %d out of range [0,%d)", i, a.n))
	}
	return a.dirs[i]
}

// Slice copies the targets into a new slice.
func (a Adjacency) Slice() []int {
	out := make([]int, a.n)
	copy(out, a.idx[:a.n])
	return out
}

// Contains reports whether idx is one of the targets.
func (a Adjacency) Contains(idx int) bool {
	for _, v := range a.idx[:a.n] {
		if v == idx {
			return true
		}
	}
	return false
}

// walls records which sides of a cell are grid edges. An occupied neighbour
// is an obstacle, not a wall, and is never recorded here.
type walls struct {
	left, right, top, bottom bool
}

// Adjacency returns the free tiles slot may move to this turn.
func (g *Grid) Adjacency(slot int) Adjacency {
	return g.AdjacencyAt(g.Position(slot))
}

// AdjacencyAt computes the legal move targets around pos, in the order
// left, right, top, bottom, top-left, top-right, bottom-left, bottom-right.
//
// A diagonal is suppressed only by a wall on one of its two orthogonal sides;
// an obstacle on an orthogonal side does not block it, so units may cut
// corners past each other but never past a grid edge.
func (g *Grid) AdjacencyAt(pos int) Adjacency {
	if !g.ValidIndex(pos) {
		panic(fmt.Sprintf("grid: adjacency for %d outside [0,%d)", pos, len(g.T)))
	}

	w := g.W
	size := len(g.T)
	var wall walls
	var adj Adjacency

	switch {
	case pos%w == 0:
		wall.left = true
		g.trace(pos, Left, "wall")
	case pos > 0 && g.T[pos-1] != TileEmpty:
		g.trace(pos, Left, "obstacle")
	default:
		adj.push(pos-1, Left)
	}

	switch {
	case (pos+1)%w == 0:
		wall.right = true
		g.trace(pos, Right, "wall")
	case pos+1 < size && g.T[pos+1] != TileEmpty:
		g.trace(pos, Right, "obstacle")
	default:
		adj.push(pos+1, Right)
	}

	switch {
	case pos < w:
		wall.top = true
		g.trace(pos, Top, "wall")
	case g.T[pos-w] != TileEmpty:
		g.trace(pos, Top, "obstacle")
	default:
		adj.push(pos-w, Top)
	}

	switch {
	case pos >= w*(g.H-1):
		wall.bottom = true
		g.trace(pos, Bottom, "wall")
	case g.T[pos+w] != TileEmpty:
		g.trace(pos, Bottom, "obstacle")
	default:
		adj.push(pos+w, Bottom)
	}

	if !wall.left && !wall.top && pos > w && g.T[pos-w-1] == TileEmpty {
		adj.push(pos-w-1, TopLeft)
	}
	if !wall.right && !wall.top && pos-w+1 >= 0 && g.T[pos-w+1] == TileEmpty {
		adj.push(pos-w+1, TopRight)
	}
	if !wall.left && !wall.bottom && pos+w-1 < size && g.T[pos+w-1] == TileEmpty {
		adj.push(pos+w-1, BottomLeft)
	}
	if !wall.right && !wall.bottom && pos+w+1 < size && g.T[pos+w+1] == TileEmpty {
		adj.push(pos+w+1, BottomRight)
	}

	g.logger.Trace().
		Int("pos", pos).
		Ints("targets", adj.idx[:adj.n]).
		Msg("Adjacency computed")

	return adj
}

func (g *Grid) trace(pos int, d Direction, reason string) {
	g.logger.Trace().
		Int("pos", pos).
		Stringer("direction", d).
		Str("blocked_by", reason).
		Msg("Direction blocked")
}
