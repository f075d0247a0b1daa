package gridastar

import "github.com/cockroachdb/errors"

// directions is the adjacency scan order: down, up, right, left.
var directions = [4]Position{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid owns rows×rows nodes stored row-major.
type Grid struct {
	rows  int
	nodes []Node
}

// NewGrid builds a rows×rows grid of Empty nodes.
func NewGrid(rows int) (*Grid, error) {
	if rows <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "rows=%d (must be > 0)", rows)
	}
	g := &Grid{rows: rows, nodes: make([]Node, rows*rows)}
	for i := 0; i < rows; i++ {
		for j := 0; j < rows; j++ {
			g.nodes[i*rows+j] = Node{position: Position{Row: i, Col: j}}
		}
	}
	return g, nil
}

// Rows returns the grid extent N.
func (g *Grid) Rows() int { return g.rows }

// Size returns N*N.
func (g *Grid) Size() int { return len(g.nodes) }

func (g *Grid) contains(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.rows
}

func (g *Grid) index(p Position) int { return p.Row*g.rows + p.Col }

// NodeAt returns the node at (row, col).
func (g *Grid) NodeAt(row, col int) (*Node, error) {
	return g.Node(Position{Row: row, Col: col})
}

// Node returns the node at p.
func (g *Grid) Node(p Position) (*Node, error) {
	if !g.contains(p) {
		return nil, errors.Wrapf(ErrOutOfBounds, "%s on %dx%d grid", p, g.rows, g.rows)
	}
	return &g.nodes[g.index(p)], nil
}

// At returns the node at a row-major linear index.
func (g *Grid) At(index int) (*Node, error) {
	if index < 0 || index >= len(g.nodes) {
		return nil, errors.Wrapf(ErrOutOfBounds, "index %d on grid of %d cells", index, len(g.nodes))
	}
	return &g.nodes[index], nil
}

// CellAt translates a pixel coordinate on a square surface of the given width
// into the cell under it. x runs along columns and y along rows.
func (g *Grid) CellAt(x, y, width int) (Position, error) {
	cell := width / g.rows
	if cell <= 0 {
		return Position{}, errors.Wrapf(ErrInvalidDimension, "surface width %d too small for %d rows", width, g.rows)
	}
	if x < 0 || y < 0 {
		return Position{}, errors.Wrapf(ErrOutOfBounds, "pixel (%d,%d)", x, y)
	}
	p := Position{Row: y / cell, Col: x / cell}
	if !g.contains(p) {
		return Position{}, errors.Wrapf(ErrOutOfBounds, "pixel (%d,%d) maps to %s", x, y, p)
	}
	return p, nil
}

// RecomputeAdjacency rebuilds every neighbor list from the current barrier
// states. It must run after any barrier change and before any search.
func (g *Grid) RecomputeAdjacency() {
	for i := range g.nodes {
		node := &g.nodes[i]
		node.neighbors = node.neighbors[:0]
		if node.IsBarrier() {
			continue
		}
		for _, d := range directions {
			p := Position{Row: node.position.Row + d.Row, Col: node.position.Col + d.Col}
			if !g.contains(p) {
				continue
			}
			j := g.index(p)
			if g.nodes[j].IsBarrier() {
				continue
			}
			node.neighbors = append(node.neighbors, j)
		}
	}
}

// Neighbors returns the cached neighbor positions of p in scan order.
func (g *Grid) Neighbors(p Position) ([]Position, error) {
	node, err := g.Node(p)
	if err != nil {
		return nil, err
	}
	out := make([]Position, 0, len(node.neighbors))
	for _, j := range node.neighbors {
		out = append(out, g.nodes[j].position)
	}
	return out, nil
}

// Walk calls fn for every node in row-major order.
func (g *Grid) Walk(fn func(n *Node)) {
	for i := range g.nodes {
		fn(&g.nodes[i])
	}
}

// Clear resets every node to Empty.
func (g *Grid) Clear() {
	for i := range g.nodes {
		g.nodes[i].Reset()
	}
}

// ResetAll is the host command for a full restart.
func (g *Grid) ResetAll() { g.Clear() }

// ClearSearch drops Frontier, Visited and Path marks left by a previous run,
// keeping Start, End and Barrier cells.
func (g *Grid) ClearSearch() {
	for i := range g.nodes {
		switch g.nodes[i].state {
		case Frontier, Visited, Path:
			g.nodes[i].Reset()
		}
	}
}

func (g *Grid) set(p Position, s NodeState) error {
	node, err := g.Node(p)
	if err != nil {
		return err
	}
	node.SetState(s)
	return nil
}

// SetBarrier marks p impassable. Adjacency is not refreshed.
func (g *Grid) SetBarrier(p Position) error { return g.set(p, Barrier) }

// SetStart marks p as the start cell.
func (g *Grid) SetStart(p Position) error { return g.set(p, Start) }

// SetEnd marks p as the end cell.
func (g *Grid) SetEnd(p Position) error { return g.set(p, End) }

// ClearCell resets p to Empty.
func (g *Grid) ClearCell(p Position) error { return g.set(p, Empty) }
