package gridastar

import "fmt"

// Position is a (row, column) coordinate on the grid.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// NodeState is the traversal or display state of a cell. States are mutually
// exclusive.
type NodeState int

const (
	Empty NodeState = iota
	Start
	End
	Barrier
	Frontier
	Visited
	Path
)

var nodeStateNames = [...]string{
	Empty:    "empty",
	Start:    "start",
	End:      "end",
	Barrier:  "barrier",
	Frontier: "frontier",
	Visited:  "visited",
	Path:     "path",
}

func (s NodeState) String() string {
	if s < 0 || int(s) >= len(nodeStateNames) {
		return fmt.Sprintf("NodeState(%d)", int(s))
	}
	return nodeStateNames[s]
}

// Node is a single grid cell. Nodes are owned by their Grid; the neighbor list
// holds arena indices and is only valid after Grid.RecomputeAdjacency.
type Node struct {
	position  Position
	state     NodeState
	neighbors []int
}

// Position returns the node's fixed coordinate.
func (n *Node) Position() Position { return n.position }

// State returns the current state.
func (n *Node) State() NodeState { return n.state }

// SetState assigns s without checking exclusivity against sibling nodes.
func (n *Node) SetState(s NodeState) { n.state = s }

// Reset forces the node back to Empty.
func (n *Node) Reset() { n.state = Empty }

// IsBarrier reports whether the node blocks movement.
func (n *Node) IsBarrier() bool { return n.state == Barrier }

// Equal reports whether both nodes sit at the same position.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.position == other.position
}

func (n *Node) String() string {
	return fmt.Sprintf("%s[%s]", n.position, n.state)
}
