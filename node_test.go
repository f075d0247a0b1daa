package gridastar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeStateTransitions(t *testing.T) {
	n := &Node{position: Position{Row: 2, Col: 3}}
	assert.Equal(t, Empty, n.State())

	n.SetState(Barrier)
	assert.True(t, n.IsBarrier())
	n.Reset()
	assert.Equal(t, Empty, n.State())
	assert.Equal(t, Position{Row: 2, Col: 3}, n.Position())
}

func TestNodeEqualityIsByPosition(t *testing.T) {
	a := &Node{position: Position{Row: 1, Col: 1}, state: Visited}
	b := &Node{position: Position{Row: 1, Col: 1}, state: Path}
	c := &Node{position: Position{Row: 1, Col: 2}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestNodeStateString(t *testing.T) {
	assert.Equal(t, "frontier", Frontier.String())
	assert.Equal(t, "path", Path.String())
	assert.Equal(t, "NodeState(42)", NodeState(42).String())
	assert.Equal(t, "(4,0)[end]", (&Node{position: Position{Row: 4}, state: End}).String())
}
