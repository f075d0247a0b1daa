package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconstructPath(t *testing.T) {
	// 0 <- 3 <- 4 <- 7
	cameFrom := []int{NoParent, NoParent, NoParent, 0, 3, NoParent, NoParent, 4}
	assert.Equal(t, []int{0, 3, 4, 7}, ReconstructPath(cameFrom, 7, 0))
	assert.Equal(t, []int{0}, ReconstructPath(cameFrom, 0, 0))
}

func TestReconstructPathStopsAtBrokenChain(t *testing.T) {
	cameFrom := []int{NoParent, NoParent, 1}
	assert.Equal(t, []int{1, 2}, ReconstructPath(cameFrom, 2, 0))
}
