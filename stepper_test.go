package gridastar

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stepperMaze = []string{
	"S....#..",
	".###.#..",
	"...#....",
	"##.####.",
	"........",
	".######.",
	".#....#.",
	"...##..E",
}

func TestStepperMatchesSearch(t *testing.T) {
	g, start, end := buildGrid(t, stepperMaze...)
	var searchOrder []Position
	want, err := Search(context.Background(), g, start, end,
		ObserverFuncs{Expand: func(n *Node) { searchOrder = append(searchOrder, n.Position()) }})
	require.NoError(t, err)
	require.True(t, want.Found())

	g, start, end = buildGrid(t, stepperMaze...)
	stepper, err := NewStepper(g, start, end, nil)
	require.NoError(t, err)

	var stepOrder []Position
	var snap StepSnapshot
	for !stepper.Done() {
		snap = stepper.Step()
		if !snap.Done {
			require.True(t, snap.HasCurrent)
			stepOrder = append(stepOrder, snap.Current)
		}
	}

	assert.Equal(t, searchOrder, stepOrder)
	assert.Equal(t, Found, snap.Outcome)
	assert.Equal(t, end, snap.Current)
	assert.Equal(t, want.Path, snap.Path)
	assert.Equal(t, want, stepper.Result())
	assert.Equal(t, len(searchOrder)+1, snap.StepIndex)

	// Further steps are idempotent.
	again := stepper.Step()
	assert.Equal(t, snap, again)
}

func TestStepperNotFound(t *testing.T) {
	g, start, end := buildGrid(t,
		"S#.",
		"##.",
		"..E",
	)
	stepper, err := NewStepper(g, start, end, nil)
	require.NoError(t, err)

	first := stepper.Step()
	assert.False(t, first.Done)
	assert.Equal(t, start, first.Current)

	last := stepper.Step()
	assert.True(t, last.Done)
	assert.Equal(t, NotFound, last.Outcome)
	assert.Nil(t, last.Path)
}

func TestStepperCancel(t *testing.T) {
	g, start, end := buildGrid(t, stepperMaze...)
	var pathSteps int
	stepper, err := NewStepper(g, start, end, ObserverFuncs{Path: func(*Node) { pathSteps++ }})
	require.NoError(t, err)

	stepper.Step()
	stepper.Step()
	stepper.Cancel()

	snap := stepper.Step()
	assert.True(t, snap.Done)
	assert.Equal(t, Cancelled, snap.Outcome)
	assert.Equal(t, 2, snap.Expanded)
	assert.Zero(t, pathSteps)
	assert.Equal(t, 1, statesOf(g)[Visited])
}

func TestStepperPollsObserver(t *testing.T) {
	g, start, end := buildGrid(t, stepperMaze...)
	expanded := 0
	stepper, err := NewStepper(g, start, end, ObserverFuncs{
		Cancel: func() bool { return expanded == 3 },
		Expand: func(*Node) { expanded++ },
	})
	require.NoError(t, err)

	var snap StepSnapshot
	for !stepper.Done() {
		snap = stepper.Step()
	}
	assert.Equal(t, Cancelled, snap.Outcome)
	assert.Equal(t, 3, snap.Expanded)
	assert.Equal(t, 4, snap.StepIndex)
	assert.Nil(t, snap.Path)
	assert.Equal(t, 2, statesOf(g)[Visited])
}

func TestNewStepperRejectsInvalidEndpoints(t *testing.T) {
	g, start, _ := buildGrid(t,
		"S#",
		".E",
	)
	_, err := NewStepper(g, start, Position{Row: 0, Col: 1}, nil)
	assert.True(t, errors.Is(err, ErrInvalidEndpoints))
}
