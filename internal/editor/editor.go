// Package editor applies host edit commands to a grid while keeping at most
// one Start and one End cell.
package editor

import (
	"github.com/cockroachdb/errors"

	"github.com/pdrpinto/gridastar"
)

// ErrMissingEndpoint is returned by Prepare when Start or End is unset.
var ErrMissingEndpoint = errors.New("start or end not placed")

// Editor tracks where Start and End currently are.
type Editor struct {
	grid  *gridastar.Grid
	start *gridastar.Position
	end   *gridastar.Position
}

// New wraps grid, which must not yet hold Start or End cells.
func New(grid *gridastar.Grid) *Editor {
	return &Editor{grid: grid}
}

// Grid returns the edited grid.
func (e *Editor) Grid() *gridastar.Grid { return e.grid }

// Paint is the primary-button action: it places Start first, then End, then
// barriers. Painting onto Start or End is ignored.
func (e *Editor) Paint(p gridastar.Position) error {
	if _, err := e.grid.Node(p); err != nil {
		return err
	}
	switch {
	case e.isStart(p) || e.isEnd(p):
		return nil
	case e.start == nil:
		return e.SetStart(p)
	case e.end == nil:
		return e.SetEnd(p)
	default:
		return e.grid.SetBarrier(p)
	}
}

// Erase is the secondary-button action: the cell becomes Empty and stops
// being Start or End if it was one.
func (e *Editor) Erase(p gridastar.Position) error {
	if err := e.grid.ClearCell(p); err != nil {
		return err
	}
	if e.isStart(p) {
		e.start = nil
	}
	if e.isEnd(p) {
		e.end = nil
	}
	return nil
}

// SetStart moves Start to p, clearing the previous Start cell.
func (e *Editor) SetStart(p gridastar.Position) error {
	if err := e.grid.SetStart(p); err != nil {
		return err
	}
	if e.start != nil && *e.start != p {
		if err := e.grid.ClearCell(*e.start); err != nil {
			return errors.Wrap(err, "clearing previous start")
		}
	}
	if e.isEnd(p) {
		e.end = nil
	}
	e.start = &p
	return nil
}

// SetEnd moves End to p, clearing the previous End cell.
func (e *Editor) SetEnd(p gridastar.Position) error {
	if err := e.grid.SetEnd(p); err != nil {
		return err
	}
	if e.end != nil && *e.end != p {
		if err := e.grid.ClearCell(*e.end); err != nil {
			return errors.Wrap(err, "clearing previous end")
		}
	}
	if e.isStart(p) {
		e.start = nil
	}
	e.end = &p
	return nil
}

// SetBarrier blocks p unless it holds Start or End.
func (e *Editor) SetBarrier(p gridastar.Position) error {
	if e.isStart(p) || e.isEnd(p) {
		return nil
	}
	return e.grid.SetBarrier(p)
}

// Endpoints returns Start and End; ok is false until both are placed.
func (e *Editor) Endpoints() (start, end gridastar.Position, ok bool) {
	if e.start == nil || e.end == nil {
		return gridastar.Position{}, gridastar.Position{}, false
	}
	return *e.start, *e.end, true
}

// Reset empties the whole grid.
func (e *Editor) Reset() {
	e.grid.ResetAll()
	e.start, e.end = nil, nil
}

// Prepare clears marks from a previous run and refreshes adjacency, returning
// the endpoints for the next search.
func (e *Editor) Prepare() (start, end gridastar.Position, err error) {
	start, end, ok := e.Endpoints()
	if !ok {
		return start, end, ErrMissingEndpoint
	}
	e.grid.ClearSearch()
	e.grid.RecomputeAdjacency()
	return start, end, nil
}

func (e *Editor) isStart(p gridastar.Position) bool { return e.start != nil && *e.start == p }
func (e *Editor) isEnd(p gridastar.Position) bool   { return e.end != nil && *e.end == p }
