package gridastar

// StepSnapshot exposes the per-iteration state of the search. Cell states are
// read from the Grid itself, which the stepper mutates as it goes.
type StepSnapshot struct {
	Current    Position
	HasCurrent bool
	Done       bool
	Outcome    Outcome
	Path       []Position
	StepIndex  int
	Expanded   int
}

// Stepper drives one search a single loop iteration at a time. It shares the
// run-state with Search, so expansion order is identical for the same grid.
type Stepper struct {
	search    *search
	observer  Observer
	stepCount int
	done      bool
	result    Result
}

// NewStepper validates the endpoints and prepares a run over grid. The caller
// must have called grid.RecomputeAdjacency after its last barrier edit.
// observer may be nil. Its PollCancel is consulted at the start of every
// Step, as Search does before every dequeue.
func NewStepper(grid *Grid, start, end Position, observer Observer, options ...Option) (*Stepper, error) {
	stepperOptions := applyOptions(options)
	if observer == nil {
		observer = NopObserver{}
	}
	s, err := newSearch(grid, start, end, stepperOptions.Logger)
	if err != nil {
		return nil, err
	}
	return &Stepper{search: s, observer: observer}, nil
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the run is done every further call returns the final snapshot.
func (st *Stepper) Step() StepSnapshot {
	if st.done {
		return st.snapshot()
	}
	st.stepCount++
	if !st.search.pending() {
		st.finish(NotFound)
		return st.snapshot()
	}
	if st.observer.PollCancel() {
		st.finish(Cancelled)
		return st.snapshot()
	}
	if outcome, done := st.search.advance(st.observer); done {
		st.finish(outcome)
	}
	return st.snapshot()
}

// Cancel ends the run with Cancelled, leaving existing marks in place.
func (st *Stepper) Cancel() {
	if !st.done {
		st.finish(Cancelled)
	}
}

// Done reports whether the run reached a terminal state.
func (st *Stepper) Done() bool { return st.done }

// Result returns the terminal result; it is the zero Result until Done.
func (st *Stepper) Result() Result { return st.result }

func (st *Stepper) finish(outcome Outcome) {
	st.done = true
	st.result = st.search.result(outcome)
}

func (st *Stepper) snapshot() StepSnapshot {
	snap := StepSnapshot{
		Done:      st.done,
		StepIndex: st.stepCount,
		Expanded:  st.search.expandedNodes,
	}
	if st.search.current >= 0 {
		snap.Current = st.search.grid.nodes[st.search.current].position
		snap.HasCurrent = true
	}
	if st.done {
		snap.Outcome = st.result.Outcome
		snap.Path = st.result.Path
	}
	return snap
}
