package gridastar

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Outcome is the terminal state of a run.
type Outcome int

const (
	// NotFound means the open queue was exhausted without reaching the end.
	NotFound Outcome = iota
	// Found means a shortest path was reconstructed.
	Found
	// Cancelled means the observer or the context stopped the run.
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case NotFound:
		return "not-found"
	case Found:
		return "found"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result contains the outcome of a search
type Result struct {
	Outcome Outcome
	// Path runs from start to end inclusive; nil unless Outcome is Found.
	Path []Position
	// Length is the number of edges in Path.
	Length        int
	ExpandedNodes int
}

// Found reports whether a path was found.
func (r Result) Found() bool { return r.Outcome == Found }

// Options defines parameters for the search.
type Options struct {
	Logger *log.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger routes run diagnostics to logger at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = log.New(io.Discard)
	}
	return searchOptions
}

// Search runs A* from start to end over grid's current adjacency. The caller
// must have called grid.RecomputeAdjacency after its last barrier edit.
//
// Cancellation is cooperative: before every dequeue the context and
// observer.PollCancel are checked, and a cancelled run returns Cancelled with
// whatever Frontier and Visited marks were already applied.
func Search(
	ctx context.Context,
	grid *Grid,
	start Position,
	end Position,
	observer Observer,
	options ...Option,
) (Result, error) {
	searchOptions := applyOptions(options)
	if observer == nil {
		observer = NopObserver{}
	}

	s, err := newSearch(grid, start, end, searchOptions.Logger)
	if err != nil {
		return Result{}, err
	}
	searchOptions.Logger.Debug("search started", "rows", grid.Rows(), "start", start, "end", end)

	for s.pending() {
		if ctx.Err() != nil || observer.PollCancel() {
			return s.result(Cancelled), nil
		}
		if outcome, done := s.advance(observer); done {
			return s.result(outcome), nil
		}
	}
	return s.result(NotFound), nil
}
