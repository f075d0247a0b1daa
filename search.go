package gridastar

import (
	"container/heap"
	"math"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/pdrpinto/gridastar/internal"
)

// unreached stands in for an infinite score.
const unreached = math.MaxInt

// search is the run-state of one A* run. It lives for a single Search call
// or Stepper and is never shared.
type search struct {
	grid   *Grid
	start  int
	end    int
	logger *log.Logger

	gScore   []int
	fScore   []int
	cameFrom []int
	inOpen   []bool
	openSet  PriorityQueue
	sequence uint64

	current       int
	expandedNodes int
}

func newSearch(grid *Grid, start, end Position, logger *log.Logger) (*search, error) {
	startNode, err := grid.Node(start)
	if err != nil {
		return nil, errors.Wrap(err, "start")
	}
	endNode, err := grid.Node(end)
	if err != nil {
		return nil, errors.Wrap(err, "end")
	}
	if start == end {
		return nil, errors.Wrapf(ErrInvalidEndpoints, "start and end are both %s", start)
	}
	if startNode.IsBarrier() || endNode.IsBarrier() {
		return nil, errors.Wrapf(ErrInvalidEndpoints, "start %s is %s, end %s is %s",
			start, startNode.State(), end, endNode.State())
	}

	size := grid.Size()
	s := &search{
		grid:     grid,
		start:    grid.index(start),
		end:      grid.index(end),
		logger:   logger,
		gScore:   make([]int, size),
		fScore:   make([]int, size),
		cameFrom: make([]int, size),
		inOpen:   make([]bool, size),
		openSet:  make(PriorityQueue, 0, size),
		current:  internal.NoParent,
	}
	for i := 0; i < size; i++ {
		s.gScore[i] = unreached
		s.fScore[i] = unreached
		s.cameFrom[i] = internal.NoParent
	}
	heap.Init(&s.openSet)

	s.gScore[s.start] = 0
	s.fScore[s.start] = Manhattan(start, end)
	s.push(s.start)
	return s, nil
}

func (s *search) push(index int) {
	heap.Push(&s.openSet, PriorityQueueItem{
		FScore:   s.fScore[index],
		Sequence: s.sequence,
		Index:    index,
	})
	s.sequence++
	s.inOpen[index] = true
}

// pop removes the minimum entry. A node is queued at most once at a time, so
// every entry is live; its priority is the f-score it was pushed with.
func (s *search) pop() (int, bool) {
	if s.openSet.Len() == 0 {
		return internal.NoParent, false
	}
	item := heap.Pop(&s.openSet).(PriorityQueueItem)
	if !s.inOpen[item.Index] || s.gScore[item.Index] == unreached {
		panic(errors.AssertionFailedf("dequeued %s outside the open set", s.grid.nodes[item.Index].position))
	}
	s.inOpen[item.Index] = false
	return item.Index, true
}

func (s *search) pending() bool { return s.openSet.Len() > 0 }

// advance runs one loop iteration: dequeue, then either finish on the end
// node or relax the neighbors and report the expansion. done is false while
// the search should continue.
func (s *search) advance(observer Observer) (outcome Outcome, done bool) {
	current, ok := s.pop()
	if !ok {
		return NotFound, true
	}
	s.current = current
	if current == s.end {
		s.markPath(observer)
		return Found, true
	}

	node := &s.grid.nodes[current]
	endPosition := s.grid.nodes[s.end].position
	tentativeG := s.gScore[current] + 1
	for _, neighbor := range node.neighbors {
		if tentativeG >= s.gScore[neighbor] {
			continue
		}
		s.cameFrom[neighbor] = current
		s.gScore[neighbor] = tentativeG
		s.fScore[neighbor] = tentativeG + Manhattan(s.grid.nodes[neighbor].position, endPosition)
		// An open neighbor keeps its queue entry and sequence number.
		if s.inOpen[neighbor] {
			continue
		}
		s.push(neighbor)
		if neighbor != s.end {
			s.grid.nodes[neighbor].SetState(Frontier)
		}
	}

	s.expandedNodes++
	observer.OnExpandStep(node)
	if current != s.start {
		node.SetState(Visited)
	}
	return outcome, false
}

// markPath paints the intermediate path nodes from end back to start.
func (s *search) markPath(observer Observer) {
	indices := s.pathIndices()
	for i := len(indices) - 2; i >= 1; i-- {
		node := &s.grid.nodes[indices[i]]
		node.SetState(Path)
		observer.OnPathStep(node)
	}
}

func (s *search) pathIndices() []int {
	indices := internal.ReconstructPath(s.cameFrom, s.end, s.start)
	if indices[0] != s.start {
		panic(errors.AssertionFailedf("parent chain from %s does not reach %s",
			s.grid.nodes[s.end].position, s.grid.nodes[s.start].position))
	}
	return indices
}

func (s *search) result(outcome Outcome) Result {
	result := Result{Outcome: outcome, ExpandedNodes: s.expandedNodes}
	if outcome == Found {
		indices := s.pathIndices()
		result.Path = make([]Position, 0, len(indices))
		for _, i := range indices {
			result.Path = append(result.Path, s.grid.nodes[i].position)
		}
		result.Length = len(indices) - 1
	}
	s.logger.Debug("search finished",
		"outcome", outcome,
		"expanded", s.expandedNodes,
		"length", result.Length)
	return result
}
