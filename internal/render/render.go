// Package render draws grids for terminal hosts and animates searches.
package render

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/gridfile"
)

// Palette maps each state to its cell colour.
var Palette = map[gridastar.NodeState]lipgloss.Color{
	gridastar.Empty:    lipgloss.Color("#FFFFFF"),
	gridastar.Start:    lipgloss.Color("#FFA500"),
	gridastar.End:      lipgloss.Color("#40E0D0"),
	gridastar.Barrier:  lipgloss.Color("#000000"),
	gridastar.Frontier: lipgloss.Color("#00FF00"),
	gridastar.Visited:  lipgloss.Color("#FF0000"),
	gridastar.Path:     lipgloss.Color("#800080"),
}

var cellStyles = func() map[gridastar.NodeState]lipgloss.Style {
	styles := make(map[gridastar.NodeState]lipgloss.Style, len(Palette))
	for state, colour := range Palette {
		styles[state] = lipgloss.NewStyle().Background(colour)
	}
	return styles
}()

// Frame renders g one line per row. Styled frames paint two-space cells in
// the palette colours; plain frames use the gridfile symbols.
func Frame(g *gridastar.Grid, styled bool) string {
	var b strings.Builder
	if !styled {
		_ = gridfile.Encode(&b, g)
		return b.String()
	}
	g.Walk(func(n *gridastar.Node) {
		b.WriteString(cellStyles[n.State()].Render("  "))
		if n.Position().Col == g.Rows()-1 {
			b.WriteByte('\n')
		}
	})
	return b.String()
}

// Animator is an Observer that redraws the grid after every step and stops
// the run once its context is done.
type Animator struct {
	ctx    context.Context
	out    *termenv.Output
	grid   *gridastar.Grid
	delay  time.Duration
	styled bool
	frames int
}

func NewAnimator(ctx context.Context, out io.Writer, grid *gridastar.Grid, delay time.Duration, styled bool) *Animator {
	return &Animator{ctx: ctx, out: termenv.NewOutput(out), grid: grid, delay: delay, styled: styled}
}

func (a *Animator) PollCancel() bool {
	select {
	case <-a.ctx.Done():
		return true
	default:
		return false
	}
}

func (a *Animator) OnExpandStep(*gridastar.Node) { a.draw() }
func (a *Animator) OnPathStep(*gridastar.Node)   { a.draw() }

// Frames returns how many frames were drawn.
func (a *Animator) Frames() int { return a.frames }

func (a *Animator) draw() {
	a.out.ClearScreen()
	fmt.Fprint(a.out, Frame(a.grid, a.styled))
	a.frames++
	if a.delay <= 0 {
		return
	}
	timer := time.NewTimer(a.delay)
	defer timer.Stop()
	select {
	case <-a.ctx.Done():
	case <-timer.C:
	}
}
