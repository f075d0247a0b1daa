// Package gridfile reads and writes grid layouts: a square ASCII map or a
// YAML document listing the size, endpoints and barriers.
//
// ASCII symbols:
//
//	.  empty      #  barrier
//	S  start      E  end
//	o  frontier   x  visited   *  path
//
// Search marks are written by Encode and read back as empty cells. Lines
// starting with ';' are comments.
package gridfile

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/editor"
)

var ErrMalformedLayout = errors.New("malformed grid layout")

var symbols = map[gridastar.NodeState]byte{
	gridastar.Empty:    '.',
	gridastar.Start:    'S',
	gridastar.End:      'E',
	gridastar.Barrier:  '#',
	gridastar.Frontier: 'o',
	gridastar.Visited:  'x',
	gridastar.Path:     '*',
}

// Symbol returns the ASCII cell for s.
func Symbol(s gridastar.NodeState) byte {
	if c, ok := symbols[s]; ok {
		return c
	}
	return '?'
}

// Layout is a host-side description of a grid before any search.
type Layout struct {
	Size     int
	Start    *gridastar.Position
	End      *gridastar.Position
	Barriers []gridastar.Position
}

// Load reads a layout, choosing YAML for .yaml and .yml files and the ASCII
// map otherwise.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading layout %s", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(bytes.NewReader(data))
	}
}

// Parse reads an ASCII map.
func Parse(r io.Reader) (*Layout, error) {
	layout := &Layout{}
	scanner := bufio.NewScanner(r)
	row, line := 0, 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), " \t\r")
		if text == "" || strings.HasPrefix(text, ";") {
			continue
		}
		if layout.Size == 0 {
			layout.Size = len(text)
		}
		if len(text) != layout.Size {
			return nil, errors.Wrapf(ErrMalformedLayout, "line %d: %d cells, want %d", line, len(text), layout.Size)
		}
		for col := 0; col < len(text); col++ {
			p := gridastar.Position{Row: row, Col: col}
			switch text[col] {
			case '.', 'o', 'x', '*':
			case '#':
				layout.Barriers = append(layout.Barriers, p)
			case 'S':
				if layout.Start != nil {
					return nil, errors.Wrapf(ErrMalformedLayout, "line %d: second start cell at %s", line, p)
				}
				layout.Start = &p
			case 'E':
				if layout.End != nil {
					return nil, errors.Wrapf(ErrMalformedLayout, "line %d: second end cell at %s", line, p)
				}
				layout.End = &p
			default:
				return nil, errors.Wrapf(ErrMalformedLayout, "line %d: unknown symbol %q", line, text[col])
			}
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading layout")
	}
	if row == 0 {
		return nil, errors.Wrap(ErrMalformedLayout, "no rows")
	}
	if row != layout.Size {
		return nil, errors.Wrapf(ErrMalformedLayout, "%d rows of %d cells; the grid must be square", row, layout.Size)
	}
	return layout, nil
}

type yamlLayout struct {
	Size     int     `yaml:"size"`
	Start    []int   `yaml:"start,omitempty"`
	End      []int   `yaml:"end,omitempty"`
	Barriers [][]int `yaml:"barriers,omitempty"`
}

func cell(field string, v []int) (*gridastar.Position, error) {
	if v == nil {
		return nil, nil
	}
	if len(v) != 2 {
		return nil, errors.Wrapf(ErrMalformedLayout, "%s: want [row, col], got %v", field, v)
	}
	return &gridastar.Position{Row: v[0], Col: v[1]}, nil
}

// ParseYAML reads a YAML layout document.
func ParseYAML(data []byte) (*Layout, error) {
	var doc yamlLayout
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(ErrMalformedLayout, "yaml: %v", err)
	}
	layout := &Layout{Size: doc.Size}
	var err error
	if layout.Start, err = cell("start", doc.Start); err != nil {
		return nil, err
	}
	if layout.End, err = cell("end", doc.End); err != nil {
		return nil, err
	}
	for i, b := range doc.Barriers {
		p, err := cell("barriers", b)
		if err != nil {
			return nil, errors.Wrapf(err, "barrier %d", i)
		}
		layout.Barriers = append(layout.Barriers, *p)
	}
	return layout, nil
}

// YAML renders the layout as a YAML document.
func (l *Layout) YAML() ([]byte, error) {
	toCell := func(p gridastar.Position, _ int) []int { return []int{p.Row, p.Col} }
	doc := yamlLayout{
		Size:     l.Size,
		Barriers: lo.Map(l.Barriers, toCell),
	}
	if l.Start != nil {
		doc.Start = toCell(*l.Start, 0)
	}
	if l.End != nil {
		doc.End = toCell(*l.End, 0)
	}
	return yaml.Marshal(doc)
}

// Build creates the grid described by the layout, with endpoints placed
// through an Editor so they win over any overlapping barrier.
func (l *Layout) Build() (*editor.Editor, error) {
	grid, err := gridastar.NewGrid(l.Size)
	if err != nil {
		return nil, err
	}
	ed := editor.New(grid)
	for _, b := range lo.Uniq(l.Barriers) {
		if err := grid.SetBarrier(b); err != nil {
			return nil, errors.Wrap(err, "barrier")
		}
	}
	if l.Start != nil {
		if err := ed.SetStart(*l.Start); err != nil {
			return nil, errors.Wrap(err, "start")
		}
	}
	if l.End != nil {
		if err := ed.SetEnd(*l.End); err != nil {
			return nil, errors.Wrap(err, "end")
		}
	}
	return ed, nil
}

// FromGrid captures the Start, End and Barrier cells of g.
func FromGrid(g *gridastar.Grid) *Layout {
	layout := &Layout{Size: g.Rows()}
	g.Walk(func(n *gridastar.Node) {
		p := n.Position()
		switch n.State() {
		case gridastar.Start:
			layout.Start = &p
		case gridastar.End:
			layout.End = &p
		case gridastar.Barrier:
			layout.Barriers = append(layout.Barriers, p)
		}
	})
	return layout
}

// Encode writes g as an ASCII map including search marks.
func Encode(w io.Writer, g *gridastar.Grid) error {
	buf := make([]byte, 0, g.Size()+g.Rows())
	g.Walk(func(n *gridastar.Node) {
		buf = append(buf, Symbol(n.State()))
		if n.Position().Col == g.Rows()-1 {
			buf = append(buf, '\n')
		}
	})
	_, err := w.Write(buf)
	return err
}
