// Package scene builds the line geometry drawn by each viewer mode.
package scene

import (
	"fmt"
	"strings"

	"github.com/Loufouh/PE-Parametric-Curves/internal/colormap"
	"github.com/Loufouh/PE-Parametric-Curves/internal/vectorfield"
	"github.com/Loufouh/PE-Parametric-Curves/pkg/math"
)

// Mode selects what the viewer shows.
type Mode int

const (
	ModeCurves Mode = iota
	ModeQuadratic
	ModeScaffold
)

// Modes lists every mode in key-binding order (1, 2, 3).
var Modes = []Mode{ModeCurves, ModeQuadratic, ModeScaffold}

// String returns the config name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCurves:
		return "curves"
	case ModeQuadratic:
		return "quadratic"
	case ModeScaffold:
		return "scaffold"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a config name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "curves", "curve", "bezier":
		return ModeCurves, nil
	case "quadratic", "parabola":
		return ModeQuadratic, nil
	case "scaffold", "field":
		return ModeScaffold, nil
	default:
		return 0, fmt.Errorf("scene: unknown mode %q", s)
	}
}

// Kind is the primitive used to draw a polyline.
type Kind int

const (
	LineStrip Kind = iota
	Lines
	Points
)

// Polyline is one draw call: a list of points sharing a color and width.
type Polyline struct {
	Name   string
	Points []math.Vec3
	Color  colormap.RGB
	Width  float32
	Kind   Kind
}

// Vertices flattens the points into x, y, z triples for a vertex buffer.
func (p Polyline) Vertices() []float32 {
	out := make([]float32, 0, len(p.Points)*3)
	for _, v := range p.Points {
		out = append(out, v.X, v.Y, v.Z)
	}
	return out
}

// Scene is the full set of polylines for one frame.
type Scene struct {
	Name       string
	Background colormap.RGB
	Lines      []Polyline
}

// DefaultBackground is the clear color of every mode.
var DefaultBackground = colormap.RGB{R: 0.2, G: 0.2, B: 1.0}

// Add appends a polyline. Empty point lists are dropped.
func (s *Scene) Add(p Polyline) {
	if len(p.Points) == 0 {
		return
	}
	if p.Width == 0 {
		p.Width = 1
	}
	s.Lines = append(s.Lines, p)
}

// AddSegments appends segments grouped by color as Lines polylines.
func (s *Scene) AddSegments(name string, segments []vectorfield.Segment, width float32) {
	var order []colormap.RGB
	groups := make(map[colormap.RGB][]math.Vec3)
	for _, seg := range segments {
		if _, ok := groups[seg.Color]; !ok {
			order = append(order, seg.Color)
		}
		groups[seg.Color] = append(groups[seg.Color], seg.A, seg.B)
	}
	for i, c := range order {
		s.Add(Polyline{
			Name:   fmt.Sprintf("%s/%d", name, i),
			Points: groups[c],
			Color:  c,
			Width:  width,
			Kind:   Lines,
		})
	}
}

// Find returns the first polyline with the given name.
func (s *Scene) Find(name string) (Polyline, bool) {
	for _, p := range s.Lines {
		if p.Name == name {
			return p, true
		}
	}
	return Polyline{}, false
}

// VertexCount returns the number of points over all polylines.
func (s *Scene) VertexCount() int {
	n := 0
	for _, p := range s.Lines {
		n += len(p.Points)
	}
	return n
}

// Bounds returns the axis-aligned box around every point. ok is false for an
// empty scene.
func (s *Scene) Bounds() (min, max math.Vec3, ok bool) {
	for _, p := range s.Lines {
		for _, v := range p.Points {
			if !ok {
				min, max, ok = v, v, true
				continue
			}
			min = min.Min(v)
			max = max.Max(v)
		}
	}
	return min, max, ok
}
