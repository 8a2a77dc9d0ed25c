// Package curvefile reads and writes control-point documents in YAML.
//
// Example:
//
//	control_points: [[-1, 0, 0], [-0.25, 1, 0], [0.25, -1, 0], [1, 0, 0]]
//	hermite:
//	  p0: [0, 0, 0]
//	  p1: [2, 0, 0]
//	  v0: [1, 1, 0]
//	  v1: [1, -1, 0]
package curvefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Loufouh/PE-Parametric-Curves/internal/scene"
	"github.com/Loufouh/PE-Parametric-Curves/pkg/math"
)

// ErrInvalidPoint is returned for a point that is not a list of three numbers.
var ErrInvalidPoint = errors.New("curvefile: point must have 3 coordinates")

// ErrEmpty is returned for a document with neither control points nor a Hermite segment.
var ErrEmpty = errors.New("curvefile: document defines no curve")

// Point is a [x, y, z] triple.
type Point []float32

// Hermite is the YAML form of a Hermite segment.
type Hermite struct {
	P0 Point `yaml:"p0"`
	P1 Point `yaml:"p1"`
	V0 Point `yaml:"v0"`
	V1 Point `yaml:"v1"`
}

// Document is the YAML form of a curve file.
type Document struct {
	ControlPoints []Point  `yaml:"control_points"`
	Hermite       *Hermite `yaml:"hermite,omitempty"`
}

// Curves is a validated document.
type Curves struct {
	ControlPoints []math.Vec3
	Hermite       *scene.HermiteSegment
}

// Load reads and validates the file at path.
func Load(path string) (*Curves, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (*Curves, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Curves()
}

// Curves validates the document and converts it to vectors.
func (d *Document) Curves() (*Curves, error) {
	if len(d.ControlPoints) == 0 && d.Hermite == nil {
		return nil, ErrEmpty
	}

	c := &Curves{ControlPoints: make([]math.Vec3, 0, len(d.ControlPoints))}
	for i, p := range d.ControlPoints {
		v, err := p.vec()
		if err != nil {
			return nil, fmt.Errorf("control point %d: %w", i, err)
		}
		c.ControlPoints = append(c.ControlPoints, v)
	}

	if h := d.Hermite; h != nil {
		var seg scene.HermiteSegment
		fields := []struct {
			name string
			p    Point
			dst  *math.Vec3
		}{
			{"p0", h.P0, &seg.P0},
			{"p1", h.P1, &seg.P1},
			{"v0", h.V0, &seg.V0},
			{"v1", h.V1, &seg.V1},
		}
		for _, f := range fields {
			v, err := f.p.vec()
			if err != nil {
				return nil, fmt.Errorf("hermite %s: %w", f.name, err)
			}
			*f.dst = v
		}
		c.Hermite = &seg
	}
	return c, nil
}

func (p Point) vec() (math.Vec3, error) {
	if len(p) != 3 {
		return math.Vec3{}, fmt.Errorf("%w, got %d", ErrInvalidPoint, len(p))
	}
	return math.Vec3{X: p[0], Y: p[1], Z: p[2]}, nil
}

func point(v math.Vec3) Point {
	return Point{v.X, v.Y, v.Z}
}

// NewDocument converts curves back to their YAML form.
func NewDocument(c *Curves) *Document {
	doc := &Document{ControlPoints: make([]Point, 0, len(c.ControlPoints))}
	for _, v := range c.ControlPoints {
		doc.ControlPoints = append(doc.ControlPoints, point(v))
	}
	if h := c.Hermite; h != nil {
		doc.Hermite = &Hermite{P0: point(h.P0), P1: point(h.P1), V0: point(h.V0), V1: point(h.V1)}
	}
	return doc
}

// Save writes c to path, creating parent directories.
func Save(path string, c *Curves) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(NewDocument(c))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
