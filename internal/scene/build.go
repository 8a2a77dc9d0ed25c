package scene

import (
	"fmt"

	"github.com/Loufouh/PE-Parametric-Curves/internal/colormap"
	"github.com/Loufouh/PE-Parametric-Curves/internal/curve"
	"github.com/Loufouh/PE-Parametric-Curves/internal/engine/lighting"
	"github.com/Loufouh/PE-Parametric-Curves/internal/vectorfield"
	"github.com/Loufouh/PE-Parametric-Curves/pkg/math"
)

// Polyline names used by the builders.
const (
	NameControl      = "control"
	NameBezier       = "bezier"
	NameHermite      = "hermite"
	NameConstruction = "construction"
	NameParabola     = "parabola"
	NameAxes         = "axes"
	NameField        = "field"
	NameColorBar     = "colorbar"
	NameLight        = "light"
)

// HermiteSegment holds the end points and tangents of a cubic Hermite segment.
type HermiteSegment struct {
	P0, P1, V0, V1 math.Vec3
}

// CurveOptions configures the curves mode.
type CurveOptions struct {
	ControlPoints []math.Vec3
	Algorithm     curve.Algorithm
	Segments      int
	// ConstructionAt is the parameter of the drawn de Casteljau pyramid.
	ConstructionAt float32
	Hermite        *HermiteSegment
}

// QuadraticOptions configures the quadratic mode: y = A*x^2 + B*x + C.
type QuadraticOptions struct {
	A, B, C    float32
	XMin, XMax float32
	Segments   int
}

// ScaffoldOptions configures the scaffold mode.
type ScaffoldOptions struct {
	Basis     math.Basis
	GridSize  int
	Spacing   float32
	Field     vectorfield.Field
	AxisScale float32
	// Light is drawn as a ray and a star when set.
	Light *lighting.Light
}

// Options carries the options of every mode so the viewer can switch freely.
type Options struct {
	// Background replaces the mode's clear color when set. Black is a valid value.
	Background *colormap.RGB
	Curves     CurveOptions
	Quadratic  QuadraticOptions
	Scaffold   ScaffoldOptions
}

// DefaultQuadratic plots y = x^2 on [-1, 1].
func DefaultQuadratic() QuadraticOptions {
	return QuadraticOptions{A: 1, XMin: -1, XMax: 1, Segments: 100}
}

// DefaultScaffold draws a rotational field on a 9x9 grid, lit from the upper
// right.
func DefaultScaffold() ScaffoldOptions {
	b := math.DefaultBasis()
	light := lighting.Directional(45, 45)
	return ScaffoldOptions{
		Basis:     b,
		GridSize:  9,
		Spacing:   0.25,
		Field:     vectorfield.Rotational(b),
		AxisScale: 1.5,
		Light:     &light,
	}
}

// Build dispatches to the builder of mode.
func Build(mode Mode, opts Options) (*Scene, error) {
	var (
		s   *Scene
		err error
	)
	switch mode {
	case ModeCurves:
		s, err = BuildCurves(opts.Curves)
	case ModeQuadratic:
		s, err = BuildQuadratic(opts.Quadratic)
	case ModeScaffold:
		s, err = BuildScaffold(opts.Scaffold)
	default:
		return nil, fmt.Errorf("scene: unsupported mode %v", mode)
	}
	if err != nil {
		return nil, err
	}
	if opts.Background != nil {
		s.Background = *opts.Background
	}
	return s, nil
}

// BuildCurves draws the de Casteljau construction, the control polygon, the
// Bézier curve and, if set, a Hermite segment.
func BuildCurves(opts CurveOptions) (*Scene, error) {
	points, err := curve.Bezier(opts.Algorithm, opts.ControlPoints, opts.Segments)
	if err != nil {
		return nil, fmt.Errorf("building bezier curve: %w", err)
	}

	s := &Scene{Name: ModeCurves.String(), Background: DefaultBackground}

	levels := curve.CasteljauLevels(opts.ControlPoints, opts.ConstructionAt)
	for i, level := range levels {
		kind := LineStrip
		if len(level) == 1 {
			kind = Points
		}
		s.Add(Polyline{
			Name:   fmt.Sprintf("%s/%d", NameConstruction, i),
			Points: level,
			Color:  colormap.Gradient(i, len(levels)),
			Width:  3,
			Kind:   kind,
		})
	}

	s.Add(Polyline{
		Name:   NameControl,
		Points: opts.ControlPoints,
		Color:  colormap.RGB{R: 1, G: 0.2, B: 0.2},
		Width:  3,
	})
	s.Add(Polyline{
		Name:   NameBezier,
		Points: points,
		Color:  colormap.White,
		Width:  3,
	})

	if h := opts.Hermite; h != nil {
		s.Add(Polyline{
			Name:   NameHermite,
			Points: curve.Hermite(h.P0, h.P1, h.V0, h.V1, opts.Segments),
			Color:  colormap.RGB{R: 1, G: 1, B: 0},
			Width:  3,
		})
	}
	return s, nil
}

// BuildQuadratic draws the X and Y axes and the sampled parabola.
func BuildQuadratic(opts QuadraticOptions) (*Scene, error) {
	if opts.Segments <= 0 {
		return nil, curve.ErrInvalidSegments
	}
	if opts.XMax <= opts.XMin {
		return nil, fmt.Errorf("scene: empty plot interval [%v, %v]", opts.XMin, opts.XMax)
	}
	points := curve.QuadraticPlot(opts.A, opts.B, opts.C, opts.XMin, opts.XMax, opts.Segments)

	s := &Scene{Name: ModeQuadratic.String(), Background: DefaultBackground}
	s.Add(Polyline{
		Name:   NameAxes,
		Points: []math.Vec3{{X: opts.XMin}, {X: opts.XMax}, {Y: -1}, {Y: 1}},
		Color:  colormap.Black,
		Width:  1,
		Kind:   Lines,
	})
	s.Add(Polyline{
		Name:   NameParabola,
		Points: points,
		Color:  colormap.White,
		Width:  3,
	})
	return s, nil
}

// BuildScaffold draws the reference basis, a vector field colored by
// magnitude and a color bar showing the scalar ramp.
func BuildScaffold(opts ScaffoldOptions) (*Scene, error) {
	if opts.GridSize <= 0 {
		return nil, fmt.Errorf("scene: grid size must be positive, got %d", opts.GridSize)
	}
	field := opts.Field
	if field == nil {
		field = vectorfield.Rotational(opts.Basis)
	}

	s := &Scene{Name: ModeScaffold.String(), Background: DefaultBackground}
	s.AddSegments(NameAxes, vectorfield.BasisAxes(opts.Basis, opts.AxisScale), 2)

	samples := vectorfield.Grid(opts.Basis, opts.GridSize, opts.GridSize, opts.Spacing, field)
	s.AddSegments(NameField, vectorfield.Arrows(samples, opts.Spacing*0.4, 0.25), 1)

	s.AddSegments(NameColorBar, colorBar(opts), 6)

	if opts.Light != nil {
		s.AddSegments(NameLight, lighting.Gizmo(*opts.Light, opts.Basis.Origin, opts.AxisScale, opts.Spacing), 1)
	}
	return s, nil
}

// colorBar samples the scalar ramp as short segments below the grid.
func colorBar(opts ScaffoldOptions) []vectorfield.Segment {
	const steps = 16
	half := opts.Spacing * float32(opts.GridSize) / 2
	y := -half - opts.Spacing
	segments := make([]vectorfield.Segment, steps)
	for i := range segments {
		x0 := -half + 2*half*float32(i)/steps
		x1 := -half + 2*half*float32(i+1)/steps
		segments[i] = vectorfield.Segment{
			A:     opts.Basis.Point(x0, y, 0),
			B:     opts.Basis.Point(x1, y, 0),
			Color: colormap.Scalar(float32(i), 0, steps-1),
		}
	}
	return segments
}
