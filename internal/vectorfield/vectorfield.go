// Package vectorfield turns sampled vector fields into line segments.
package vectorfield

import (
	"github.com/Loufouh/PE-Parametric-Curves/internal/colormap"
	"github.com/Loufouh/PE-Parametric-Curves/pkg/math"
)

// Sample is a vector attached to a point.
type Sample struct {
	Origin math.Vec3
	Vector math.Vec3
}

// Segment is a colored line from A to B.
type Segment struct {
	A, B  math.Vec3
	Color colormap.RGB
}

// Field computes the vector at a point.
type Field func(p math.Vec3) math.Vec3

// Rotational returns the field (-y, x, 0) around the basis origin.
func Rotational(b math.Basis) Field {
	return func(p math.Vec3) math.Vec3 {
		d := p.Sub(b.Origin)
		x, y := d.Dot(b.I), d.Dot(b.J)
		return b.I.Scale(-y).Add(b.J.Scale(x))
	}
}

// Grid samples fn on an nx by ny grid centered on the basis origin in its
// I/J plane. Points are spacing apart.
func Grid(b math.Basis, nx, ny int, spacing float32, fn Field) []Sample {
	if nx <= 0 || ny <= 0 || fn == nil {
		return nil
	}
	x0 := -spacing * float32(nx-1) / 2
	y0 := -spacing * float32(ny-1) / 2

	samples := make([]Sample, 0, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			p := b.Point(x0+float32(i)*spacing, y0+float32(j)*spacing, 0)
			samples = append(samples, Sample{Origin: p, Vector: fn(p)})
		}
	}
	return samples
}

// Arrows builds a shaft and two head strokes for each sample. Vectors are
// multiplied by scale; heads are headRatio of the shaft length. Colors follow
// the magnitude range of the whole set. Zero vectors are skipped.
func Arrows(samples []Sample, scale, headRatio float32) []Segment {
	if len(samples) == 0 {
		return nil
	}

	lo, hi := magnitudeRange(samples)
	segments := make([]Segment, 0, 3*len(samples))
	for _, s := range samples {
		length := s.Vector.Length()
		if length == 0 {
			continue
		}
		color := colormap.Scalar(length, lo, hi)

		tip := s.Origin.Add(s.Vector.Scale(scale))
		segments = append(segments, Segment{A: s.Origin, B: tip, Color: color})

		dir := s.Vector.Normalize()
		side := headSide(dir)
		head := length * scale * headRatio
		back := tip.Sub(dir.Scale(head))
		segments = append(segments,
			Segment{A: tip, B: back.Add(side.Scale(head * 0.5)), Color: color},
			Segment{A: tip, B: back.Sub(side.Scale(head * 0.5)), Color: color},
		)
	}
	return segments
}

// BasisAxes returns the three axes of b as red, green and blue segments.
func BasisAxes(b math.Basis, length float32) []Segment {
	colors := [3]colormap.RGB{colormap.Red, colormap.Green, colormap.Blue}
	segments := make([]Segment, 3)
	for i := range segments {
		segments[i] = Segment{
			A:     b.Origin,
			B:     b.Origin.Add(b.Axis(i).Scale(length)),
			Color: colors[i],
		}
	}
	return segments
}

func magnitudeRange(samples []Sample) (lo, hi float32) {
	lo, hi = samples[0].Vector.Length(), samples[0].Vector.Length()
	for _, s := range samples[1:] {
		l := s.Vector.Length()
		if l < lo {
			lo = l
		}
		if l > hi {
			hi = l
		}
	}
	return lo, hi
}

// headSide picks a unit vector perpendicular to dir, preferring the XY plane.
func headSide(dir math.Vec3) math.Vec3 {
	side := dir.Cross(math.Vec3{Z: 1})
	if side.Length() < 1e-6 {
		side = dir.Cross(math.Vec3{Y: 1})
	}
	return side.Normalize()
}
