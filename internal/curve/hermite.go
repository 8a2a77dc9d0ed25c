package curve

import "github.com/Loufouh/PE-Parametric-Curves/pkg/math"

// HermiteBasis returns the cubic Hermite weights for p0, p1, v0 and v1 at u.
func HermiteBasis(u float32) [4]float32 {
	u2 := u * u
	u3 := u2 * u
	return [4]float32{
		2*u3 - 3*u2 + 1,
		-2*u3 + 3*u2,
		u3 - 2*u2 + u,
		u3 - u2,
	}
}

// HermitePoint evaluates the cubic Hermite segment from p0 to p1 with end
// tangents v0 and v1 at u.
func HermitePoint(p0, p1, v0, v1 math.Vec3, u float32) math.Vec3 {
	f := HermiteBasis(u)
	return p0.Scale(f[0]).
		Add(p1.Scale(f[1])).
		Add(v0.Scale(f[2])).
		Add(v1.Scale(f[3]))
}

// Hermite samples n points of the cubic Hermite segment.
func Hermite(p0, p1, v0, v1 math.Vec3, n int) []math.Vec3 {
	if n <= 0 {
		return nil
	}
	points := make([]math.Vec3, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, HermitePoint(p0, p1, v0, v1, param(i, n)))
	}
	return points
}
