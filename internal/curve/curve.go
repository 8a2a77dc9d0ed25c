// Package curve evaluates parametric curves: cubic Hermite segments and Bézier
// curves through either the Bernstein basis or de Casteljau subdivision.
//
// Every sampler returns n points for u = i/n, i in [0, n). The end point u = 1
// is not part of the sample set.
package curve

import (
	"errors"
	"fmt"
	stdmath "math"
	"strings"

	"github.com/Loufouh/PE-Parametric-Curves/pkg/math"
)

var (
	// ErrNoControlPoints is returned when a Bézier curve has an empty control polygon.
	ErrNoControlPoints = errors.New("curve: no control points")

	// ErrInvalidSegments is returned when the sample count is not positive.
	ErrInvalidSegments = errors.New("curve: sample count must be positive")
)

// Algorithm selects how Bézier points are computed.
type Algorithm int

const (
	Casteljau Algorithm = iota
	Bernstein
)

// String returns the config name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Bernstein:
		return "bernstein"
	case Casteljau:
		return "casteljau"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Next returns the other algorithm.
func (a Algorithm) Next() Algorithm {
	if a == Bernstein {
		return Casteljau
	}
	return Bernstein
}

// ParseAlgorithm converts a config name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "casteljau", "decasteljau", "de-casteljau":
		return Casteljau, nil
	case "bernstein":
		return Bernstein, nil
	default:
		return 0, fmt.Errorf("curve: unknown algorithm %q", s)
	}
}

// param returns the i-th parameter value of an n-sample set.
func param(i, n int) float32 {
	return float32(i) / float32(n)
}

// Bezier samples the curve defined by ctrl with the given algorithm.
func Bezier(alg Algorithm, ctrl []math.Vec3, n int) ([]math.Vec3, error) {
	if len(ctrl) == 0 {
		return nil, ErrNoControlPoints
	}
	if n <= 0 {
		return nil, ErrInvalidSegments
	}

	switch alg {
	case Bernstein:
		return BezierBernstein(ctrl, n), nil
	case Casteljau:
		return BezierCasteljau(ctrl, n), nil
	default:
		return nil, fmt.Errorf("curve: unsupported algorithm %v", alg)
	}
}

// Factorial returns n!. It overflows past 20!.
func Factorial(n uint64) uint64 {
	result := uint64(1)
	for ; n > 1; n-- {
		result *= n
	}
	return result
}

// Binomial returns C(n, k), or 0 when k > n. It is exact while the result
// fits in a uint64 (every k for n <= 62) and wraps silently beyond.
func Binomial(n, k uint64) uint64 {
	if k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := uint64(1)
	for i := uint64(1); i <= k; i++ {
		// Exact at every step: result is C(n-k+i-1, i-1) before the update.
		result = result * (n - k + i) / i
	}
	return result
}

// BernsteinPoly returns the Bernstein basis polynomial B(i, n) evaluated at u.
// The weight is computed in float64 so polygons past the uint64 binomial range
// still evaluate correctly.
func BernsteinPoly(n, i int, u float32) float32 {
	if i < 0 || i > n {
		return 0
	}
	x := float64(u)
	w := binomialFloat(n, i) * stdmath.Pow(x, float64(i)) * stdmath.Pow(1-x, float64(n-i))
	return float32(w)
}

// binomialFloat is the multiplicative C(n, k) in float64.
func binomialFloat(n, k int) float64 {
	if k > n-k {
		k = n - k
	}
	result := 1.0
	for i := 1; i <= k; i++ {
		result = result * float64(n-k+i) / float64(i)
	}
	return result
}

// BezierBernsteinPoint evaluates the curve at u as a Bernstein-weighted sum of
// the control points.
func BezierBernsteinPoint(ctrl []math.Vec3, u float32) math.Vec3 {
	var p math.Vec3
	n := len(ctrl) - 1
	for i, c := range ctrl {
		p = p.Add(c.Scale(BernsteinPoly(n, i, u)))
	}
	return p
}

// BezierBernstein samples n points of the curve through the Bernstein basis.
func BezierBernstein(ctrl []math.Vec3, n int) []math.Vec3 {
	if len(ctrl) == 0 || n <= 0 {
		return nil
	}
	points := make([]math.Vec3, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, BezierBernsteinPoint(ctrl, param(i, n)))
	}
	return points
}

// casteljauStep returns the polygon obtained by interpolating each edge of
// poly at u. The result has one point fewer than poly.
func casteljauStep(poly []math.Vec3, u float32) []math.Vec3 {
	next := make([]math.Vec3, len(poly)-1)
	for i := range next {
		next[i] = poly[i].Lerp(poly[i+1], u)
	}
	return next
}

// BezierCasteljauPoint evaluates the curve at u by repeated linear interpolation.
func BezierCasteljauPoint(ctrl []math.Vec3, u float32) math.Vec3 {
	if len(ctrl) == 0 {
		return math.Vec3{}
	}
	poly := ctrl
	for len(poly) > 1 {
		poly = casteljauStep(poly, u)
	}
	return poly[0]
}

// BezierCasteljau samples n points of the curve with de Casteljau's algorithm.
func BezierCasteljau(ctrl []math.Vec3, n int) []math.Vec3 {
	if len(ctrl) == 0 || n <= 0 {
		return nil
	}
	points := make([]math.Vec3, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, BezierCasteljauPoint(ctrl, param(i, n)))
	}
	return points
}

// CasteljauLevels returns every intermediate polygon built while evaluating the
// curve at u. Level k holds len(ctrl)-1-k points; the last level is the single
// curve point. The control polygon itself is not included.
func CasteljauLevels(ctrl []math.Vec3, u float32) [][]math.Vec3 {
	if len(ctrl) < 2 {
		return nil
	}
	levels := make([][]math.Vec3, 0, len(ctrl)-1)
	poly := ctrl
	for len(poly) > 1 {
		poly = casteljauStep(poly, u)
		levels = append(levels, poly)
	}
	return levels
}

// Subdivide splits the curve at u into two control polygons whose curves
// together trace the full curve.
func Subdivide(ctrl []math.Vec3, u float32) (left, right []math.Vec3) {
	if len(ctrl) == 0 {
		return nil, nil
	}
	left = make([]math.Vec3, 0, len(ctrl))
	right = make([]math.Vec3, len(ctrl))

	poly := ctrl
	left = append(left, poly[0])
	right[len(ctrl)-1] = poly[len(poly)-1]
	for k := len(ctrl) - 2; k >= 0; k-- {
		poly = casteljauStep(poly, u)
		left = append(left, poly[0])
		right[k] = poly[len(poly)-1]
	}
	return left, right
}
