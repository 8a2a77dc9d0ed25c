package curve

import (
	"github.com/chewxy/math32"

	"github.com/Loufouh/PE-Parametric-Curves/pkg/math"
)

// SineControlPoints lays count points on y = sin(5x), x starting at -1 and
// advancing by 1/(count/2).
func SineControlPoints(count int) []math.Vec3 {
	if count <= 0 {
		return nil
	}
	half := count / 2
	if half == 0 {
		half = 1
	}
	points := make([]math.Vec3, 0, count)
	for i := 0; i < count; i++ {
		x := float32(i)/float32(half) - 1
		points = append(points, math.Vec3{X: x, Y: math32.Sin(5 * x)})
	}
	return points
}

// WaveControlPoints is the four-point S-shaped polygon used by the curve tool
// when no file is given.
func WaveControlPoints() []math.Vec3 {
	return []math.Vec3{
		{X: -1, Y: 0},
		{X: -0.25, Y: 1},
		{X: 0.25, Y: -1},
		{X: 1, Y: 0},
	}
}

// QuadraticPlot samples y = a*x^2 + b*x + c at n points from xmin toward xmax.
// Like the other samplers it stops one step short of xmax.
func QuadraticPlot(a, b, c, xmin, xmax float32, n int) []math.Vec3 {
	if n <= 0 {
		return nil
	}
	points := make([]math.Vec3, 0, n)
	for i := 0; i < n; i++ {
		x := xmin + (xmax-xmin)*param(i, n)
		points = append(points, math.Vec3{X: x, Y: a*x*x + b*x + c})
	}
	return points
}
