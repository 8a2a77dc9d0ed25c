// Package camera provides the trackball camera used by the viewer.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Loufouh/PE-Parametric-Curves/pkg/math"
)

// Trackball looks at a center point from Distance away. Dragging rotates the
// scene on a virtual sphere; panning shifts it in the view plane.
type Trackball struct {
	// Viewport size in pixels
	Width, Height int

	Center   math.Vec3 // Point the camera looks at
	Rotation math.Quat // Scene orientation
	Pan      math.Vec3 // View-space offset
	Distance float32   // Distance from center

	// Projection
	FovY      float32 // Radians
	Near, Far float32

	// Constraints
	MinDistance float32
	MaxDistance float32

	// Sensitivity
	PanSensitivity  float32
	ZoomSensitivity float32

	// Distance picked by the last FitToBounds, restored by Reset
	home float32

	lastSphere math.Vec3
}

// NewTrackball creates a camera looking at the origin from 3 units away.
func NewTrackball(width, height int) *Trackball {
	c := &Trackball{
		Rotation:        math.QuatIdentity(),
		Distance:        3,
		FovY:            math32.Pi / 4,
		Near:            0.01,
		Far:             100,
		MinDistance:     0.05,
		MaxDistance:     50,
		PanSensitivity:  1,
		ZoomSensitivity: 2,
		home:            3,
	}
	c.Resize(width, height)
	return c
}

// Resize updates the viewport. Zero sizes (minimized window) are ignored.
func (c *Trackball) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Width = width
	c.Height = height
}

// Aspect returns width / height.
func (c *Trackball) Aspect() float32 {
	if c.Height == 0 {
		return 1
	}
	return float32(c.Width) / float32(c.Height)
}

// Projection returns the perspective projection matrix.
func (c *Trackball) Projection() math.Mat4 {
	return math.Perspective(c.FovY, c.Aspect(), c.Near, c.Far)
}

// View returns the view matrix: center moved to the origin, rotated, then
// pushed back by Distance and offset by Pan.
func (c *Trackball) View() math.Mat4 {
	back := c.Pan.Add(math.Vec3{Z: -c.Distance})
	return math.Translate(back).
		Mul(c.Rotation.ToMat4()).
		Mul(math.Translate(c.Center.Scale(-1)))
}

// Eye returns the camera position in world space.
func (c *Trackball) Eye() math.Vec3 {
	// Inverse rotation of the view-space origin offset.
	inv := c.Rotation.ToMat4().Transpose()
	offset := inv.TransformDirection(c.Pan.Scale(-1).Add(math.Vec3{Z: c.Distance}))
	return c.Center.Add(offset)
}

// BeginRotate starts a drag at window coordinates (x, y).
func (c *Trackball) BeginRotate(x, y int) {
	c.lastSphere = c.sphere(x, y)
}

// Rotate continues a drag to (x, y), turning the scene by the arc between the
// previous and current sphere points.
func (c *Trackball) Rotate(x, y int) {
	cur := c.sphere(x, y)
	axis := c.lastSphere.Cross(cur)
	if axis.Length() > 1e-6 {
		cos := c.lastSphere.Dot(cur)
		if cos > 1 {
			cos = 1
		}
		angle := math32.Acos(cos)
		c.Rotation = math.QuatFromAxisAngle(axis.Normalize(), angle).Mul(c.Rotation).Normalize()
	}
	c.lastSphere = cur
}

// Move pans by a fraction of the viewport. The offset scales with Distance so
// the scene follows the cursor at any zoom.
func (c *Trackball) Move(dx, dy, dz float32) {
	c.Pan = c.Pan.Add(math.Vec3{X: dx, Y: dy, Z: dz}.Scale(c.Distance * c.PanSensitivity))
}

// Zoom changes Distance by dz of itself times ZoomSensitivity. Positive dz
// moves away.
func (c *Trackball) Zoom(dz float32) {
	c.Distance += dz * c.Distance * c.ZoomSensitivity
	c.clampDistance()
}

// FitToBounds centers the camera on the box and backs off until it fits.
func (c *Trackball) FitToBounds(min, max math.Vec3) {
	c.Center = min.Add(max).Scale(0.5)

	radius := max.Sub(min).Length() / 2
	if radius < 0.1 {
		radius = 0.1
	}
	c.home = radius / math32.Sin(c.FovY/2) * 1.1
	c.Reset()
}

// Reset restores orientation, pan and the fitted distance.
func (c *Trackball) Reset() {
	c.Rotation = math.QuatIdentity()
	c.Pan = math.Vec3{}
	c.Distance = c.home
	c.clampDistance()
}

func (c *Trackball) clampDistance() {
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// sphere maps window coordinates onto the unit trackball. Points outside the
// ball land on a hyperbolic sheet so the drag never jumps.
func (c *Trackball) sphere(x, y int) math.Vec3 {
	w, h := float32(c.Width), float32(c.Height)
	if w == 0 || h == 0 {
		return math.Vec3{Z: 1}
	}
	size := math32.Min(w, h)
	p := math.Vec3{
		X: (2*float32(x) - w) / size,
		Y: (h - 2*float32(y)) / size,
	}
	d2 := p.X*p.X + p.Y*p.Y
	if d2 <= 0.5 {
		p.Z = math32.Sqrt(1 - d2)
	} else {
		p.Z = 0.5 / math32.Sqrt(d2)
	}
	return p.Normalize()
}
