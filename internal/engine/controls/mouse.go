// Package controls maps raw mouse and keyboard input onto camera moves and
// viewer actions.
package controls

// Button identifies a mouse button.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Camera is the part of the camera driven by the mouse.
type Camera interface {
	BeginRotate(x, y int)
	Rotate(x, y int)
	Move(dx, dy, dz float32)
	Zoom(dz float32)
}

// WheelStep is the zoom applied per wheel notch.
const WheelStep = 0.1

// Mouse tracks which drag is in progress. Left rotates, right pans, middle
// zooms. Only one drag is active at a time and any release ends it.
type Mouse struct {
	cam           Camera
	width, height int

	rotating bool
	moving   bool
	zooming  bool

	lastX, lastY int
}

// NewMouse creates mouse controls for a viewport of the given size.
func NewMouse(cam Camera, width, height int) *Mouse {
	m := &Mouse{cam: cam}
	m.Resize(width, height)
	return m
}

// Resize updates the viewport used to normalize drag distances.
func (m *Mouse) Resize(width, height int) {
	if width > 0 {
		m.width = width
	}
	if height > 0 {
		m.height = height
	}
}

// Press starts the drag bound to b.
func (m *Mouse) Press(b Button, x, y int) {
	switch b {
	case ButtonLeft:
		m.cam.BeginRotate(x, y)
		m.rotating, m.moving, m.zooming = true, false, false
	case ButtonRight:
		m.lastX, m.lastY = x, y
		m.rotating, m.moving, m.zooming = false, true, false
	case ButtonMiddle:
		if !m.zooming {
			m.lastY = y
		}
		m.rotating, m.moving, m.zooming = false, false, true
	}
}

// Release ends whatever drag is active, regardless of the button.
func (m *Mouse) Release(Button, int, int) {
	m.rotating, m.moving, m.zooming = false, false, false
}

// Motion feeds a cursor move to the active drag.
func (m *Mouse) Motion(x, y int) {
	if m.width == 0 || m.height == 0 {
		return
	}
	w, h := float32(m.width), float32(m.height)

	switch {
	case m.rotating:
		m.cam.Rotate(x, y)
	case m.moving:
		m.cam.Move(float32(x-m.lastX)/w, float32(m.lastY-y)/h, 0)
		m.lastX, m.lastY = x, y
	case m.zooming:
		m.cam.Zoom(float32(y-m.lastY) / h)
		m.lastY = y
	}
}

// Wheel zooms by notches. Scrolling up moves closer.
func (m *Mouse) Wheel(notches int) {
	if notches == 0 {
		return
	}
	m.cam.Zoom(-WheelStep * float32(notches))
}

// Dragging reports whether a drag is in progress.
func (m *Mouse) Dragging() bool {
	return m.rotating || m.moving || m.zooming
}
