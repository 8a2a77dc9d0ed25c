// Package lighting describes the scaffold light and its on-screen marker.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Loufouh/PE-Parametric-Curves/internal/colormap"
	"github.com/Loufouh/PE-Parametric-Curves/internal/vectorfield"
	"github.com/Loufouh/PE-Parametric-Curves/pkg/math"
)

// Light is a directional light.
type Light struct {
	Direction math.Vec3 // Unit vector pointing towards the light
	Color     colormap.RGB
}

// SunDirection converts longitude/latitude in degrees to a unit vector.
// Longitude turns around Y starting from +Z, latitude is the elevation above
// the XZ plane.
func SunDirection(longitude, latitude float32) math.Vec3 {
	lon := longitude * math32.Pi / 180
	lat := latitude * math32.Pi / 180

	sinLon, cosLon := math32.Sincos(lon)
	sinLat, cosLat := math32.Sincos(lat)
	return math.Vec3{X: cosLat * sinLon, Y: sinLat, Z: cosLat * cosLon}
}

// Directional creates a pale yellow light from the given angles.
func Directional(longitude, latitude float32) Light {
	return Light{Direction: SunDirection(longitude, latitude), Color: colormap.RGB{R: 1, G: 1, B: 0.6}}
}

// Position places the light distance away from center.
func (l Light) Position(center math.Vec3, distance float32) math.Vec3 {
	return center.Add(l.Direction.Scale(distance))
}

// Gizmo draws a ray from center to the light position and a small star at the
// light.
func Gizmo(l Light, center math.Vec3, distance, size float32) []vectorfield.Segment {
	if l.Direction.Length() == 0 || distance <= 0 {
		return nil
	}
	pos := l.Position(center, distance)
	half := size / 2

	segments := []vectorfield.Segment{{A: center, B: pos, Color: l.Color}}
	for _, axis := range []math.Vec3{{X: half}, {Y: half}, {Z: half}} {
		segments = append(segments, vectorfield.Segment{
			A:     pos.Sub(axis),
			B:     pos.Add(axis),
			Color: l.Color,
		})
	}
	return segments
}
