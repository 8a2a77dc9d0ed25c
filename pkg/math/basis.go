package math

// Basis is an orthonormal frame: an origin and three axes.
type Basis struct {
	Origin  Vec3
	I, J, K Vec3
}

// DefaultBasis returns the world frame at the origin.
func DefaultBasis() Basis {
	return Basis{
		I: Vec3{X: 1},
		J: Vec3{Y: 1},
		K: Vec3{Z: 1},
	}
}

// Axis returns I for 0, J for 1 and K otherwise.
func (b Basis) Axis(i int) Vec3 {
	switch i {
	case 0:
		return b.I
	case 1:
		return b.J
	default:
		return b.K
	}
}

// Point returns origin + x*I + y*J + z*K.
func (b Basis) Point(x, y, z float32) Vec3 {
	return b.Origin.Add(b.I.Scale(x)).Add(b.J.Scale(y)).Add(b.K.Scale(z))
}
