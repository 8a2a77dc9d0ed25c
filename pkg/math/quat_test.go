package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	n := Quat{X: 1, Y: 2, Z: 3, W: 4}.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
	if (Quat{}).Normalize() != QuatIdentity() {
		t.Error("degenerate quaternion should normalize to identity")
	}
}

func TestQuatToMat4(t *testing.T) {
	m := QuatIdentity().ToMat4()

	identity := Identity()
	for i := 0; i < 16; i++ {
		if math.Abs(float64(m[i]-identity[i])) > 0.0001 {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatRotate(t *testing.T) {
	// 90 degrees around Y takes +X to -Z.
	q := QuatFromAxisAngle(Vec3{Y: 1}, float32(math.Pi/2))
	got := q.Rotate(Vec3{X: 1})
	if abs(got.X) > 0.001 || abs(got.Y) > 0.001 || abs(got.Z+1) > 0.001 {
		t.Errorf("Rotate = %v, want (0, 0, -1)", got)
	}
}

func TestQuatMulComposes(t *testing.T) {
	quarter := QuatFromAxisAngle(Vec3{Z: 1}, float32(math.Pi/2))
	half := quarter.Mul(quarter)

	got := half.Rotate(Vec3{X: 1})
	if abs(got.X+1) > 0.001 || abs(got.Y) > 0.001 {
		t.Errorf("two quarter turns around Z should map +X to -X, got %v", got)
	}
}
