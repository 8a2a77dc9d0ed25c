package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestMulOrder(t *testing.T) {
	// Scale first, then translate.
	m := Translate(Vec3{10, 0, 0}).Mul(Scale(2, 2, 2))
	got := m.TransformVec3(Vec3{1, 1, 1})
	want := Vec3{12, 2, 2}
	if got != want {
		t.Errorf("T*S applied to (1,1,1) = %v, want %v", got, want)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
	got := m.TransformVec3(Vec3{1, 2, 3})
	if got != (Vec3{6, 12, 18}) {
		t.Errorf("TransformVec3: got %v", got)
	}
	if d := m.TransformDirection(Vec3{1, 2, 3}); d != (Vec3{1, 2, 3}) {
		t.Errorf("TransformDirection should ignore translation, got %v", d)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAt(t *testing.T) {
	m := LookAt(Vec3{0, 0, 5}, Vec3{}, Vec3{0, 1, 0})

	// The eye must land on the view-space origin.
	p := m.TransformVec3(Vec3{0, 0, 5})
	if abs(p.X) > 1e-5 || abs(p.Y) > 1e-5 || abs(p.Z) > 1e-5 {
		t.Errorf("eye in view space = %v, want origin", p)
	}
	// The target sits on the negative Z axis.
	c := m.TransformVec3(Vec3{})
	if abs(c.Z+5) > 1e-5 {
		t.Errorf("center in view space = %v, want z=-5", c)
	}
}

func TestTranspose(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	tr := m.Transpose()
	if tr[3] != 1 || tr[7] != 2 || tr[11] != 3 {
		t.Errorf("Transpose moved translation wrong: %v", tr)
	}
	if tr.Transpose() != m {
		t.Error("double transpose should be identity")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
