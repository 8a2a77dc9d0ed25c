package curvefile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Loufouh/PE-Parametric-Curves/internal/scene"
	"github.com/Loufouh/PE-Parametric-Curves/pkg/math"
)

func TestParse(t *testing.T) {
	data := []byte(`
control_points:
  - [-1, 0, 0]
  - [-0.25, 1, 0]
  - [0.25, -1, 0]
  - [1, 0, 0]
hermite:
  p0: [0, 0, 0]
  p1: [2, 0, 0]
  v0: [1, 1, 0]
  v1: [1, -1, 0]
`)
	c, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(c.ControlPoints) != 4 {
		t.Fatalf("got %d control points, want 4", len(c.ControlPoints))
	}
	if c.ControlPoints[1] != (math.Vec3{X: -0.25, Y: 1}) {
		t.Errorf("control point 1 = %v", c.ControlPoints[1])
	}
	if c.Hermite == nil {
		t.Fatal("hermite segment missing")
	}
	if c.Hermite.P1 != (math.Vec3{X: 2}) || c.Hermite.V1 != (math.Vec3{X: 1, Y: -1}) {
		t.Errorf("hermite = %+v", *c.Hermite)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"short point", "control_points: [[1, 2]]", ErrInvalidPoint},
		{"long point", "control_points: [[1, 2, 3, 4]]", ErrInvalidPoint},
		{"bad hermite", "hermite: {p0: [0,0,0], p1: [1,0,0], v0: [1], v1: [0,0,0]}", ErrInvalidPoint},
		{"empty", "{}", ErrEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Parse([]byte("control_points: [[a, b, c]]")); err == nil {
		t.Error("non-numeric coordinates should fail")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "curve.yaml")
	in := &Curves{
		ControlPoints: []math.Vec3{{X: 1, Y: 2, Z: 3}, {X: -1}},
		Hermite:       &scene.HermiteSegment{P1: math.Vec3{X: 1}, V0: math.Vec3{Y: 1}},
	}
	if err := Save(path, in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out.ControlPoints) != 2 || out.ControlPoints[0] != in.ControlPoints[0] {
		t.Errorf("control points = %v", out.ControlPoints)
	}
	if out.Hermite == nil || *out.Hermite != *in.Hermite {
		t.Errorf("hermite = %+v", out.Hermite)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !os.IsNotExist(err) {
		t.Errorf("missing file: got %v, want not-exist", err)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("control_points: [[1]]"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidPoint) {
		t.Errorf("bad file: got %v, want ErrInvalidPoint", err)
	}
}
