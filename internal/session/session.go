// Package session holds the viewer state that key bindings change and turns
// it into scenes.
package session

import (
	"fmt"

	"github.com/Loufouh/PE-Parametric-Curves/internal/colormap"
	"github.com/Loufouh/PE-Parametric-Curves/internal/config"
	"github.com/Loufouh/PE-Parametric-Curves/internal/curve"
	"github.com/Loufouh/PE-Parametric-Curves/internal/curvefile"
	"github.com/Loufouh/PE-Parametric-Curves/internal/engine/controls"
	"github.com/Loufouh/PE-Parametric-Curves/internal/engine/lighting"
	"github.com/Loufouh/PE-Parametric-Curves/internal/scene"
	"github.com/Loufouh/PE-Parametric-Curves/pkg/math"
)

// Sample count limits for the segment keys.
const (
	MinSegments = 2
	MaxSegments = 4096
)

// DefaultHermite is drawn when Hermite display is on and no file gave one.
var DefaultHermite = scene.HermiteSegment{
	P0: math.Vec3{X: -1},
	P1: math.Vec3{X: 1},
	V0: math.Vec3{X: 2, Y: 2},
	V1: math.Vec3{X: 2, Y: -2},
}

// Session is the mutable viewer state.
type Session struct {
	Mode        scene.Mode
	Algorithm   curve.Algorithm
	Segments    int
	ShowHermite bool
	File        string

	controlPoints  []math.Vec3
	hermite        *scene.HermiteSegment
	constructionAt float32
	background     colormap.RGB
	quadratic      scene.QuadraticOptions
	scaffold       scene.ScaffoldOptions
}

// New builds the startup state from cfg, loading cfg.Curve.File if set.
func New(cfg *config.Config) (*Session, error) {
	mode, err := scene.ParseMode(cfg.View.Mode)
	if err != nil {
		return nil, err
	}
	alg, err := curve.ParseAlgorithm(cfg.Curve.Algorithm)
	if err != nil {
		return nil, err
	}

	bg := cfg.View.Background
	s := &Session{
		Mode:           mode,
		Algorithm:      alg,
		Segments:       clampSegments(cfg.Curve.Segments),
		ShowHermite:    cfg.Curve.ShowHermite,
		controlPoints:  curve.SineControlPoints(cfg.Curve.ControlPoints),
		constructionAt: cfg.Curve.ConstructionAt,
		background:     colormap.RGB{R: bg[0], G: bg[1], B: bg[2]},
		quadratic: scene.QuadraticOptions{
			A:    cfg.Quadratic.A,
			B:    cfg.Quadratic.B,
			C:    cfg.Quadratic.C,
			XMin: cfg.Quadratic.XMin,
			XMax: cfg.Quadratic.XMax,
		},
		scaffold: scene.DefaultScaffold(),
	}
	s.scaffold.GridSize = cfg.Scaffold.GridSize
	s.scaffold.Spacing = cfg.Scaffold.Spacing
	s.scaffold.Light = nil
	if cfg.Scaffold.Light {
		light := lighting.Directional(cfg.Scaffold.LightLongitude, cfg.Scaffold.LightLatitude)
		s.scaffold.Light = &light
	}

	if cfg.Curve.File != "" {
		if err := s.LoadFile(cfg.Curve.File); err != nil {
			return nil, err
		}
	}
	// A Hermite-only file with no generated polygon still needs a Bézier curve.
	if len(s.controlPoints) == 0 {
		s.controlPoints = curve.SineControlPoints(config.Default().Curve.ControlPoints)
	}
	return s, nil
}

// LoadFile replaces the curves with those of a control-point file and
// switches to the curves view. A file without control points keeps the
// current polygon. A file with a Hermite segment turns Hermite display on.
func (s *Session) LoadFile(path string) error {
	c, err := curvefile.Load(path)
	if err != nil {
		return fmt.Errorf("loading curve file: %w", err)
	}
	if len(c.ControlPoints) > 0 {
		s.controlPoints = c.ControlPoints
	}
	if c.Hermite != nil {
		s.hermite = c.Hermite
		s.ShowHermite = true
	}
	s.File = path
	s.Mode = scene.ModeCurves
	return nil
}

// ControlPoints returns the current control polygon.
func (s *Session) ControlPoints() []math.Vec3 {
	return s.controlPoints
}

// Apply performs the state part of an action and reports whether the scene
// must be rebuilt. Actions that only touch the window or camera return false.
func (s *Session) Apply(a controls.Action) bool {
	switch a {
	case controls.ActionToggleAlgorithm:
		s.Algorithm = s.Algorithm.Next()
		return s.Mode == scene.ModeCurves
	case controls.ActionMoreSegments:
		return s.setSegments(s.Segments * 2)
	case controls.ActionFewerSegments:
		return s.setSegments(s.Segments / 2)
	case controls.ActionToggleHermite:
		s.ShowHermite = !s.ShowHermite
		return s.Mode == scene.ModeCurves
	case controls.ActionModeCurves:
		return s.setMode(scene.ModeCurves)
	case controls.ActionModeQuadratic:
		return s.setMode(scene.ModeQuadratic)
	case controls.ActionModeScaffold:
		return s.setMode(scene.ModeScaffold)
	}
	return false
}

// Options returns the scene options for the current state.
func (s *Session) Options() scene.Options {
	curves := scene.CurveOptions{
		ControlPoints:  s.controlPoints,
		Algorithm:      s.Algorithm,
		Segments:       s.Segments,
		ConstructionAt: s.constructionAt,
	}
	if s.ShowHermite {
		h := DefaultHermite
		if s.hermite != nil {
			h = *s.hermite
		}
		curves.Hermite = &h
	}

	quadratic := s.quadratic
	quadratic.Segments = s.Segments

	bg := s.background
	return scene.Options{
		Background: &bg,
		Curves:     curves,
		Quadratic:  quadratic,
		Scaffold:   s.scaffold,
	}
}

// Scene builds the geometry of the current view.
func (s *Session) Scene() (*scene.Scene, error) {
	return scene.Build(s.Mode, s.Options())
}

// Title describes the state for the window title.
func (s *Session) Title(base string) string {
	switch s.Mode {
	case scene.ModeCurves:
		return fmt.Sprintf("%s | %s | %s | %d segments", base, s.Mode, s.Algorithm, s.Segments)
	case scene.ModeQuadratic:
		return fmt.Sprintf("%s | %s | %d segments", base, s.Mode, s.Segments)
	default:
		return fmt.Sprintf("%s | %s", base, s.Mode)
	}
}

func (s *Session) setSegments(n int) bool {
	n = clampSegments(n)
	if n == s.Segments {
		return false
	}
	s.Segments = n
	return s.Mode != scene.ModeScaffold
}

func (s *Session) setMode(m scene.Mode) bool {
	if m == s.Mode {
		return false
	}
	s.Mode = m
	return true
}

func clampSegments(n int) int {
	if n < MinSegments {
		return MinSegments
	}
	if n > MaxSegments {
		return MaxSegments
	}
	return n
}
