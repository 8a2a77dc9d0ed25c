// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Loufouh/PE-Parametric-Curves/internal/curve"
	"github.com/Loufouh/PE-Parametric-Curves/internal/scene"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all viewer settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	View       ViewConfig       `yaml:"view"`
	Curve      CurveConfig      `yaml:"curve"`
	Quadratic  QuadraticConfig  `yaml:"quadratic"`
	Scaffold   ScaffoldConfig   `yaml:"scaffold"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// ViewConfig holds what is shown at startup.
type ViewConfig struct {
	Mode       string     `yaml:"mode"`
	Background [3]float32 `yaml:"background"`
	ShowFPS    bool       `yaml:"show_fps"`
}

// CurveConfig holds the curves mode settings.
type CurveConfig struct {
	Algorithm      string  `yaml:"algorithm"`
	Segments       int     `yaml:"segments"`
	ControlPoints  int     `yaml:"control_points"` // Size of the generated sine polygon
	ConstructionAt float32 `yaml:"construction_at"`
	File           string  `yaml:"file"` // Control-point YAML, replaces the generated polygon
	ShowHermite    bool    `yaml:"show_hermite"`
}

// QuadraticConfig holds the parabola y = a*x^2 + b*x + c and its interval.
type QuadraticConfig struct {
	A    float32 `yaml:"a"`
	B    float32 `yaml:"b"`
	C    float32 `yaml:"c"`
	XMin float32 `yaml:"x_min"`
	XMax float32 `yaml:"x_max"`
}

// ScaffoldConfig holds the vector field grid and light settings.
type ScaffoldConfig struct {
	GridSize       int     `yaml:"grid_size"`
	Spacing        float32 `yaml:"spacing"`
	Light          bool    `yaml:"light"`
	LightLongitude float32 `yaml:"light_longitude"` // Degrees around Y from +Z
	LightLatitude  float32 `yaml:"light_latitude"`  // Degrees above the XZ plane
}

// ScreenshotConfig holds capture settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock viewer settings.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "TP | Courbes paramétriques",
			Width:  1600,
			Height: 900,
			VSync:  true,
		},
		View: ViewConfig{
			Mode:       scene.ModeCurves.String(),
			Background: [3]float32{0.2, 0.2, 1.0},
		},
		Curve: CurveConfig{
			Algorithm:      curve.Casteljau.String(),
			Segments:       100,
			ControlPoints:  6,
			ConstructionAt: 0.5,
		},
		Quadratic: QuadraticConfig{
			A:    1,
			XMin: -1,
			XMax: 1,
		},
		Scaffold: ScaffoldConfig{
			GridSize:       9,
			Spacing:        0.25,
			Light:          true,
			LightLongitude: 45,
			LightLatitude:  45,
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports the first setting the viewer cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if _, err := scene.ParseMode(c.View.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := curve.ParseAlgorithm(c.Curve.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Curve.Segments <= 0 {
		return fmt.Errorf("%w: curve segments %d", ErrInvalid, c.Curve.Segments)
	}
	if c.Curve.File == "" && c.Curve.ControlPoints <= 0 {
		return fmt.Errorf("%w: control point count %d", ErrInvalid, c.Curve.ControlPoints)
	}
	if c.Curve.ConstructionAt < 0 || c.Curve.ConstructionAt > 1 {
		return fmt.Errorf("%w: construction parameter %v outside [0, 1]", ErrInvalid, c.Curve.ConstructionAt)
	}
	if c.Quadratic.XMax <= c.Quadratic.XMin {
		return fmt.Errorf("%w: quadratic interval [%v, %v]", ErrInvalid, c.Quadratic.XMin, c.Quadratic.XMax)
	}
	if c.Scaffold.GridSize <= 0 || c.Scaffold.Spacing <= 0 {
		return fmt.Errorf("%w: scaffold grid %d spacing %v", ErrInvalid, c.Scaffold.GridSize, c.Scaffold.Spacing)
	}
	switch c.Screenshot.Format {
	case "png", "bmp":
	default:
		return fmt.Errorf("%w: screenshot format %q", ErrInvalid, c.Screenshot.Format)
	}
	return nil
}
