package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1600 {
		t.Errorf("expected width 1600, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.View.Mode != "curves" {
		t.Errorf("expected mode 'curves', got %s", cfg.View.Mode)
	}
	if cfg.View.Background != [3]float32{0.2, 0.2, 1.0} {
		t.Errorf("unexpected background %v", cfg.View.Background)
	}
	if cfg.Curve.Algorithm != "casteljau" {
		t.Errorf("expected algorithm 'casteljau', got %s", cfg.Curve.Algorithm)
	}
	if cfg.Curve.Segments != 100 {
		t.Errorf("expected 100 segments, got %d", cfg.Curve.Segments)
	}
	if cfg.Curve.ControlPoints != 6 {
		t.Errorf("expected 6 control points, got %d", cfg.Curve.ControlPoints)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true

view:
  mode: scaffold
  background: [0, 0, 0]

curve:
  algorithm: bernstein
  segments: 250
  file: points.yaml
  show_hermite: true

screenshot:
  format: bmp

logging:
  level: "debug"
  log_file: "curves.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.View.Mode != "scaffold" {
		t.Errorf("expected mode scaffold, got %s", cfg.View.Mode)
	}
	if cfg.View.Background != [3]float32{} {
		t.Errorf("expected black background, got %v", cfg.View.Background)
	}
	if cfg.Curve.Algorithm != "bernstein" || cfg.Curve.Segments != 250 {
		t.Errorf("curve = %+v", cfg.Curve)
	}
	if cfg.Curve.File != "points.yaml" || !cfg.Curve.ShowHermite {
		t.Errorf("curve file settings = %+v", cfg.Curve)
	}
	// Untouched keys keep their defaults.
	if cfg.Curve.ControlPoints != 6 {
		t.Errorf("expected default control point count, got %d", cfg.Curve.ControlPoints)
	}
	if cfg.Window.Title != Default().Window.Title {
		t.Errorf("expected default title, got %q", cfg.Window.Title)
	}
	if cfg.Screenshot.Format != "bmp" {
		t.Errorf("expected bmp screenshots, got %s", cfg.Screenshot.Format)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "curves.log" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative height", func(c *Config) { c.Window.Height = -5 }},
		{"unknown mode", func(c *Config) { c.View.Mode = "surface" }},
		{"unknown algorithm", func(c *Config) { c.Curve.Algorithm = "bspline" }},
		{"zero segments", func(c *Config) { c.Curve.Segments = 0 }},
		{"no control points", func(c *Config) { c.Curve.ControlPoints = 0 }},
		{"construction above 1", func(c *Config) { c.Curve.ConstructionAt = 1.5 }},
		{"empty interval", func(c *Config) { c.Quadratic.XMax = c.Quadratic.XMin }},
		{"zero grid", func(c *Config) { c.Scaffold.GridSize = 0 }},
		{"bad format", func(c *Config) { c.Screenshot.Format = "gif" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}

	// A file replaces the generated polygon, so its size is not needed.
	cfg := Default()
	cfg.Curve.ControlPoints = 0
	cfg.Curve.File = "points.yaml"
	if err := cfg.Validate(); err != nil {
		t.Errorf("file without control point count should validate: %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.View.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "mode and algorithm flags",
			setup: func() { *flagMode = "quadratic"; *flagAlgorithm = "bernstein" },
			verify: func(cfg *Config) {
				if cfg.View.Mode != "quadratic" || cfg.Curve.Algorithm != "bernstein" {
					t.Errorf("got mode %s algorithm %s", cfg.View.Mode, cfg.Curve.Algorithm)
				}
			},
			teardown: func() { *flagMode = ""; *flagAlgorithm = "" },
		},
		{
			name:  "segments flag",
			setup: func() { *flagSegments = 512 },
			verify: func(cfg *Config) {
				if cfg.Curve.Segments != 512 {
					t.Errorf("expected 512 segments, got %d", cfg.Curve.Segments)
				}
			},
			teardown: func() { *flagSegments = 0 },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "width and height flags",
			setup: func() { *flagWidth = 2560; *flagHeight = 1440 },
			verify: func(cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() { *flagWidth = 0; *flagHeight = 0 },
		},
		{
			name:  "positional control point file",
			setup: func() { positional = []string{"wave.yaml"} },
			verify: func(cfg *Config) {
				if cfg.Curve.File != "wave.yaml" {
					t.Errorf("expected file wave.yaml, got %q", cfg.Curve.File)
				}
			},
			teardown: func() { positional = nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			if err := applyFlags(cfg); err != nil {
				t.Fatalf("applyFlags: %v", err)
			}
			tt.verify(cfg)
		})
	}
}

func TestApplyFlagsTooManyArgs(t *testing.T) {
	positional = []string{"a.yaml", "b.yaml"}
	defer func() { positional = nil }()

	if err := applyFlags(Default()); !errors.Is(err, ErrUsage) {
		t.Errorf("applyFlags = %v, want ErrUsage", err)
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
window:
  width: 1280
  height: 720
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from flag, height from file.
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("view:\n  mode: hologram\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() = %v, want ErrInvalid", err)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Default()
	cfg.Curve.Segments = 42
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Curve.Segments != 42 {
		t.Errorf("expected 42 segments after reload, got %d", loaded.Curve.Segments)
	}
}
