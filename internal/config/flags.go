package config

import (
	"errors"
	"flag"
	"fmt"
)

// ErrUsage is returned when more than one positional argument is given.
var ErrUsage = errors.New("usage: curves [flags] [control-points.yaml]")

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagMode       = flag.String("mode", "", "View mode: curves, quadratic or scaffold")
	flagAlgorithm  = flag.String("algorithm", "", "Bezier algorithm: casteljau or bernstein")
	flagSegments   = flag.Int("segments", 0, "Number of curve samples")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")

	// positional holds flag.Args() after ParseFlags; tests set it directly.
	positional []string
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
	positional = flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if len(positional) > 1 {
		return fmt.Errorf("%w: got %d arguments", ErrUsage, len(positional))
	}
	if len(positional) == 1 {
		cfg.Curve.File = positional[0]
	}

	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.View.ShowFPS = true
	}
	if *flagMode != "" {
		cfg.View.Mode = *flagMode
	}
	if *flagAlgorithm != "" {
		cfg.Curve.Algorithm = *flagAlgorithm
	}
	if *flagSegments > 0 {
		cfg.Curve.Segments = *flagSegments
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	return nil
}
