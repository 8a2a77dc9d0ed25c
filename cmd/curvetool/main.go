// curvetool prints curve samples and color conversions without opening a window.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/Loufouh/PE-Parametric-Curves/internal/colormap"
	"github.com/Loufouh/PE-Parametric-Curves/internal/config"
	"github.com/Loufouh/PE-Parametric-Curves/internal/curve"
	"github.com/Loufouh/PE-Parametric-Curves/internal/curvefile"
	"github.com/Loufouh/PE-Parametric-Curves/internal/scene"
	"github.com/Loufouh/PE-Parametric-Curves/internal/session"
	"github.com/Loufouh/PE-Parametric-Curves/pkg/math"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string, out io.Writer) error {
	switch command {
	case "eval":
		return cmdEval(args, out)
	case "hermite":
		return cmdHermite(args, out)
	case "levels":
		return cmdLevels(args, out)
	case "hsv":
		return cmdHSV(args, out)
	case "scalar":
		return cmdScalar(args, out)
	case "config":
		return cmdConfig(args, out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `curvetool - parametric curve utility

Usage:
  curvetool <command> [options]

Commands:
  eval [-alg name] [-n N] [file.yaml]  Sample the Bezier curve of a file
  hermite [-n N] [file.yaml]           Sample the Hermite segment of a file
  levels [-u U] [file.yaml]            Print the de Casteljau construction
  hsv <h> <s> <v>                      Convert HSV (degrees, 0-1, 0-1) to RGB
  scalar <value> <min> <max>           Map a scalar onto the blue-red ramp
  config [path]                        Write the default config

Without a file the four-point wave polygon is used.

Examples:
  curvetool eval -alg bernstein -n 20 curve.yaml
  curvetool levels -u 0.25
  curvetool hsv 120 1 1`)
}

func cmdEval(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	alg := fs.String("alg", curve.Casteljau.String(), "Algorithm: casteljau or bernstein")
	n := fs.Int("n", 10, "Number of samples")
	if err := fs.Parse(args); err != nil {
		return err
	}

	algorithm, err := curve.ParseAlgorithm(*alg)
	if err != nil {
		return err
	}
	ctrl, _, err := loadCurves(fs.Arg(0))
	if err != nil {
		return err
	}

	points, err := curve.Bezier(algorithm, ctrl, *n)
	if err != nil {
		return err
	}
	printSamples(out, points, *n)
	return nil
}

func cmdHermite(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("hermite", flag.ContinueOnError)
	n := fs.Int("n", 10, "Number of samples")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n <= 0 {
		return curve.ErrInvalidSegments
	}

	_, h, err := loadCurves(fs.Arg(0))
	if err != nil {
		return err
	}
	seg := session.DefaultHermite
	if h != nil {
		seg = *h
	}

	printSamples(out, curve.Hermite(seg.P0, seg.P1, seg.V0, seg.V1, *n), *n)
	return nil
}

func cmdLevels(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("levels", flag.ContinueOnError)
	u := fs.Float64("u", 0.5, "Curve parameter in [0, 1]")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *u < 0 || *u > 1 {
		return fmt.Errorf("parameter %v outside [0, 1]", *u)
	}

	ctrl, _, err := loadCurves(fs.Arg(0))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "level 0 (%d points)\n", len(ctrl))
	printPoints(out, ctrl)
	for i, level := range curve.CasteljauLevels(ctrl, float32(*u)) {
		fmt.Fprintf(out, "level %d (%d points)\n", i+1, len(level))
		printPoints(out, level)
	}
	return nil
}

func cmdHSV(args []string, out io.Writer) error {
	v, err := parseFloats(args, 3, "hsv <h> <s> <v>")
	if err != nil {
		return err
	}
	printColor(out, colormap.HSVToRGB(v[0], v[1], v[2]))
	return nil
}

func cmdScalar(args []string, out io.Writer) error {
	v, err := parseFloats(args, 3, "scalar <value> <min> <max>")
	if err != nil {
		return err
	}
	printColor(out, colormap.Scalar(v[0], v[1], v[2]))
	return nil
}

func cmdConfig(args []string, out io.Writer) error {
	path := "config.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if err := config.Default().SaveTo(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}

// loadCurves reads path, or returns the wave polygon when path is empty.
func loadCurves(path string) ([]math.Vec3, *scene.HermiteSegment, error) {
	if path == "" {
		return curve.WaveControlPoints(), nil, nil
	}
	c, err := curvefile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	ctrl := c.ControlPoints
	if len(ctrl) == 0 {
		ctrl = curve.WaveControlPoints()
	}
	return ctrl, c.Hermite, nil
}

func parseFloats(args []string, n int, usage string) ([]float32, error) {
	if len(args) != n {
		return nil, fmt.Errorf("usage: curvetool %s", usage)
	}
	out := make([]float32, n)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

func printSamples(w io.Writer, points []math.Vec3, n int) {
	for i, p := range points {
		fmt.Fprintf(w, "%4d  u=%.4f  %9.5f %9.5f %9.5f\n", i, float32(i)/float32(n), p.X, p.Y, p.Z)
	}
}

func printPoints(w io.Writer, points []math.Vec3) {
	for _, p := range points {
		fmt.Fprintf(w, "  %9.5f %9.5f %9.5f\n", p.X, p.Y, p.Z)
	}
}

func printColor(w io.Writer, c colormap.RGB) {
	fmt.Fprintf(w, "%.4f %.4f %.4f\n", c.R, c.G, c.B)
}
