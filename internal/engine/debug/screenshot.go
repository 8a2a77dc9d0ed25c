// Package debug provides screenshot capture.
package debug

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
)

// ErrUnknownFormat is returned for an image format other than png or bmp.
var ErrUnknownFormat = errors.New("unknown screenshot format")

// Formats lists the supported encodings.
var Formats = []string{"png", "bmp"}

// Screenshot writes framebuffer captures to a directory.
type Screenshot struct {
	outputDir string
	prefix    string
	format    string
	now       func() time.Time
}

// NewScreenshot creates a capture handler writing format ("png" or "bmp")
// files named prefix_timestamp into outputDir.
func NewScreenshot(outputDir, prefix, format string) (*Screenshot, error) {
	format = strings.ToLower(format)
	if format == "" {
		format = "png"
	}
	if !validFormat(format) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &Screenshot{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
		now:       time.Now,
	}, nil
}

// CaptureFromPixels saves raw RGBA pixel data (width*height*4 bytes).
// Rows are flipped since OpenGL has its origin at the bottom left.
func (sc *Screenshot) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	img, err := FlipRGBA(pixels, width, height)
	if err != nil {
		return "", err
	}
	return sc.CaptureFromImage(img)
}

// CaptureFromImage saves an existing image.
func (sc *Screenshot) CaptureFromImage(img image.Image) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.GenerateFilename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}

	if err := Encode(file, img, sc.format); err != nil {
		file.Close()
		os.Remove(filename)
		return "", err
	}
	if err := file.Close(); err != nil {
		os.Remove(filename)
		return "", fmt.Errorf("closing file: %w", err)
	}
	return filename, nil
}

// GenerateFilename returns the next free screenshot path. Captures within the
// same second get a numeric suffix.
func (sc *Screenshot) GenerateFilename() string {
	stamp := sc.now().Format("2006-01-02_15-04-05")
	base := fmt.Sprintf("%s_%s", sc.prefix, stamp)

	name := filepath.Join(sc.outputDir, base+"."+sc.format)
	for i := 1; exists(name); i++ {
		name = filepath.Join(sc.outputDir, fmt.Sprintf("%s_%d.%s", base, i, sc.format))
	}
	return name
}

// FlipRGBA copies bottom-up RGBA rows into a top-down image.
func FlipRGBA(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// Encode writes img in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
	case "bmp":
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("encoding BMP: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return nil
}

func validFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
