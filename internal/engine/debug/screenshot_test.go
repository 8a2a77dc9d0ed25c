package debug

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

// pixels2x2 is bottom-up: red, green on the bottom row, blue, white on top.
var pixels2x2 = []byte{
	255, 0, 0, 255, 0, 255, 0, 255,
	0, 0, 255, 255, 255, 255, 255, 255,
}

func fixedClock() time.Time {
	return time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
}

func TestFlipRGBA(t *testing.T) {
	img, err := FlipRGBA(pixels2x2, 2, 2)
	if err != nil {
		t.Fatalf("FlipRGBA() error = %v", err)
	}

	tests := []struct {
		x, y    int
		r, g, b uint8
	}{
		{0, 0, 0, 0, 255},
		{1, 0, 255, 255, 255},
		{0, 1, 255, 0, 0},
		{1, 1, 0, 255, 0},
	}
	for _, tt := range tests {
		c := img.RGBAAt(tt.x, tt.y)
		if c.R != tt.r || c.G != tt.g || c.B != tt.b {
			t.Errorf("pixel (%d,%d) = %v, want %d,%d,%d", tt.x, tt.y, c, tt.r, tt.g, tt.b)
		}
	}
}

func TestFlipRGBAErrors(t *testing.T) {
	if _, err := FlipRGBA(pixels2x2, 3, 2); err == nil {
		t.Error("size mismatch should fail")
	}
	if _, err := FlipRGBA(nil, 0, 0); err == nil {
		t.Error("empty image should fail")
	}
}

func TestNewScreenshotFormat(t *testing.T) {
	tests := []struct {
		format  string
		want    string
		wantErr bool
	}{
		{"png", "png", false},
		{"BMP", "bmp", false},
		{"", "png", false},
		{"jpeg", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			sc, err := NewScreenshot(t.TempDir(), "shot", tt.format)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("error = %v, want ErrUnknownFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewScreenshot() error = %v", err)
			}
			if sc.format != tt.want {
				t.Errorf("format = %q, want %q", sc.format, tt.want)
			}
		})
	}
}

func TestCapturePNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc, err := NewScreenshot(dir, "curves", "png")
	if err != nil {
		t.Fatal(err)
	}
	sc.now = fixedClock

	path, err := sc.CaptureFromPixels(pixels2x2, 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels() error = %v", err)
	}
	if want := filepath.Join(dir, "curves_2024-03-05_14-07-09.png"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if r, g, b, _ := img.At(0, 1).RGBA(); r>>8 != 255 || g != 0 || b != 0 {
		t.Errorf("bottom-left pixel = %d,%d,%d, want red", r>>8, g>>8, b>>8)
	}
}

func TestCaptureBMP(t *testing.T) {
	sc, err := NewScreenshot(t.TempDir(), "curves", "bmp")
	if err != nil {
		t.Fatal(err)
	}
	sc.now = fixedClock

	path, err := sc.CaptureFromPixels(pixels2x2, 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels() error = %v", err)
	}
	if filepath.Ext(path) != ".bmp" {
		t.Errorf("path = %q, want .bmp", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("bmp.Decode() error = %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestGenerateFilenameAvoidsCollisions(t *testing.T) {
	dir := t.TempDir()
	sc, err := NewScreenshot(dir, "curves", "png")
	if err != nil {
		t.Fatal(err)
	}
	sc.now = fixedClock

	first, err := sc.CaptureFromPixels(pixels2x2, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	second, err := sc.CaptureFromPixels(pixels2x2, 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	if first == second {
		t.Fatalf("both captures wrote %q", first)
	}
	if want := filepath.Join(dir, "curves_2024-03-05_14-07-09_1.png"); second != want {
		t.Errorf("second = %q, want %q", second, want)
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if err := Encode(&bytes.Buffer{}, img, "gif"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Encode() error = %v, want ErrUnknownFormat", err)
	}
}

func TestCaptureEncodeFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	sc, err := NewScreenshot(dir, "curves", "png")
	if err != nil {
		t.Fatal(err)
	}
	sc.now = fixedClock

	// png rejects an empty image
	if _, err := sc.CaptureFromImage(image.NewRGBA(image.Rect(0, 0, 0, 0))); err == nil {
		t.Fatal("expected an encoding error")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d files after a failed capture, want none", len(entries))
	}

	// The name is free again for the next capture
	path, err := sc.CaptureFromPixels(pixels2x2, 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels() error = %v", err)
	}
	if want := filepath.Join(dir, "curves_2024-03-05_14-07-09.png"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}
