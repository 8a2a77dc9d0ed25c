// Package renderer draws scene polylines with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Loufouh/PE-Parametric-Curves/internal/engine/renderer/shaders"
	"github.com/Loufouh/PE-Parametric-Curves/internal/engine/shader"
	"github.com/Loufouh/PE-Parametric-Curves/internal/logger"
	"github.com/Loufouh/PE-Parametric-Curves/internal/scene"
	"github.com/Loufouh/PE-Parametric-Curves/pkg/math"
)

// pointScale converts a polyline width into a point size in pixels.
const pointScale = 3

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// batch is one uploaded polyline.
type batch struct {
	vao, vbo uint32
	count    int32
	mode     uint32
	color    [3]float32
	width    float32
}

// Lines uploads a scene into per-polyline buffers and draws them with a
// flat-color shader.
type Lines struct {
	config     Config
	program    *shader.Program
	batches    []batch
	background [3]float32

	// Line widths the driver accepts. Core contexts often only allow 1.
	minWidth, maxWidth float32

	log *zap.Logger
}

// New creates the renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Lines, error) {
	r := &Lines{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.MULTISAMPLE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	var widths [2]float32
	gl.GetFloatv(gl.ALIASED_LINE_WIDTH_RANGE, &widths[0])
	r.minWidth, r.maxWidth = widths[0], widths[1]
	if r.maxWidth < 1 {
		r.minWidth, r.maxWidth = 1, 1
	}
	r.log.Debug("line width range", zap.Float32("min", r.minWidth), zap.Float32("max", r.maxWidth))

	var err error
	r.program, err = shader.New(shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create line shader: %w", err)
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Upload replaces the drawn geometry with s.
func (r *Lines) Upload(s *scene.Scene) {
	r.release()
	r.background = s.Background.Array()

	for _, pl := range s.Lines {
		vertices := pl.Vertices()
		if len(vertices) == 0 {
			continue
		}

		b := batch{
			count: int32(len(pl.Points)),
			mode:  primitive(pl.Kind),
			color: pl.Color.Array(),
			width: pl.Width,
		}

		gl.GenVertexArrays(1, &b.vao)
		gl.BindVertexArray(b.vao)

		gl.GenBuffers(1, &b.vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

		gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))
		gl.EnableVertexAttribArray(0)

		r.batches = append(r.batches, b)
	}
	gl.BindVertexArray(0)

	r.log.Debug("scene uploaded",
		zap.String("scene", s.Name),
		zap.Int("batches", len(r.batches)),
		zap.Int("vertices", s.VertexCount()),
	)
}

// Draw clears the frame and draws every uploaded polyline.
func (r *Lines) Draw(view, projection math.Mat4) {
	bg := r.background
	gl.ClearColor(bg[0], bg[1], bg[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Use()
	gl.UniformMatrix4fv(r.program.Uniform("uView"), 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.program.Uniform("uProjection"), 1, false, projection.Ptr())
	colorLoc := r.program.Uniform("uColor")
	pointLoc := r.program.Uniform("uPointSize")

	for _, b := range r.batches {
		gl.Uniform3f(colorLoc, b.color[0], b.color[1], b.color[2])
		gl.Uniform1f(pointLoc, b.width*pointScale)
		gl.LineWidth(r.clampWidth(b.width))

		gl.BindVertexArray(b.vao)
		gl.DrawArrays(b.mode, 0, b.count)
	}
	gl.BindVertexArray(0)
}

// Resize updates the viewport to the framebuffer size in pixels.
func (r *Lines) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// ReadPixels returns the back buffer as bottom-up RGBA rows. Call it after
// Draw and before the buffers are swapped.
func (r *Lines) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// Close frees GPU resources.
func (r *Lines) Close() {
	r.log.Info("closing renderer")
	r.release()
	if r.program != nil {
		r.program.Delete()
	}
}

func (r *Lines) release() {
	for i := range r.batches {
		gl.DeleteBuffers(1, &r.batches[i].vbo)
		gl.DeleteVertexArrays(1, &r.batches[i].vao)
	}
	r.batches = r.batches[:0]
}

func (r *Lines) clampWidth(w float32) float32 {
	if w < r.minWidth {
		return r.minWidth
	}
	if w > r.maxWidth {
		return r.maxWidth
	}
	return w
}

func primitive(k scene.Kind) uint32 {
	switch k {
	case scene.Lines:
		return gl.LINES
	case scene.Points:
		return gl.POINTS
	default:
		return gl.LINE_STRIP
	}
}
