// Package viewer runs the interactive curve viewer.
package viewer

import (
	"errors"
	"fmt"
	"time"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Loufouh/PE-Parametric-Curves/internal/config"
	"github.com/Loufouh/PE-Parametric-Curves/internal/engine/camera"
	"github.com/Loufouh/PE-Parametric-Curves/internal/engine/controls"
	"github.com/Loufouh/PE-Parametric-Curves/internal/engine/debug"
	"github.com/Loufouh/PE-Parametric-Curves/internal/engine/input"
	"github.com/Loufouh/PE-Parametric-Curves/internal/engine/renderer"
	"github.com/Loufouh/PE-Parametric-Curves/internal/engine/window"
	"github.com/Loufouh/PE-Parametric-Curves/internal/logger"
	"github.com/Loufouh/PE-Parametric-Curves/internal/session"
)

// Viewer owns the window and draws the current session every frame.
type Viewer struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Lines
	input    *input.Input
	camera   *camera.Trackball
	mouse    *controls.Mouse
	keys     controls.Keymap
	shots    *debug.Screenshot
	session  *session.Session

	// Dialog results, consumed on the main thread
	opened     chan string
	dialogOpen bool

	// Set by the screenshot key, captured after the next Draw
	pendingShot bool

	log *zap.Logger
}

// New creates the window and uploads the startup scene.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:    cfg,
		keys:   controls.DefaultKeymap(),
		input:  input.New(),
		opened: make(chan string, 1),
		log:    logger.Named("viewer"),
	}

	var err error
	v.session, err = session.New(cfg)
	if err != nil {
		return nil, err
	}

	v.shots, err = debug.NewScreenshot(cfg.Screenshot.Dir, "curves", cfg.Screenshot.Format)
	if err != nil {
		return nil, err
	}

	v.window, err = window.New(window.Config{
		Title:      v.session.Title(cfg.Window.Title),
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer after the window, the OpenGL context must exist
	fbw, fbh := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{Width: fbw, Height: fbh})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	w, h := v.window.Size()
	v.camera = camera.NewTrackball(w, h)
	v.mouse = controls.NewMouse(v.camera, w, h)

	if err := v.rebuild(true); err != nil {
		v.Close()
		return nil, err
	}

	v.log.Info("viewer initialized", zap.Stringer("mode", v.session.Mode))
	return v, nil
}

// Run loops until the window is closed or a quit key is pressed.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}
		for _, ev := range v.input.Events() {
			v.handle(ev)
		}

		select {
		case path := <-v.opened:
			v.dialogOpen = false
			if path != "" {
				v.openFile(path)
			}
		default:
		}

		v.renderer.Draw(v.camera.View(), v.camera.Projection())
		if v.pendingShot {
			v.pendingShot = false
			v.screenshot()
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if v.cfg.View.ShowFPS {
				v.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close frees the renderer and the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) handle(ev input.Event) {
	switch ev.Type {
	case input.EventWindowResize:
		v.resize()
	case input.EventKeyDown:
		v.action(v.keys.Lookup(ev.Key))
	case input.EventMouseDown:
		v.mouse.Press(ev.Button, ev.MouseX, ev.MouseY)
	case input.EventMouseUp:
		v.mouse.Release(ev.Button, ev.MouseX, ev.MouseY)
	case input.EventMouseMove:
		v.mouse.Motion(ev.MouseX, ev.MouseY)
	case input.EventMouseWheel:
		v.mouse.Wheel(ev.Wheel)
	}
}

func (v *Viewer) action(a controls.Action) {
	if a == controls.ActionNone {
		return
	}
	v.log.Debug("action", zap.Stringer("action", a))

	switch a {
	case controls.ActionQuit:
		v.running = false
	case controls.ActionToggleFullscreen:
		if err := v.window.ToggleFullscreen(); err != nil {
			v.log.Warn("fullscreen toggle failed", zap.Error(err))
		}
	case controls.ActionResetCamera:
		v.camera.Reset()
	case controls.ActionScreenshot:
		v.pendingShot = true
	case controls.ActionOpenFile:
		v.openDialog()
	default:
		prev := v.session.Mode
		if v.session.Apply(a) {
			if err := v.rebuild(v.session.Mode != prev); err != nil {
				v.log.Error("rebuilding scene", zap.Error(err))
			}
		}
	}
}

// rebuild uploads the session scene. fit recenters the camera on it.
func (v *Viewer) rebuild(fit bool) error {
	s, err := v.session.Scene()
	if err != nil {
		return fmt.Errorf("building %v scene: %w", v.session.Mode, err)
	}
	v.renderer.Upload(s)

	if fit {
		if min, max, ok := s.Bounds(); ok {
			v.camera.FitToBounds(min, max)
		}
	}
	v.window.SetTitle(v.session.Title(v.cfg.Window.Title))
	return nil
}

func (v *Viewer) resize() {
	w, h := v.window.Size()
	v.camera.Resize(w, h)
	v.mouse.Resize(w, h)

	fbw, fbh := v.window.DrawableSize()
	v.renderer.Resize(fbw, fbh)
}

// screenshot saves the back buffer. It must run between Draw and SwapBuffers,
// the back buffer is undefined after a swap.
func (v *Viewer) screenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// openDialog shows the file picker off the main thread. The chosen path is
// picked up by Run, since window operations must stay on the main thread.
func (v *Viewer) openDialog() {
	if v.dialogOpen {
		return
	}
	v.dialogOpen = true

	go func() {
		filename, err := dialog.File().
			Filter("Curve files", "yaml", "yml").
			Filter("All Files", "*").
			Title("Open control points").
			Load()
		if err != nil && !errors.Is(err, dialog.ErrCancelled) {
			v.log.Warn("file dialog error", zap.Error(err))
		}
		v.opened <- filename
	}()
}

func (v *Viewer) openFile(path string) {
	if err := v.session.LoadFile(path); err != nil {
		v.log.Error("opening curve file", zap.String("path", path), zap.Error(err))
		return
	}
	v.log.Info("curve file loaded", zap.String("path", path), zap.Int("points", len(v.session.ControlPoints())))
	if err := v.rebuild(true); err != nil {
		v.log.Error("rebuilding scene", zap.Error(err))
	}
}
