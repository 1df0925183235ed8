// Package viewer implements the interactive solid viewer loop.
package viewer

import (
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/chewxy/math32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/solidview/internal/config"
	"github.com/Faultbox/solidview/internal/engine/camera"
	"github.com/Faultbox/solidview/internal/engine/debug"
	"github.com/Faultbox/solidview/internal/engine/input"
	"github.com/Faultbox/solidview/internal/engine/lighting"
	"github.com/Faultbox/solidview/internal/engine/renderer"
	"github.com/Faultbox/solidview/internal/engine/window"
	"github.com/Faultbox/solidview/internal/logger"
	"github.com/Faultbox/solidview/pkg/math"
)

// Viewer owns the window, the GPU scene and the camera.
type Viewer struct {
	config   *config.Config
	running  bool
	log      *zap.Logger
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	shots    *debug.Screenshot
	meshes   []*renderer.GPUMesh

	captureNext bool
}

// New creates the window and renderer and uploads the configured scene.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		config: cfg,
		log:    logger.Named("viewer"),
		input:  input.New(),
		camera: newCamera(cfg.Camera),
		shots:  debug.NewScreenshot(cfg.Render.ScreenshotDir, "solidview"),
	}

	v.log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	objects, err := BuildScene(cfg.Scene)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	// Create window (this also creates OpenGL context)
	v.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	fovY := cfg.Camera.FieldOfView * math32.Pi / 180

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:       width,
		Height:      height,
		FieldOfView: fovY,
		ClearColor:  config.Vec3(cfg.Render.ClearColor),
		Light:       light(cfg.Render),
		Shaders:     shaderFS(cfg.Render.ShaderDir),
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if cfg.Camera.Radius <= 0 {
		v.camera.FitRadius(sceneRadius(objects), fovY)
	}

	for _, o := range objects {
		g, err := renderer.Upload(o.Mesh)
		if err != nil {
			v.Close()
			return nil, fmt.Errorf("failed to upload %s: %w", o.Name, err)
		}
		v.meshes = append(v.meshes, g)
		v.log.Debug("mesh uploaded",
			zap.String("name", o.Name),
			zap.Int("vertices", o.Mesh.VertexCount()),
			zap.Bool("normals", o.Mesh.HasNormals),
		)
	}

	v.log.Info("viewer initialized", zap.Int("meshes", len(v.meshes)))
	return v, nil
}

func newCamera(cfg config.CameraConfig) *camera.OrbitCamera {
	c := camera.NewOrbitCamera()
	c.Radius = cfg.Radius
	c.MinRadius = cfg.MinRadius
	c.MovementPerSecond = cfg.MovementPerSecond
	c.MouseSensitivity = cfg.MouseSensitivity
	return c
}

func light(cfg config.RenderConfig) lighting.Directional {
	return lighting.NewDirectional(
		cfg.LightAzimuth,
		cfg.LightElevation,
		config.Vec3(cfg.Diffuse),
		config.Vec3(cfg.Ambient),
	)
}

// shaderFS selects the shader sources: a directory on disk when one is
// configured, the embedded defaults otherwise.
func shaderFS(dir string) fs.FS {
	if dir == "" {
		return nil
	}
	return os.DirFS(dir)
}

// Run starts the main loop and returns when the window is closed.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting render loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents(v.input.Events())
		v.camera.SetZoom(
			v.input.IsKeyDown(sdl.SCANCODE_W),
			v.input.IsKeyDown(sdl.SCANCODE_S),
		)

		// 2. Update camera
		v.camera.Update(float32(dt))

		// 3. Render
		v.render()

		if v.captureNext {
			v.captureNext = false
			v.saveScreenshot()
		}

		// 4. Present
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", now.Sub(fpsTimer)/time.Duration(frameCount)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleEvents(events []input.Event) {
	for _, event := range events {
		switch event.Type {
		case input.EventWindowResize:
			v.window.WaitWhileMinimized()
			v.renderer.Resize(v.window.DrawableSize())
		case input.EventMouseMove:
			v.camera.HandleMouseDelta(float32(event.DeltaX), float32(event.DeltaY))
		case input.EventKeyDown:
			v.handleKey(event.Key)
		}
	}
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false
	case sdl.SCANCODE_SPACE:
		active := v.camera.Toggle()
		v.window.SetRelativeMouse(active)
		v.log.Debug("camera control", zap.Bool("active", active))
	case sdl.SCANCODE_R:
		if err := v.renderer.ReloadShaders(); err != nil {
			v.log.Error("shader reload failed, keeping previous program", zap.Error(err))
			return
		}
		v.log.Info("shaders reloaded")
	case sdl.SCANCODE_F12:
		v.captureNext = true
	}
}

func (v *Viewer) saveScreenshot() {
	pixels, width, height := v.renderer.ReadPixels()
	path, err := v.shots.Save(pixels, width, height)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

func (v *Viewer) render() {
	v.renderer.Begin(v.camera.ViewMatrix())
	model := math.Identity()
	for _, m := range v.meshes {
		v.renderer.Draw(m, model)
	}
	v.renderer.End()
}

// Close releases GPU resources and the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	for _, m := range v.meshes {
		m.Delete()
	}
	v.meshes = nil

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
