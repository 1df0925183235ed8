// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"io/fs"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/solidview/internal/engine/lighting"
	"github.com/Faultbox/solidview/internal/engine/renderer/shaders"
	"github.com/Faultbox/solidview/internal/engine/shader"
	"github.com/Faultbox/solidview/internal/logger"
	"github.com/Faultbox/solidview/pkg/math"
)

const (
	nearPlane = 0.1
	farPlane  = 100.0
)

// Config holds renderer configuration.
type Config struct {
	Width       int
	Height      int
	FieldOfView float32 // vertical, radians
	ClearColor  math.Vec3
	Light       lighting.Directional

	// Shaders holds default.vert and default.frag. Nil selects the
	// embedded sources.
	Shaders fs.FS
}

// uniforms caches the locations used every frame.
type uniforms struct {
	projCameraWorld int32
	normalMatrix    int32
	lightDir        int32
	lightDiffuse    int32
	sceneAmbient    int32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config     Config
	log        *zap.Logger
	program    *shader.Program
	uniforms   uniforms
	projection math.Mat4
	view       math.Mat4
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
		view:   math.Identity(),
	}
	if r.config.Shaders == nil {
		r.config.Shaders = shaders.FS
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("vendor", gl.GoStr(gl.GetString(gl.VENDOR))),
	)

	gl.Enable(gl.FRAMEBUFFER_SRGB)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	c := cfg.ClearColor
	gl.ClearColor(c.X, c.Y, c.Z, 1.0)

	program, err := shader.Load(r.config.Shaders, shaders.DefaultVertex, shaders.DefaultFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program = program
	r.lookupUniforms()

	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.program != nil {
		r.program.Delete()
		r.program = nil
	}
}

// ReloadShaders rebuilds the program from its sources. On failure the
// previous program stays in use.
func (r *Renderer) ReloadShaders() error {
	if err := r.program.Reload(); err != nil {
		return fmt.Errorf("reload shaders: %w", err)
	}
	r.lookupUniforms()
	r.log.Debug("shaders reloaded", zap.Uint32("program", r.program.ID()))
	return nil
}

func (r *Renderer) lookupUniforms() {
	id := r.program.ID()
	r.uniforms = uniforms{
		projCameraWorld: shader.GetUniform(id, "uProjCameraWorld"),
		normalMatrix:    shader.GetUniform(id, "uNormalMatrix"),
		lightDir:        shader.GetUniform(id, "uLightDir"),
		lightDiffuse:    shader.GetUniform(id, "uLightDiffuse"),
		sceneAmbient:    shader.GetUniform(id, "uSceneAmbient"),
	}
}

// Resize handles window resize. width and height are drawable pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.projection = projection(r.config.FieldOfView, width, height)
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// projection builds the perspective matrix, guarding against a zero
// height from a minimized window.
func projection(fovY float32, width, height int) math.Mat4 {
	if height <= 0 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	return math.Perspective(fovY, aspect, nearPlane, farPlane)
}

// SetLight replaces the directional light.
func (r *Renderer) SetLight(l lighting.Directional) {
	r.config.Light = l
}

// Begin starts a new frame seen through view.
func (r *Renderer) Begin(view math.Mat4) {
	r.view = view
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program.ID())
	l := r.config.Light
	gl.Uniform3f(r.uniforms.lightDir, l.Direction.X, l.Direction.Y, l.Direction.Z)
	gl.Uniform3f(r.uniforms.lightDiffuse, l.Diffuse.X, l.Diffuse.Y, l.Diffuse.Z)
	gl.Uniform3f(r.uniforms.sceneAmbient, l.Ambient.X, l.Ambient.Y, l.Ambient.Z)
}

// Draw renders m with the given model matrix.
func (r *Renderer) Draw(m *GPUMesh, model math.Mat4) {
	pcw, normal := frameMatrices(r.projection, r.view, model)
	gl.UniformMatrix4fv(r.uniforms.projCameraWorld, 1, false, pcw.Ptr())
	gl.UniformMatrix3fv(r.uniforms.normalMatrix, 1, false, &normal[0])
	m.Draw()
}

// frameMatrices returns projection*view*model and the 3x3 normal matrix of
// model. Normals are lit in world space, so the light direction needs no
// view transform.
func frameMatrices(projection, view, model math.Mat4) (math.Mat4, [9]float32) {
	pcw := projection.Mul(view).Mul(model)
	return pcw, model.NormalMatrix().Mat3x3()
}

// ReadPixels returns the back buffer as RGBA rows, bottom row first.
// Call after drawing and before the buffer swap.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.UseProgram(0)
}
