// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"fmt"
	"io/fs"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Returns the program ID or an error if compilation/linking fails.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", log)
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, log)
	}

	return shader, nil
}

func infoLog(id uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var logLen int32
	getiv(id, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return "(no info log)"
	}
	log := make([]byte, logLen)
	getLog(id, logLen, nil, &log[0])
	return string(log[:logLen-1])
}

// GetUniform returns the uniform location for the given name.
// Returns -1 if the uniform is not found or inactive.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// Program is a linked program whose sources live in a file system, so it
// can be rebuilt at runtime.
type Program struct {
	fsys         fs.FS
	vertexPath   string
	fragmentPath string
	id           uint32
}

// Load reads both stages from fsys and builds the program.
func Load(fsys fs.FS, vertexPath, fragmentPath string) (*Program, error) {
	p := &Program{fsys: fsys, vertexPath: vertexPath, fragmentPath: fragmentPath}
	id, err := p.build()
	if err != nil {
		return nil, err
	}
	p.id = id
	return p, nil
}

// ID returns the current GL program name.
func (p *Program) ID() uint32 {
	return p.id
}

// Reload rebuilds the program from its sources. On failure the previous
// program stays current and the error is returned.
func (p *Program) Reload() error {
	id, err := p.build()
	if err != nil {
		return err
	}
	gl.DeleteProgram(p.id)
	p.id = id
	return nil
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

func (p *Program) build() (uint32, error) {
	vert, err := fs.ReadFile(p.fsys, p.vertexPath)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", p.vertexPath, err)
	}
	frag, err := fs.ReadFile(p.fsys, p.fragmentPath)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", p.fragmentPath, err)
	}

	id, err := CompileProgram(string(vert), string(frag))
	if err != nil {
		return 0, fmt.Errorf("%s + %s: %w", p.vertexPath, p.fragmentPath, err)
	}
	return id, nil
}
