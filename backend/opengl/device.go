// Package opengl provides an OpenGL 4.1 core backend for the scene package.
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/scene"
)

// Device implements scene.Device on the current OpenGL context.
// gl.Init must have succeeded on this thread before NewDevice is called.
// Attribute state is not kept here: each renderer owns a vertex array.
type Device struct{}

var _ scene.Device = (*Device)(nil)

func NewDevice() *Device { return &Device{} }

func (d *Device) CreateShader(stage scene.Stage) uint32 {
	switch stage {
	case scene.StageFragment:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return gl.CreateShader(gl.VERTEX_SHADER)
	}
}

func (d *Device) ShaderSource(shader uint32, source string) {
	csource, free := gl.Strs(cstr(source))
	gl.ShaderSource(shader, 1, csource, nil)
	free()
}

func (d *Device) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (d *Device) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
	return gl.GoStr(&log[0])
}

func (d *Device) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (d *Device) CreateProgram() uint32 { return gl.CreateProgram() }

func (d *Device) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (d *Device) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }

func (d *Device) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (d *Device) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(program, logLength, nil, &log[0])
	return gl.GoStr(&log[0])
}

func (d *Device) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (d *Device) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(cstr(name)))
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(cstr(name)))
}

func (d *Device) UseProgram(program uint32) { gl.UseProgram(program) }

func (d *Device) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (d *Device) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (d *Device) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (d *Device) CreateVertexBuffer(data []float32) uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return buf
}

func (d *Device) CreateIndexBuffer(data []uint8) uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf)
	if len(data) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data), gl.Ptr(data), gl.STATIC_DRAW)
	}
	return buf
}

func (d *Device) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *Device) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (d *Device) ClearDepth(depth float64) { gl.ClearDepth(depth) }

func (d *Device) EnableDepthTest(fn scene.DepthFunc) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
}

func (d *Device) Clear(color, depth bool) {
	var mask uint32
	if color {
		mask |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
}

func (d *Device) VertexAttribPointer(buffer, location uint32, components int32, normalized bool, stride int32, offset uintptr) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.VertexAttribPointerWithOffset(location, components, gl.FLOAT, normalized, stride, offset)
}

func (d *Device) EnableVertexAttribArray(location uint32) { gl.EnableVertexAttribArray(location) }

// UniformMatrix4 uploads a column-major matrix without transposing.
func (d *Device) UniformMatrix4(location int32, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

// DrawIndexed binds indexBuffer to the current vertex array and draws
// count uint8 indices. Triangles is the only topology.
func (d *Device) DrawIndexed(mode scene.Topology, indexBuffer uint32, count int32) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, indexBuffer)
	gl.DrawElementsWithOffset(gl.TRIANGLES, count, gl.UNSIGNED_BYTE, 0)
}

// cstr appends the NUL terminator go-gl expects, once.
func cstr(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}
