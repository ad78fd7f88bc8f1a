package scene_test

import (
	"errors"
	"strings"

	"github.com/go-theft-auto/scene"
)

// fakeShader is a shader object tracked by fakeDevice.
type fakeShader struct {
	stage    scene.Stage
	source   string
	compiled bool
	log      string
	decls    shaderDecls
}

// shaderDecls are the interface declarations scanned from a source.
type shaderDecls struct {
	inputs   []string
	outputs  []string
	uniforms []string
}

// fakeProgram is a program object tracked by fakeDevice.
type fakeProgram struct {
	attached []uint32
	linked   bool
	log      string
	attribs  map[string]int32
	uniforms map[string]int32
}

type attribPointer struct {
	buffer     uint32
	components int32
	normalized bool
	stride     int32
	offset     uintptr
}

// vertexArray is the attribute state held by one vertex array object.
type vertexArray struct {
	pointers map[uint32]attribPointer
	enabled  map[uint32]bool
}

type drawCall struct {
	mode    scene.Topology
	buffer  uint32
	count   int32
	program uint32
	vao     uint32
}

// fakeDevice is a scene.Device test double. A source compiles when it
// declares main; a program links when every fragment input is written by
// the vertex stage. Attribute and uniform locations are assigned in
// declaration order. Attribute state lives in the bound vertex array;
// attribute calls with none bound are recorded in errs.
type fakeDevice struct {
	next      uint32
	emptyLogs bool

	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram
	buffers  map[uint32]int
	vaos     map[uint32]*vertexArray
	bound    uint32

	programsCreated int
	calls           []string

	viewport     [2]int
	clearColor   [4]float32
	clearDepth   float64
	depthEnabled bool
	depthFunc    scene.DepthFunc
	clearedColor bool
	clearedDepth bool
	current      uint32
	matrices     map[int32][16]float32
	draws        []drawCall
	errs         []string
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
		buffers:  make(map[uint32]int),
		vaos:     make(map[uint32]*vertexArray),
		matrices: make(map[int32][16]float32),
	}
}

func (d *fakeDevice) handle() uint32 {
	d.next++
	return d.next
}

func (d *fakeDevice) record(call string) { d.calls = append(d.calls, call) }

// live returns the number of shader, program and buffer handles not yet deleted.
func (d *fakeDevice) live() (shaders, programs, buffers int) {
	return len(d.shaders), len(d.programs), len(d.buffers)
}

// lastDraw returns the most recent draw and the vertex array it used.
func (d *fakeDevice) lastDraw() (drawCall, *vertexArray) {
	if len(d.draws) == 0 {
		return drawCall{}, nil
	}
	draw := d.draws[len(d.draws)-1]
	return draw, d.vaos[draw.vao]
}

func (d *fakeDevice) boundArray(call string) *vertexArray {
	va, ok := d.vaos[d.bound]
	if !ok {
		d.errs = append(d.errs, call+": no vertex array bound")
	}
	return va
}

func (d *fakeDevice) CreateShader(stage scene.Stage) uint32 {
	id := d.handle()
	d.shaders[id] = &fakeShader{stage: stage}
	return id
}

func (d *fakeDevice) ShaderSource(shader uint32, source string) {
	d.shaders[shader].source = source
}

func (d *fakeDevice) CompileShader(shader uint32) {
	s := d.shaders[shader]
	if !strings.Contains(s.source, "void main(") {
		s.log = "0:1(1): error: function `main' not defined"
		return
	}
	s.compiled = true
	s.decls = scanDecls(s.stage, s.source)
}

func (d *fakeDevice) ShaderCompiled(shader uint32) bool { return d.shaders[shader].compiled }

func (d *fakeDevice) ShaderInfoLog(shader uint32) string {
	if d.emptyLogs {
		return ""
	}
	return d.shaders[shader].log
}

func (d *fakeDevice) DeleteShader(shader uint32) { delete(d.shaders, shader) }

func (d *fakeDevice) CreateProgram() uint32 {
	d.programsCreated++
	id := d.handle()
	d.programs[id] = &fakeProgram{}
	return id
}

func (d *fakeDevice) AttachShader(program, shader uint32) {
	p := d.programs[program]
	p.attached = append(p.attached, shader)
}

func (d *fakeDevice) DetachShader(program, shader uint32) {
	p := d.programs[program]
	for i, s := range p.attached {
		if s == shader {
			p.attached = append(p.attached[:i], p.attached[i+1:]...)
			return
		}
	}
}

func (d *fakeDevice) LinkProgram(program uint32) {
	p := d.programs[program]
	var vs, fs *fakeShader
	for _, id := range p.attached {
		s := d.shaders[id]
		switch s.stage {
		case scene.StageVertex:
			vs = s
		case scene.StageFragment:
			fs = s
		}
	}
	if vs == nil || fs == nil {
		p.log = "error: program needs a vertex and a fragment shader"
		return
	}
	for _, in := range fs.decls.inputs {
		if !contains(vs.decls.outputs, in) {
			p.log = "error: fragment shader input `" + in + "' not written by vertex shader"
			return
		}
	}

	p.attribs = make(map[string]int32)
	for i, name := range vs.decls.inputs {
		p.attribs[name] = int32(i)
	}
	p.uniforms = make(map[string]int32)
	for _, s := range []*fakeShader{vs, fs} {
		for _, name := range s.decls.uniforms {
			if _, ok := p.uniforms[name]; !ok {
				p.uniforms[name] = int32(len(p.uniforms))
			}
		}
	}
	p.linked = true
}

func (d *fakeDevice) ProgramLinked(program uint32) bool { return d.programs[program].linked }

func (d *fakeDevice) ProgramInfoLog(program uint32) string {
	if d.emptyLogs {
		return ""
	}
	return d.programs[program].log
}

func (d *fakeDevice) DeleteProgram(program uint32) { delete(d.programs, program) }

func (d *fakeDevice) AttribLocation(program uint32, name string) int32 {
	p, ok := d.programs[program]
	if !ok || !p.linked {
		return -1
	}
	if loc, ok := p.attribs[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	p, ok := d.programs[program]
	if !ok || !p.linked {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.record("UseProgram")
	d.current = program
}

func (d *fakeDevice) CreateVertexArray() uint32 {
	id := d.handle()
	d.vaos[id] = &vertexArray{
		pointers: make(map[uint32]attribPointer),
		enabled:  make(map[uint32]bool),
	}
	return id
}

func (d *fakeDevice) BindVertexArray(vao uint32) {
	d.record("BindVertexArray")
	d.bound = vao
}

func (d *fakeDevice) DeleteVertexArray(vao uint32) {
	delete(d.vaos, vao)
	if d.bound == vao {
		d.bound = 0
	}
}

func (d *fakeDevice) CreateVertexBuffer(data []float32) uint32 {
	id := d.handle()
	d.buffers[id] = len(data)
	return id
}

func (d *fakeDevice) CreateIndexBuffer(data []uint8) uint32 {
	id := d.handle()
	d.buffers[id] = len(data)
	return id
}

func (d *fakeDevice) DeleteBuffer(buffer uint32) { delete(d.buffers, buffer) }

func (d *fakeDevice) Viewport(width, height int) {
	d.record("Viewport")
	d.viewport = [2]int{width, height}
}

func (d *fakeDevice) ClearColor(r, g, b, a float32) {
	d.record("ClearColor")
	d.clearColor = [4]float32{r, g, b, a}
}

func (d *fakeDevice) ClearDepth(depth float64) {
	d.record("ClearDepth")
	d.clearDepth = depth
}

func (d *fakeDevice) EnableDepthTest(fn scene.DepthFunc) {
	d.record("EnableDepthTest")
	d.depthEnabled = true
	d.depthFunc = fn
}

func (d *fakeDevice) Clear(color, depth bool) {
	d.record("Clear")
	d.clearedColor = color
	d.clearedDepth = depth
}

func (d *fakeDevice) VertexAttribPointer(buffer, location uint32, components int32, normalized bool, stride int32, offset uintptr) {
	d.record("VertexAttribPointer")
	if va := d.boundArray("VertexAttribPointer"); va != nil {
		va.pointers[location] = attribPointer{buffer, components, normalized, stride, offset}
	}
}

func (d *fakeDevice) EnableVertexAttribArray(location uint32) {
	d.record("EnableVertexAttribArray")
	if va := d.boundArray("EnableVertexAttribArray"); va != nil {
		va.enabled[location] = true
	}
}

func (d *fakeDevice) UniformMatrix4(location int32, m *[16]float32) {
	d.record("UniformMatrix4")
	d.matrices[location] = *m
}

func (d *fakeDevice) DrawIndexed(mode scene.Topology, indexBuffer uint32, count int32) {
	d.record("DrawIndexed")
	d.boundArray("DrawIndexed")
	d.draws = append(d.draws, drawCall{mode: mode, buffer: indexBuffer, count: count, program: d.current, vao: d.bound})
}

// scanDecls collects the in/out/uniform declarations of a GLSL source.
func scanDecls(stage scene.Stage, source string) shaderDecls {
	var decls shaderDecls
	for _, line := range strings.Split(source, "\n") {
		fields := strings.Fields(strings.TrimSuffix(strings.TrimSpace(line), ";"))
		if len(fields) != 3 {
			continue
		}
		name := fields[2]
		switch fields[0] {
		case "in", "attribute":
			decls.inputs = append(decls.inputs, name)
		case "varying":
			if stage == scene.StageVertex {
				decls.outputs = append(decls.outputs, name)
			} else {
				decls.inputs = append(decls.inputs, name)
			}
		case "out":
			if stage == scene.StageVertex {
				decls.outputs = append(decls.outputs, name)
			}
		case "uniform":
			decls.uniforms = append(decls.uniforms, name)
		}
	}
	return decls
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// fakeCanvas is a scene.Canvas backed by a fakeDevice.
type fakeCanvas struct {
	width, height int
	dev           *fakeDevice
	err           error
}

func newFakeCanvas(width, height int) *fakeCanvas {
	return &fakeCanvas{width: width, height: height, dev: newFakeDevice()}
}

func (c *fakeCanvas) Size() (int, int) { return c.width, c.height }

func (c *fakeCanvas) Context() (scene.Device, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.dev, nil
}

var errNoContext = errors.New("no OpenGL context available")

// Shader sources without a color attribute.
const (
	plainVertex = `#version 410 core
in vec4 aVertexPosition;
uniform mat4 uModelViewMatrix;
uniform mat4 uProjectionMatrix;
void main() {
    gl_Position = uProjectionMatrix * uModelViewMatrix * aVertexPosition;
}
`
	plainFragment = `#version 410 core
out vec4 FragColor;
void main() {
    FragColor = vec4(1.0, 1.0, 1.0, 1.0);
}
`
	// tintFragment reads a varying plainVertex never writes.
	tintFragment = `#version 410 core
in vec4 vTint;
out vec4 FragColor;
void main() {
    FragColor = vTint;
}
`
	brokenSource = `#version 410 core
void mian() {}
`
)
