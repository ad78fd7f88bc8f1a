package scene

// Stage identifies a programmable pipeline stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Topology is the primitive assembly mode of a draw call.
type Topology int

const (
	Triangles Topology = iota
)

func (t Topology) String() string {
	if t == Triangles {
		return "triangles"
	}
	return "unknown"
}

// DepthFunc is the depth comparison used when depth testing is enabled.
type DepthFunc int

const (
	// DepthLessEqual lets coplanar fragments drawn later pass.
	DepthLessEqual DepthFunc = iota
)

// Device is the command surface of one GPU context.
// Handles are opaque; zero is never a valid handle.
// Location lookups return -1 when the name is not an active
// attribute or uniform of the program.
//
// A Device is not safe for concurrent use. All calls must be made on the
// thread that owns the context.
type Device interface {
	// Shader objects
	CreateShader(stage Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	// Program objects
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	AttribLocation(program uint32, name string) int32
	UniformLocation(program uint32, name string) int32
	UseProgram(program uint32)

	// Vertex array objects hold the attribute bindings of one renderer.
	CreateVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	// Buffers
	CreateVertexBuffer(data []float32) uint32
	CreateIndexBuffer(data []uint8) uint32
	DeleteBuffer(buffer uint32)

	// Per-frame state and commands
	Viewport(width, height int)
	ClearColor(r, g, b, a float32)
	ClearDepth(depth float64)
	EnableDepthTest(fn DepthFunc)
	Clear(color, depth bool)
	VertexAttribPointer(buffer, location uint32, components int32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(location uint32)
	UniformMatrix4(location int32, m *[16]float32)
	DrawIndexed(mode Topology, indexBuffer uint32, count int32)
}

// Canvas is the drawing surface supplied by the host.
// Size reports the current framebuffer size in pixels.
// Context returns the GPU context bound to the surface, creating it on
// first use.
type Canvas interface {
	Size() (width, height int)
	Context() (Device, error)
}
