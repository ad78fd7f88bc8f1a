package scene

import (
	"fmt"
	"log/slog"
)

// State is the lifecycle position of a Renderer.
type State int

const (
	StateUninitialized State = iota
	StateContextAcquired
	StateProgramReady
	StateRendering
	StateReleased
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateContextAcquired:
		return "context-acquired"
	case StateProgramReady:
		return "program-ready"
	case StateRendering:
		return "rendering"
	case StateReleased:
		return "released"
	default:
		return "unknown"
	}
}

// bindings are the locations resolved once at setup.
type bindings struct {
	position   AttribBinding
	color      AttribBinding
	hasColor   bool
	projection UniformBinding
	modelView  UniformBinding
}

// meshBuffers are the device buffers holding the mesh for the session.
type meshBuffers struct {
	positions  uint32
	colors     uint32
	indices    uint32
	indexCount int32
}

// Renderer draws one mesh onto one canvas. A Renderer only exists once
// its program is linked and every required location is resolved, so
// Render cannot run against a missing program.
type Renderer struct {
	canvas  Canvas
	dev     Device
	program *Program
	loc     bindings
	vao     uint32
	buffers meshBuffers
	cfg     settings
	log     *slog.Logger

	state     State
	width     int
	height    int
	transform Transform
	frames    uint64
}

// Open acquires the canvas context, links the shader program, resolves the
// attribute and uniform locations and uploads the mesh. Any failure is
// terminal for the session: everything acquired so far is released.
// Pipeline failures are returned unchanged as a *CompileError, *LinkError
// or *UnresolvedLocationError; only canvas errors are wrapped.
func Open(canvas Canvas, opts ...Option) (*Renderer, error) {
	cfg := applyOptions(opts)
	r := &Renderer{
		canvas: canvas,
		cfg:    cfg,
		log:    cfg.logger,
		state:  StateUninitialized,
	}

	if err := ValidateMesh(cfg.mesh); err != nil {
		return nil, err
	}

	dev, err := canvas.Context()
	if err != nil {
		return nil, fmt.Errorf("acquire context: %w", err)
	}
	r.dev = dev
	r.setState(StateContextAcquired)

	r.program, err = Link(dev, cfg.vertexSource, cfg.fragmentSource)
	if err != nil {
		r.log.Warn("shader program setup failed", "error", err)
		return nil, err
	}

	if err := r.resolve(); err != nil {
		r.log.Warn("location lookup failed", "error", err)
		r.program.Delete()
		return nil, err
	}

	r.upload()
	r.width, r.height = canvas.Size()
	dev.Viewport(r.width, r.height)
	r.transform = cfg.camera.Transform(r.width, r.height)
	r.setState(StateProgramReady)

	return r, nil
}

func (r *Renderer) resolve() error {
	var err error
	if r.loc.position, err = r.program.Attrib(r.cfg.positionAttrib); err != nil {
		return err
	}
	if len(r.cfg.mesh.Colors()) > 0 {
		r.loc.color, r.loc.hasColor = r.program.OptionalAttrib(r.cfg.colorAttrib)
		if !r.loc.hasColor {
			r.log.Debug("color attribute not active, drawing without colors", "attribute", r.cfg.colorAttrib)
		}
	}
	if r.loc.projection, err = r.program.Uniform(r.cfg.projectionUniform); err != nil {
		return err
	}
	if r.loc.modelView, err = r.program.Uniform(r.cfg.modelViewUniform); err != nil {
		return err
	}
	return nil
}

// upload creates the renderer's vertex array and fills the mesh buffers.
// The attribute bindings recorded in Render live in that vertex array, so
// they never outlive the buffers they point at.
func (r *Renderer) upload() {
	m := r.cfg.mesh
	r.vao = r.dev.CreateVertexArray()
	r.dev.BindVertexArray(r.vao)
	r.buffers.positions = r.dev.CreateVertexBuffer(m.Positions())
	if r.loc.hasColor {
		r.buffers.colors = r.dev.CreateVertexBuffer(m.Colors())
	}
	indices := m.Indices()
	r.buffers.indices = r.dev.CreateIndexBuffer(indices)
	r.buffers.indexCount = int32(len(indices))
}

func (r *Renderer) setState(s State) {
	r.log.Debug("renderer state", "from", r.state, "to", s)
	r.state = s
}

// State returns the current lifecycle state.
func (r *Renderer) State() State { return r.state }

// Program returns the linked program, or nil after Delete.
func (r *Renderer) Program() *Program {
	if r.state == StateReleased {
		return nil
	}
	return r.program
}

// Frames returns the number of frames rendered so far.
func (r *Renderer) Frames() uint64 { return r.frames }

// Transform returns the matrices used by the most recent frame, or the
// ones computed at setup/resize if no frame has run since.
func (r *Renderer) Transform() Transform { return r.transform }

// Resize updates the viewport and recomputes the projection. The program
// and bindings are left untouched.
func (r *Renderer) Resize(width, height int) {
	if r.state == StateReleased {
		return
	}
	r.width, r.height = width, height
	r.transform.Projection = r.cfg.camera.Projection(width, height)
	r.dev.Viewport(width, height)
}

// Render draws one complete frame: clear, recompute transforms, bind the
// mesh buffers, activate the program, upload the matrices and issue the
// indexed draw.
func (r *Renderer) Render() error {
	if r.state == StateReleased {
		return ErrReleased
	}
	dev := r.dev

	if w, h := r.canvas.Size(); w != r.width || h != r.height {
		r.Resize(w, h)
	}

	cc := r.cfg.clearColor
	dev.ClearColor(cc[0], cc[1], cc[2], cc[3])
	dev.ClearDepth(1.0)
	dev.EnableDepthTest(DepthLessEqual)
	dev.Clear(true, true)

	r.transform = r.cfg.camera.Transform(r.width, r.height)

	dev.BindVertexArray(r.vao)
	dev.VertexAttribPointer(r.buffers.positions, r.loc.position.Location, PositionComponents, false, 0, 0)
	dev.EnableVertexAttribArray(r.loc.position.Location)
	if r.loc.hasColor {
		dev.VertexAttribPointer(r.buffers.colors, r.loc.color.Location, ColorComponents, false, 0, 0)
		dev.EnableVertexAttribArray(r.loc.color.Location)
	}

	r.program.Use()

	proj := [16]float32(r.transform.Projection)
	mv := [16]float32(r.transform.ModelView)
	dev.UniformMatrix4(r.loc.projection.Location, &proj)
	dev.UniformMatrix4(r.loc.modelView.Location, &mv)

	dev.DrawIndexed(Triangles, r.buffers.indices, r.buffers.indexCount)

	if r.state != StateRendering {
		r.setState(StateRendering)
	}
	r.frames++
	return nil
}

// Delete releases the program, vertex array and mesh buffers. Safe to call
// more than once.
func (r *Renderer) Delete() {
	if r.state == StateReleased {
		return
	}
	for _, buf := range []uint32{r.buffers.indices, r.buffers.colors, r.buffers.positions} {
		if buf != 0 {
			r.dev.DeleteBuffer(buf)
		}
	}
	r.buffers = meshBuffers{}
	r.dev.DeleteVertexArray(r.vao)
	r.vao = 0
	r.program.Delete()
	r.setState(StateReleased)
}
