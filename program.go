package scene

import "strings"

// Program is a linked shader program. A Program value only exists for a
// successful link; there is no partially linked state.
type Program struct {
	dev Device
	id  uint32
}

// AttribBinding is a vertex attribute resolved against a program.
type AttribBinding struct {
	Name     string
	Location uint32
}

// UniformBinding is a uniform resolved against a program.
type UniformBinding struct {
	Name     string
	Location int32
}

// Link compiles the vertex and fragment sources and links them into a new
// program. Compile errors are returned unchanged. After a successful link
// the shader units are detached and deleted; the program keeps its own
// compiled representation.
func Link(dev Device, vertexSource, fragmentSource string) (*Program, error) {
	vs, err := Compile(dev, StageVertex, vertexSource)
	if err != nil {
		return nil, err
	}
	defer vs.Delete(dev)

	fs, err := Compile(dev, StageFragment, fragmentSource)
	if err != nil {
		return nil, err
	}
	defer fs.Delete(dev)

	id := dev.CreateProgram()
	dev.AttachShader(id, vs.id)
	dev.AttachShader(id, fs.id)
	dev.LinkProgram(id)

	if !dev.ProgramLinked(id) {
		log := strings.TrimSpace(dev.ProgramInfoLog(id))
		dev.DeleteProgram(id)
		if log == "" {
			log = "driver reported no diagnostic"
		}
		sceneLogger.Debug("program link failed", "log", log)
		return nil, &LinkError{Log: log}
	}

	dev.DetachShader(id, vs.id)
	dev.DetachShader(id, fs.id)

	sceneLogger.Debug("program linked", "program", id)
	return &Program{dev: dev, id: id}, nil
}

// ID returns the device handle, or 0 once the program has been deleted.
func (p *Program) ID() uint32 { return p.id }

// Attrib resolves a required vertex attribute.
func (p *Program) Attrib(name string) (AttribBinding, error) {
	b, ok := p.OptionalAttrib(name)
	if !ok {
		return AttribBinding{}, &UnresolvedLocationError{Kind: KindAttribute, Name: name}
	}
	return b, nil
}

// OptionalAttrib resolves a vertex attribute the shaders may leave out.
func (p *Program) OptionalAttrib(name string) (AttribBinding, bool) {
	if p.id == 0 || name == "" {
		return AttribBinding{}, false
	}
	loc := p.dev.AttribLocation(p.id, name)
	if loc < 0 {
		return AttribBinding{}, false
	}
	return AttribBinding{Name: name, Location: uint32(loc)}, true
}

// Uniform resolves a required uniform.
func (p *Program) Uniform(name string) (UniformBinding, error) {
	if p.id == 0 {
		return UniformBinding{}, &UnresolvedLocationError{Kind: KindUniform, Name: name}
	}
	loc := p.dev.UniformLocation(p.id, name)
	if loc < 0 {
		return UniformBinding{}, &UnresolvedLocationError{Kind: KindUniform, Name: name}
	}
	return UniformBinding{Name: name, Location: loc}, nil
}

// Use makes the program current for subsequent draw calls.
func (p *Program) Use() {
	p.dev.UseProgram(p.id)
}

// Delete releases the program object. Safe to call more than once.
func (p *Program) Delete() {
	if p.id == 0 {
		return
	}
	p.dev.DeleteProgram(p.id)
	p.id = 0
}
