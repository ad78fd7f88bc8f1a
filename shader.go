package scene

import "strings"

// Source is shader source text for one stage.
type Source struct {
	Stage Stage
	Text  string
}

// Shader is a compiled shader unit. It is an intermediate object: once
// linked into a Program it is detached and deleted.
type Shader struct {
	stage Stage
	id    uint32
}

// Stage returns the pipeline stage the shader was compiled for.
func (s *Shader) Stage() Stage { return s.stage }

// ID returns the device handle.
func (s *Shader) ID() uint32 { return s.id }

// Delete releases the shader object. Safe to call more than once.
func (s *Shader) Delete(dev Device) {
	if s.id == 0 {
		return
	}
	dev.DeleteShader(s.id)
	s.id = 0
}

// Compile creates a shader of the given stage, uploads the source and
// compiles it. On failure the shader object is deleted before returning
// a *CompileError carrying the driver log.
func Compile(dev Device, stage Stage, source string) (*Shader, error) {
	id := dev.CreateShader(stage)
	dev.ShaderSource(id, source)
	dev.CompileShader(id)

	if !dev.ShaderCompiled(id) {
		log := strings.TrimSpace(dev.ShaderInfoLog(id))
		dev.DeleteShader(id)
		if log == "" {
			log = "driver reported no diagnostic"
		}
		sceneLogger.Debug("shader compile failed", "stage", stage, "log", log)
		return nil, &CompileError{Stage: stage, Log: log}
	}

	return &Shader{stage: stage, id: id}, nil
}

// CompileSource is Compile for a Source value.
func CompileSource(dev Device, src Source) (*Shader, error) {
	return Compile(dev, src.Stage, src.Text)
}
