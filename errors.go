package scene

import (
	"errors"
	"fmt"
)

// ErrReleased is returned when a renderer is used after Delete.
var ErrReleased = errors.New("scene: renderer released")

// CompileError reports a shader stage that failed to compile.
// Log holds the driver diagnostic and is never empty.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}

// Location kinds reported by UnresolvedLocationError.
const (
	KindAttribute = "attribute"
	KindUniform   = "uniform"
)

// UnresolvedLocationError reports a required attribute or uniform that is
// not active in a linked program.
type UnresolvedLocationError struct {
	Kind string // KindAttribute or KindUniform
	Name string
}

func (e *UnresolvedLocationError) Error() string {
	return fmt.Sprintf("%s %q not found in program", e.Kind, e.Name)
}

// MeshError reports a mesh whose data violates the vertex/index layout.
type MeshError struct {
	Reason string
}

func (e *MeshError) Error() string {
	return "invalid mesh: " + e.Reason
}
