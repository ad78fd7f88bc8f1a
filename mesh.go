package scene

import "fmt"

// Mesh supplies the geometry of one renderable shape as flat arrays:
// 3 floats per position, 4 floats per RGBA color (one color per vertex),
// and a triangle list of uint8 indices.
//
// Implementations must return the same data on every call.
type Mesh interface {
	Positions() []float32
	Colors() []float32
	Indices() []uint8
}

// Component counts of the mesh vertex layout.
const (
	PositionComponents = 3
	ColorComponents    = 4
)

// VertexCount returns the number of vertices in m.
func VertexCount(m Mesh) int {
	return len(m.Positions()) / PositionComponents
}

// ValidateMesh checks that m satisfies the vertex/index layout expected by
// the renderer.
func ValidateMesh(m Mesh) error {
	positions := m.Positions()
	colors := m.Colors()
	indices := m.Indices()

	if len(positions) == 0 {
		return &MeshError{Reason: "no positions"}
	}
	if len(positions)%PositionComponents != 0 {
		return &MeshError{Reason: fmt.Sprintf("%d position floats is not a multiple of %d", len(positions), PositionComponents)}
	}
	vertices := len(positions) / PositionComponents
	if vertices > 256 {
		return &MeshError{Reason: fmt.Sprintf("%d vertices exceed uint8 index range", vertices)}
	}
	if len(colors) != 0 && len(colors) != vertices*ColorComponents {
		return &MeshError{Reason: fmt.Sprintf("%d color floats for %d vertices", len(colors), vertices)}
	}
	if len(indices) == 0 || len(indices)%3 != 0 {
		return &MeshError{Reason: fmt.Sprintf("%d indices is not a triangle list", len(indices))}
	}
	for i, idx := range indices {
		if int(idx) >= vertices {
			return &MeshError{Reason: fmt.Sprintf("index %d at %d out of range (%d vertices)", idx, i, vertices)}
		}
	}
	return nil
}

// Cube is an axis-aligned cube spanning [-1, 1] on every axis. Each face
// has its own 4 vertices so it can carry a flat color.
type Cube struct {
	positions [72]float32
	colors    [96]float32
	indices   [36]uint8
}

// Face colors in face order: front, back, top, bottom, right, left.
var cubeFaceColors = [6][4]float32{
	{1, 1, 1, 1}, // white
	{1, 0, 0, 1}, // red
	{0, 1, 0, 1}, // green
	{0, 0, 1, 1}, // blue
	{1, 1, 0, 1}, // yellow
	{1, 0, 1, 1}, // purple
}

// NewCube returns the unit cube mesh.
func NewCube() *Cube {
	c := &Cube{
		positions: [72]float32{
			// Front
			-1, -1, 1,
			1, -1, 1,
			1, 1, 1,
			-1, 1, 1,
			// Back
			-1, -1, -1,
			-1, 1, -1,
			1, 1, -1,
			1, -1, -1,
			// Top
			-1, 1, -1,
			-1, 1, 1,
			1, 1, 1,
			1, 1, -1,
			// Bottom
			-1, -1, -1,
			1, -1, -1,
			1, -1, 1,
			-1, -1, 1,
			// Right
			1, -1, -1,
			1, 1, -1,
			1, 1, 1,
			1, -1, 1,
			// Left
			-1, -1, -1,
			-1, -1, 1,
			-1, 1, 1,
			-1, 1, -1,
		},
	}

	for face, color := range cubeFaceColors {
		for v := 0; v < 4; v++ {
			copy(c.colors[(face*4+v)*4:], color[:])
		}

		base := uint8(face * 4)
		copy(c.indices[face*6:], []uint8{
			base, base + 1, base + 2,
			base, base + 2, base + 3,
		})
	}

	return c
}

// Positions returns a copy of the vertex positions.
func (c *Cube) Positions() []float32 {
	out := make([]float32, len(c.positions))
	copy(out, c.positions[:])
	return out
}

// Colors returns a copy of the per-vertex colors.
func (c *Cube) Colors() []float32 {
	out := make([]float32, len(c.colors))
	copy(out, c.colors[:])
	return out
}

// Indices returns a copy of the triangle list.
func (c *Cube) Indices() []uint8 {
	out := make([]uint8, len(c.indices))
	copy(out, c.indices[:])
	return out
}
