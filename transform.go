package scene

import "github.com/go-gl/mathgl/mgl32"

// Projection defaults.
const (
	DefaultFieldOfView    = 45.0 // vertical, degrees
	NearPlane             = 0.1
	FarPlane              = 100.0
	DefaultCameraDistance = 6.0
)

// Camera holds the fixed viewing parameters of a session.
type Camera struct {
	FieldOfView float32 // vertical, degrees
	Distance    float32 // distance from the camera to the model origin
}

// DefaultCamera returns a 45 degree camera 6 units from the origin.
func DefaultCamera() Camera {
	return Camera{FieldOfView: DefaultFieldOfView, Distance: DefaultCameraDistance}
}

// Transform is the per-frame matrix state. Both matrices are column-major.
type Transform struct {
	Projection mgl32.Mat4
	ModelView  mgl32.Mat4
}

// Aspect returns width/height, treating a zero height as 1 pixel.
func Aspect(width, height int) float32 {
	if height <= 0 {
		height = 1
	}
	if width <= 0 {
		width = 1
	}
	return float32(width) / float32(height)
}

// Projection returns the perspective projection for a canvas of the given size.
func (c Camera) Projection(width, height int) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FieldOfView), Aspect(width, height), NearPlane, FarPlane)
}

// ModelView returns the identity translated away from the camera along -Z.
// It does not depend on the canvas size.
func (c Camera) ModelView() mgl32.Mat4 {
	return mgl32.Ident4().Mul4(mgl32.Translate3D(0, 0, -c.Distance))
}

// Transform computes both matrices for a canvas of the given size.
func (c Camera) Transform(width, height int) Transform {
	return Transform{
		Projection: c.Projection(width, height),
		ModelView:  c.ModelView(),
	}
}
