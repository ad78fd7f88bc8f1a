package scene

import "log/slog"

// Default attribute and uniform names, matching the embedded shaders.
const (
	DefaultPositionAttrib    = "aVertexPosition"
	DefaultColorAttrib       = "aVertexColor"
	DefaultProjectionUniform = "uProjectionMatrix"
	DefaultModelViewUniform  = "uModelViewMatrix"
)

// Option configures a Renderer.
type Option func(*settings)

// settings holds the session configuration fixed at Open.
type settings struct {
	vertexSource   string
	fragmentSource string
	mesh           Mesh
	clearColor     [4]float32
	camera         Camera

	positionAttrib    string
	colorAttrib       string
	projectionUniform string
	modelViewUniform  string

	logger *slog.Logger
}

func defaultSettings() settings {
	return settings{
		vertexSource:      DefaultVertexSource,
		fragmentSource:    DefaultFragmentSource,
		clearColor:        [4]float32{0, 0, 0, 1},
		camera:            DefaultCamera(),
		positionAttrib:    DefaultPositionAttrib,
		colorAttrib:       DefaultColorAttrib,
		projectionUniform: DefaultProjectionUniform,
		modelViewUniform:  DefaultModelViewUniform,
		logger:            sceneLogger,
	}
}

// applyOptions applies all options over the defaults.
func applyOptions(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if s.mesh == nil {
		s.mesh = NewCube()
	}
	return s
}

// WithShaderSources replaces the embedded shaders. An empty string keeps
// the default for that stage.
func WithShaderSources(vertex, fragment string) Option {
	return func(s *settings) {
		if vertex != "" {
			s.vertexSource = vertex
		}
		if fragment != "" {
			s.fragmentSource = fragment
		}
	}
}

// WithMesh sets the mesh to draw. Defaults to NewCube().
func WithMesh(m Mesh) Option {
	return func(s *settings) { s.mesh = m }
}

// WithClearColor sets the color the color buffer is cleared to.
func WithClearColor(r, g, b, a float32) Option {
	return func(s *settings) { s.clearColor = [4]float32{r, g, b, a} }
}

// WithCameraDistance sets how far the model sits from the camera.
// Distances <= 0 are ignored.
func WithCameraDistance(d float32) Option {
	return func(s *settings) {
		if d > 0 {
			s.camera.Distance = d
		}
	}
}

// WithFieldOfView sets the vertical field of view in degrees.
// Values outside (0, 180) are ignored.
func WithFieldOfView(deg float32) Option {
	return func(s *settings) {
		if deg > 0 && deg < 180 {
			s.camera.FieldOfView = deg
		}
	}
}

// WithAttribNames overrides the vertex attribute names. The position
// attribute is required; an empty color name disables color binding.
func WithAttribNames(position, color string) Option {
	return func(s *settings) {
		s.positionAttrib = position
		s.colorAttrib = color
	}
}

// WithUniformNames overrides the matrix uniform names.
func WithUniformNames(projection, modelView string) Option {
	return func(s *settings) {
		s.projectionUniform = projection
		s.modelViewUniform = modelView
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
