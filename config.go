package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk description of a viewer session.
//
// Example:
//
//	window:
//	  width: 800
//	  height: 600
//	shaders:
//	  vertex: shaders/cube.vert
//	  fragment: shaders/cube.frag
//	clear_color: [0.1, 0.1, 0.12, 1]
//	camera:
//	  distance: 6
//	  fov: 45
type Config struct {
	Window     WindowConfig `yaml:"window"`
	Shaders    ShaderConfig `yaml:"shaders"`
	ClearColor []float32    `yaml:"clear_color"`
	Camera     CameraConfig `yaml:"camera"`
	Verbose    bool         `yaml:"verbose"`
}

// WindowConfig is the initial host window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ShaderConfig names shader source files. Empty paths use the embedded
// defaults.
type ShaderConfig struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// CameraConfig overrides the camera defaults. Zero values keep them.
type CameraConfig struct {
	Distance    float32 `yaml:"distance"`
	FieldOfView float32 `yaml:"fov"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Window:     WindowConfig{Width: 800, Height: 600, Title: "scene"},
		ClearColor: []float32{0, 0, 0, 1},
		Camera:     CameraConfig{Distance: DefaultCameraDistance, FieldOfView: DefaultFieldOfView},
	}
}

// maxConfigSize bounds the config file read.
const maxConfigSize = 1 << 20

// LoadConfig reads a YAML config over the defaults. A missing file is not
// an error and yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			sceneLogger.Debug("config file not found, using defaults", "path", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("stat config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return cfg, fmt.Errorf("config %s too large (%d bytes)", path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	sceneLogger.Debug("loaded config", "path", path, "size", info.Size())
	return cfg, nil
}

func (c Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if len(c.ClearColor) != 0 && len(c.ClearColor) != 4 {
		return fmt.Errorf("clear_color needs 4 components, got %d", len(c.ClearColor))
	}
	return nil
}

// Options reads the configured shader files and returns the renderer
// options the config describes.
func (c Config) Options() ([]Option, error) {
	vs, err := readShader(c.Shaders.Vertex)
	if err != nil {
		return nil, err
	}
	fs, err := readShader(c.Shaders.Fragment)
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithShaderSources(vs, fs),
		WithCameraDistance(c.Camera.Distance),
		WithFieldOfView(c.Camera.FieldOfView),
	}
	if len(c.ClearColor) == 4 {
		cc := c.ClearColor
		opts = append(opts, WithClearColor(cc[0], cc[1], cc[2], cc[3]))
	}
	return opts, nil
}

func readShader(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read shader: %w", err)
	}
	return string(data), nil
}
