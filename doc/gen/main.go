// Command gen renders the cube with a few camera setups, captures the
// framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/scene"
	"github.com/go-theft-auto/scene/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single captured frame.
type screenshot struct {
	name   string         // filename without extension
	width  int            // viewport width
	height int            // viewport height
	opts   []scene.Option // renderer options
}

// sizedCanvas reports a fixed size so captures smaller than the hidden
// window do not depend on GLFW's asynchronous resize.
type sizedCanvas struct {
	*opengl.Canvas
	width, height int
}

func (c sizedCanvas) Size() (int, int) { return c.width, c.height }

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	canvas := opengl.NewCanvas(window)
	defer canvas.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := []screenshot{
		{name: "cube", width: 800, height: 600},
		{name: "cube_narrow", width: 400, height: 600},
		{name: "cube_close", width: 800, height: 600, opts: []scene.Option{
			scene.WithCameraDistance(4),
			scene.WithClearColor(0.12, 0.12, 0.14, 1),
		}},
		{name: "cube_wide_fov", width: 800, height: 600, opts: []scene.Option{
			scene.WithFieldOfView(90),
		}},
	}

	for _, s := range shots {
		if err := capture(canvas, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(canvas *opengl.Canvas, s screenshot, outDir string) error {
	// Fresh renderer per screenshot so options do not leak between captures.
	r, err := scene.Open(sizedCanvas{Canvas: canvas, width: s.width, height: s.height}, s.opts...)
	if err != nil {
		return err
	}
	defer r.Delete()

	if err := r.Render(); err != nil {
		return err
	}
	gl.Finish()

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}
