package opengl

import (
	"fmt"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/scene"
)

// glInit loads the OpenGL function pointers once per process.
var (
	glInitOnce sync.Once
	glInitErr  error
)

// Canvas adapts a GLFW window to scene.Canvas.
type Canvas struct {
	window *glfw.Window
	device *Device

	onResize func(width, height int)
	onKey    func(key glfw.Key)
}

var _ scene.Canvas = (*Canvas)(nil)

// NewCanvas wraps window. The window must have been created with an
// OpenGL 4.1 core context.
func NewCanvas(window *glfw.Window) *Canvas {
	c := &Canvas{window: window}

	window.SetFramebufferSizeCallback(c.framebufferSizeCallback)
	window.SetKeyCallback(c.keyCallback)

	return c
}

// Window returns the wrapped window.
func (c *Canvas) Window() *glfw.Window { return c.window }

// Size returns the framebuffer size in pixels.
func (c *Canvas) Size() (int, int) {
	return c.window.GetFramebufferSize()
}

// Context makes the window's context current and returns its device,
// loading the OpenGL entry points on first use.
func (c *Canvas) Context() (scene.Device, error) {
	if c.device != nil {
		return c.device, nil
	}

	c.window.MakeContextCurrent()
	glInitOnce.Do(func() {
		glInitErr = gl.Init()
	})
	if glInitErr != nil {
		return nil, fmt.Errorf("gl init: %w", glInitErr)
	}

	c.device = NewDevice()
	return c.device, nil
}

// Delete drops the device created by Context. Renderers opened on the
// canvas must be deleted first; they own their GPU objects.
func (c *Canvas) Delete() {
	c.device = nil
}

// OnResize registers fn to run when the framebuffer size changes.
func (c *Canvas) OnResize(fn func(width, height int)) { c.onResize = fn }

// OnKey registers fn to run on key press.
func (c *Canvas) OnKey(fn func(key glfw.Key)) { c.onKey = fn }

func (c *Canvas) framebufferSizeCallback(w *glfw.Window, width, height int) {
	if c.onResize != nil {
		c.onResize(width, height)
	}
}

func (c *Canvas) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press || c.onKey == nil {
		return
	}
	c.onKey(key)
}
