// Example opens a window and renders the colored cube.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Flags override the YAML config file:
//
//	go run ./example/ -config example/scene.yml -vertex my.vert -fragment my.frag -v
//
// Press R to reload the shader files from disk, Escape to quit.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/scene"
	"github.com/go-theft-auto/scene/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "scene.yml", "path to YAML config")
	vertexPath := flag.String("vertex", "", "vertex shader file (overrides config)")
	fragmentPath := flag.String("fragment", "", "fragment shader file (overrides config)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	cfg, err := scene.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *vertexPath != "" {
		cfg.Shaders.Vertex = *vertexPath
	}
	if *fragmentPath != "" {
		cfg.Shaders.Fragment = *fragmentPath
	}
	scene.SetVerbose(*verbose || cfg.Verbose)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	canvas := opengl.NewCanvas(window)
	defer canvas.Delete()

	renderer, err := open(canvas, cfg)
	if err != nil {
		return err
	}
	defer func() { renderer.Delete() }()

	glfw.SwapInterval(1) // vsync

	canvas.OnResize(func(width, height int) {
		renderer.Resize(width, height)
	})
	canvas.OnKey(func(key glfw.Key) {
		switch key {
		case glfw.KeyEscape:
			window.SetShouldClose(true)
		case glfw.KeyR:
			// Keep the running renderer if the edited shaders do not build.
			next, err := open(canvas, cfg)
			if err != nil {
				slog.Error("shader reload failed", "error", err)
				return
			}
			renderer.Delete()
			renderer = next
			slog.Info("shaders reloaded")
		}
	})

	for !window.ShouldClose() {
		glfw.PollEvents()

		if err := renderer.Render(); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

func open(canvas *opengl.Canvas, cfg scene.Config) (*scene.Renderer, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	r, err := scene.Open(canvas, opts...)
	if err != nil {
		return nil, fmt.Errorf("scene renderer: %w", err)
	}
	return r, nil
}
