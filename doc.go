/*
Package scene renders a single colored cube through a small programmable
pipeline: shader units are compiled, linked into a program, attribute and
uniform locations are resolved once, and every frame clears, recomputes the
perspective and model-view matrices, binds the mesh buffers and issues one
indexed draw call.

The package is backend independent. It drives a Device (the command surface
of one GPU context) obtained from a Canvas supplied by the host. The
backend/opengl package implements both on top of go-gl and GLFW.

# Quick Start

	window, _ := glfw.CreateWindow(800, 600, "scene", nil, nil)
	canvas := opengl.NewCanvas(window)

	r, err := scene.Open(canvas)
	if err != nil {
	    // *scene.CompileError, *scene.LinkError or *scene.UnresolvedLocationError
	    return err
	}
	defer r.Delete()

	for !window.ShouldClose() {
	    glfw.PollEvents()
	    r.Render()
	    window.SwapBuffers()
	}

# Lifecycle

A Renderer moves through StateContextAcquired and StateProgramReady inside
Open and enters StateRendering on the first Render. Open never returns a
Renderer without a linked program, so a frame cannot be drawn before setup
succeeded. Setup errors are terminal for the session; the host may call Open
again with corrected shader source.

# Shaders

The embedded defaults (DefaultVertexSource, DefaultFragmentSource) target
GLSL 4.10 core and declare:

	in vec4 aVertexPosition;   // required
	in vec4 aVertexColor;      // optional
	uniform mat4 uModelViewMatrix;
	uniform mat4 uProjectionMatrix;

Custom sources replace them with WithShaderSources. Names can be changed
with WithAttribNames and WithUniformNames.

# Matrices

Matrices are mgl32.Mat4 values, column-major, uploaded without transpose.
The projection uses a vertical field of view (45 degrees by default), the
canvas aspect ratio, and near/far planes 0.1 and 100. The model-view matrix
translates the model DefaultCameraDistance units down -Z.
*/
package scene
