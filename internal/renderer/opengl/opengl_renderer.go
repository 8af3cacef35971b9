package opengl

import (
	"Lightsim/internal/logger"
	"Lightsim/internal/renderer"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const vertexStride = int32(unsafe.Sizeof(mgl32.Vec2{}))

// OpenGLRenderer draws glow polygons as triangle fans with additive blending.
// A GL context must be current on the calling thread.
type OpenGLRenderer struct {
	shader      Shader
	uniforms    *UniformCache
	vao         uint32
	vbo         uint32
	initialized bool
}

func (rend *OpenGLRenderer) Init(width, height int32) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize OpenGL: %w", err)
	}

	rend.shader = InitGlowShader()
	if err := rend.shader.Compile(); err != nil {
		return fmt.Errorf("glow shader: %w", err)
	}
	rend.uniforms = NewUniformCache(rend.shader.Program())

	gl.GenVertexArrays(1, &rend.vao)
	gl.BindVertexArray(rend.vao)
	gl.GenBuffers(1, &rend.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, rend.vbo)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, vertexStride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	// src*alpha + dst, overlapping glows brighten
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)

	if renderer.Debug {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	rend.initialized = true
	rend.UpdateViewport(width, height)
	logger.Log.Info("OpenGL render initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.Int32("width", width),
		zap.Int32("height", height))
	return nil
}

// UpdateViewport updates the OpenGL viewport and projection to match the window size
func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	if !rend.initialized {
		return
	}
	gl.Viewport(0, 0, width, height)
	rend.shader.Use()
	rend.uniforms.SetMat4("projection", renderer.Projection(width, height))
}

func (rend *OpenGLRenderer) Clear() {
	gl.ClearColor(renderer.ClearColorR, renderer.ClearColorG, renderer.ClearColorB, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (rend *OpenGLRenderer) FillPolygon(poly *renderer.Polygon) {
	// A fan needs the center and at least two perimeter vertices
	if !rend.initialized || len(poly.Vertices) < 3 {
		return
	}

	rend.shader.Use()
	rend.uniforms.SetVec4("glowColor", poly.Color)

	gl.BindVertexArray(rend.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, rend.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(poly.Vertices)*int(vertexStride), gl.Ptr(poly.Vertices), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, int32(len(poly.Vertices)))
	gl.BindVertexArray(0)
}

// Cleanup releases the GL objects. Safe to call more than once.
func (rend *OpenGLRenderer) Cleanup() {
	if !rend.initialized {
		return
	}
	gl.DeleteBuffers(1, &rend.vbo)
	gl.DeleteVertexArrays(1, &rend.vao)
	rend.shader.Delete()
	rend.initialized = false
}

var _ renderer.Render = (*OpenGLRenderer)(nil)
