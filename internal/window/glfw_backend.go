package window

import (
	"Lightsim/internal/engine"
	"Lightsim/internal/input"
	"Lightsim/internal/logger"
	"Lightsim/internal/renderer"
	"Lightsim/internal/renderer/opengl"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// Physical keys for each logical control, either one counts as held.
var keyBindings = map[input.Key][]glfw.Key{
	input.KeyUp:           {glfw.KeyW, glfw.KeyUp},
	input.KeyDown:         {glfw.KeyS, glfw.KeyDown},
	input.KeyLeft:         {glfw.KeyA, glfw.KeyLeft},
	input.KeyRight:        {glfw.KeyD, glfw.KeyRight},
	input.KeyFast:         {glfw.KeyLeftShift, glfw.KeyRightShift},
	input.KeyZoomIn:       {glfw.KeyZ},
	input.KeyZoomOut:      {glfw.KeyX},
	input.KeySegmentsDown: {glfw.KeyB},
	input.KeySegmentsUp:   {glfw.KeyG},
	input.KeyQuit:         {glfw.KeyEscape},
}

var buttonBindings = map[input.Button]glfw.MouseButton{
	input.ButtonPrimary: glfw.MouseButtonLeft,
}

// GLFWBackend is a fixed size GLFW window with an OpenGL 4.1 core context.
// All calls must happen on the locked main thread.
type GLFWBackend struct {
	window     *glfw.Window
	rend       *opengl.OpenGLRenderer
	limiter    *engine.FrameLimiter
	glfwActive bool
}

func NewGLFWBackend() *GLFWBackend {
	return &GLFWBackend{
		rend:    &opengl.OpenGLRenderer{},
		limiter: engine.NewFrameLimiter(),
	}
}

func (b *GLFWBackend) Init(cfg engine.Config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	b.glfwActive = true

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	b.window = window
	b.window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	b.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	setDarkTitleBar(b.window)

	logger.Log.Info("Window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync))
	glfw.PollEvents()
	return nil
}

func (b *GLFWBackend) KeyDown(key input.Key) bool {
	for _, k := range keyBindings[key] {
		if b.window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

func (b *GLFWBackend) ButtonDown(button input.Button) bool {
	mb, ok := buttonBindings[button]
	return ok && b.window.GetMouseButton(mb) == glfw.Press
}

func (b *GLFWBackend) CursorPos() (float64, float64) {
	return b.window.GetCursorPos()
}

func (b *GLFWBackend) ViewportSize() (int, int) {
	return b.window.GetSize()
}

func (b *GLFWBackend) CloseRequested() bool {
	return b.window.ShouldClose()
}

func (b *GLFWBackend) Renderer() renderer.Render {
	return b.rend
}

func (b *GLFWBackend) Present() {
	b.window.SwapBuffers()
	glfw.PollEvents()
}

func (b *GLFWBackend) Sync(fps int) {
	b.limiter.Wait(fps)
}

// Destroy closes the window and terminates glfw. Safe after a failed Init.
func (b *GLFWBackend) Destroy() {
	if b.window != nil {
		b.window.Destroy()
		b.window = nil
	}
	if b.glfwActive {
		glfw.Terminate()
		b.glfwActive = false
	}
}

var _ engine.Backend = (*GLFWBackend)(nil)
