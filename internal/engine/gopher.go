package engine

import (
	"Lightsim/internal/input"
	"Lightsim/internal/logger"
	"Lightsim/internal/renderer"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var ErrBackendInit = errors.New("backend initialization failed")

// Gopher runs a Session on a Backend, one frame per loop iteration.
type Gopher struct {
	cfg     Config
	backend Backend
	session *Session
	input   input.State
	state   State
	release Unwind
	rend    renderer.Render
	frames  int
}

func NewGopher(cfg Config, backend Backend) (*Gopher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Gopher{
		cfg:     cfg,
		backend: backend,
		session: NewSession(cfg),
		state:   Running,
	}, nil
}

func (gopher *Gopher) Session() *Session { return gopher.session }
func (gopher *Gopher) State() State { return gopher.state }
func (gopher *Gopher) Frames() int { return gopher.frames }

// Run acquires the backend, loops until a close is requested and releases
// everything on the way out, including on partial setup failure or panic.
func (gopher *Gopher) Run() error {
	defer gopher.Close()

	logger.Log.Info("Lightsim initializing...",
		zap.String("session", gopher.session.ID),
		zap.Int("fps", gopher.cfg.FPS),
		zap.Int("width", gopher.cfg.Width),
		zap.Int("height", gopher.cfg.Height),
		zap.Stringer("placement", gopher.cfg.Placement))

	gopher.release.Add(gopher.backend.Destroy)
	if err := gopher.backend.Init(gopher.cfg); err != nil {
		logger.Log.Error("Could not initialize display", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrBackendInit, err)
	}

	renderer.Debug = gopher.cfg.Debug
	gopher.rend = gopher.backend.Renderer()
	width, height := gopher.backend.ViewportSize()
	if err := gopher.rend.Init(int32(width), int32(height)); err != nil {
		logger.Log.Error("Could not initialize renderer", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrBackendInit, err)
	}
	gopher.release.Add(gopher.rend.Cleanup)

	gopher.RenderLoop()
	return nil
}

func (gopher *Gopher) RenderLoop() {
	for gopher.state == Running {
		gopher.Frame()
	}
}

// Frame runs one iteration of the control loop.
func (gopher *Gopher) Frame() {
	gopher.input.Poll(gopher.backend)
	if gopher.backend.CloseRequested() || gopher.input.Held(input.KeyQuit) {
		gopher.state = Closing
		return
	}

	gopher.rend.Clear()
	gopher.session.Update(&gopher.input)
	gopher.session.Render(gopher.rend)

	gopher.backend.Present()
	gopher.session.AdvanceTick()
	gopher.frames++
	gopher.backend.Sync(gopher.cfg.FPS)
}

// Close releases the renderer and backend. Safe to call more than once.
func (gopher *Gopher) Close() {
	if gopher.state == Terminated {
		return
	}
	gopher.release.Unwind()
	gopher.state = Terminated
	logger.Log.Info("die",
		zap.String("session", gopher.session.ID),
		zap.Int("frames", gopher.frames),
		zap.Int("lights", gopher.session.Lights.Len()))
}
