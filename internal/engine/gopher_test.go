package engine

import (
	"errors"
	"testing"

	"Lightsim/internal/input"
	"Lightsim/internal/logger"
	"Lightsim/internal/renderer"
	"Lightsim/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// Small viewport so software frames stay cheap.
func smallConfig() Config {
	cfg := testConfig()
	cfg.Width = 100
	cfg.Height = 50
	return cfg
}

func frames(n int, frame ScriptedFrame) []ScriptedFrame {
	script := make([]ScriptedFrame, n)
	for i := range script {
		script[i] = frame
	}
	return script
}

func TestNewGopherRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.FPS = 0

	_, err := NewGopher(cfg, NewHeadlessBackend())

	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRunUntilScriptEnds(t *testing.T) {
	backend := NewHeadlessBackend(frames(3, ScriptedFrame{})...)
	gopher, err := NewGopher(smallConfig(), backend)
	require.NoError(t, err)

	require.NoError(t, gopher.Run())

	assert.Equal(t, Terminated, gopher.State())
	assert.Equal(t, 3, gopher.Frames())
	assert.Equal(t, 3, backend.Presented)
	assert.Equal(t, 3, backend.Synced)
	assert.Equal(t, 1, backend.Destroyed)
	assert.Equal(t, 3, gopher.Session().Tick)
	assert.Equal(t, 1, gopher.Session().Generated.Len())
	assert.Equal(t, 10, gopher.Session().Lights.Len())
}

func TestCloseRequestStopsBeforeFrame(t *testing.T) {
	backend := NewHeadlessBackend(ScriptedFrame{}, ScriptedFrame{Close: true}, ScriptedFrame{})
	gopher, err := NewGopher(smallConfig(), backend)
	require.NoError(t, err)

	require.NoError(t, gopher.Run())

	assert.Equal(t, 1, backend.Presented)
	assert.Equal(t, Terminated, gopher.State())
}

func TestQuitKeyCloses(t *testing.T) {
	backend := NewHeadlessBackend(
		ScriptedFrame{Keys: []input.Key{input.KeyQuit}},
		ScriptedFrame{},
	)
	gopher, err := NewGopher(smallConfig(), backend)
	require.NoError(t, err)

	require.NoError(t, gopher.Run())

	assert.Equal(t, 0, backend.Presented)
	assert.Equal(t, 0, gopher.Session().Lights.Len())
	assert.Equal(t, 1, backend.Destroyed)
}

func TestBackendInitFailureReleases(t *testing.T) {
	cause := errors.New("no display")
	backend := NewHeadlessBackend(ScriptedFrame{})
	backend.InitErr = cause
	gopher, err := NewGopher(smallConfig(), backend)
	require.NoError(t, err)

	err = gopher.Run()

	assert.ErrorIs(t, err, ErrBackendInit)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, backend.Destroyed)
	assert.Equal(t, 0, backend.Presented)
	assert.Equal(t, Terminated, gopher.State())
}

type failingRender struct {
	renderer.Render
	cleaned int
}

func (f *failingRender) Init(width, height int32) error { return errors.New("shader compile failed") }

func (f *failingRender) Cleanup() { f.cleaned++ }

type failingRenderBackend struct {
	*HeadlessBackend
	rend *failingRender
}

func (b *failingRenderBackend) Renderer() renderer.Render { return b.rend }

func TestRendererInitFailureReleasesBackend(t *testing.T) {
	backend := &failingRenderBackend{HeadlessBackend: NewHeadlessBackend(ScriptedFrame{}), rend: &failingRender{}}
	gopher, err := NewGopher(smallConfig(), backend)
	require.NoError(t, err)

	err = gopher.Run()

	assert.ErrorIs(t, err, ErrBackendInit)
	assert.Equal(t, 1, backend.Destroyed)
	assert.Equal(t, 0, backend.rend.cleaned)
}

type panickingBackend struct {
	*HeadlessBackend
}

func (b *panickingBackend) Present() { panic("lost context") }

func TestPanicStillReleases(t *testing.T) {
	backend := &panickingBackend{NewHeadlessBackend(ScriptedFrame{})}
	gopher, err := NewGopher(smallConfig(), backend)
	require.NoError(t, err)

	assert.Panics(t, func() { _ = gopher.Run() })
	assert.Equal(t, 1, backend.Destroyed)
	assert.Equal(t, Terminated, gopher.State())
}

func TestCloseIsIdempotent(t *testing.T) {
	backend := NewHeadlessBackend(ScriptedFrame{})
	gopher, err := NewGopher(smallConfig(), backend)
	require.NoError(t, err)
	require.NoError(t, gopher.Run())

	gopher.Close()
	gopher.Close()

	assert.Equal(t, 1, backend.Destroyed)
}

func TestMovingRightGeneratesNextChunk(t *testing.T) {
	// 20 frames at 5 per frame puts the camera at x=100, the next chunk
	backend := NewHeadlessBackend(frames(20, ScriptedFrame{Keys: []input.Key{input.KeyRight}})...)
	gopher, err := NewGopher(smallConfig(), backend)
	require.NoError(t, err)

	require.NoError(t, gopher.Run())

	s := gopher.Session()
	assert.Equal(t, renderer.Camera2D{X: 100, Y: 0}, s.Camera)
	assert.True(t, s.Generated.Contains(world.ChunkKey{X: 0, Y: 0}))
	assert.True(t, s.Generated.Contains(world.ChunkKey{X: 1, Y: 0}))
	assert.Equal(t, 20, s.Lights.Len())
}

func TestHeldButtonPlacesOneLight(t *testing.T) {
	press := ScriptedFrame{Button: true, CursorX: 10, CursorY: 30}
	backend := NewHeadlessBackend(frames(3, press)...)
	gopher, err := NewGopher(smallConfig(), backend)
	require.NoError(t, err)

	require.NoError(t, gopher.Run())

	lights := gopher.Session().Lights
	require.Equal(t, 11, lights.Len())
	last, ok := lights.Last()
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec2{10, 20}, last.Position())
}

func TestFramesShowTheGlow(t *testing.T) {
	cfg := smallConfig()
	cfg.LightsPerChunk = 1
	press := ScriptedFrame{Button: true, CursorX: 50, CursorY: 25}
	backend := NewHeadlessBackend(press, ScriptedFrame{})
	fills := []int{}
	var center mgl32.Vec3
	backend.OnPresent = func(frame int, rend *renderer.SoftwareRenderer) {
		fills = append(fills, rend.Fills())
		if frame == 1 {
			center = rend.At(50, 25)
		}
	}
	gopher, err := NewGopher(cfg, backend)
	require.NoError(t, err)

	require.NoError(t, gopher.Run())

	// Placement happens before drawing, both lights show on the first frame
	assert.Equal(t, []int{10, 10}, fills)
	assert.Greater(t, center.X(), renderer.ClearColorR)
}

func TestRunLogsLifecycle(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger.Set(zap.New(core))
	defer logger.Set(nil)

	cfg := smallConfig()
	cfg.FPS = 2
	backend := NewHeadlessBackend(frames(2, ScriptedFrame{})...)
	gopher, err := NewGopher(cfg, backend)
	require.NoError(t, err)
	require.NoError(t, gopher.Run())

	assert.Equal(t, 1, logs.FilterMessage("Lightsim initializing...").Len())
	assert.Equal(t, 1, logs.FilterMessage("Generated chunk").Len())
	assert.Equal(t, 1, logs.FilterMessage("Frame counter wrapped").Len())
	die := logs.FilterMessage("die").All()
	require.Len(t, die, 1)
	assert.Equal(t, gopher.Session().ID, die[0].ContextMap()["session"])
}
