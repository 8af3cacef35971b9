package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSoftware(t *testing.T, w, h int32) *SoftwareRenderer {
	t.Helper()
	rend := NewSoftwareRenderer()
	require.NoError(t, rend.Init(w, h))
	t.Cleanup(rend.Cleanup)
	rend.Clear()
	return rend
}

func TestSoftwareRendererRejectsEmptyViewport(t *testing.T) {
	assert.Error(t, NewSoftwareRenderer().Init(0, 10))
}

func TestSoftwareRendererGlowFalloff(t *testing.T) {
	rend := newSoftware(t, 100, 100)
	light := NewLightWithColor(mgl32.Vec2{50, 50}, mgl32.Vec3{0.5, 0.5, 0.5}, 1.0)

	NewGlowRenderer().DrawLight(rend, light, Camera2D{}, DefaultGlowParams())

	assert.Equal(t, NumCircles, rend.Fills())
	// every ring covers the center: 0.5 * (1 + 0.8 + 0.6 + 0.4 + 0.2)
	assert.InDelta(t, 1.5, rend.At(50, 50).X(), 0.05)
	// only the two outer rings reach 6..7 units out: 0.5 * (0.4 + 0.2)
	assert.InDelta(t, 0.3, rend.At(56, 50).X(), 0.05)
	assert.Equal(t, mgl32.Vec3{}, rend.At(5, 5))
}

func TestSoftwareRendererIsAdditive(t *testing.T) {
	single := newSoftware(t, 64, 64)
	double := newSoftware(t, 64, 64)
	glow := NewGlowRenderer()
	light := NewLightWithColor(mgl32.Vec2{32, 32}, mgl32.Vec3{0.6, 0.7, 0.8}, 0.5)

	glow.DrawLight(single, light, Camera2D{}, DefaultGlowParams())
	glow.DrawLight(double, light, Camera2D{}, DefaultGlowParams())
	glow.DrawLight(double, light, Camera2D{}, DefaultGlowParams())

	one := single.At(32, 32)
	two := double.At(32, 32)
	assert.Greater(t, one.Z(), float32(0))
	assert.InDelta(t, 2*one.X(), two.X(), 1e-4)
	assert.InDelta(t, 2*one.Z(), two.Z(), 1e-4)
}

func TestSoftwareRendererFollowsCamera(t *testing.T) {
	rend := newSoftware(t, 100, 100)
	light := NewLightWithColor(mgl32.Vec2{1050, -950}, mgl32.Vec3{1, 1, 1}, 1.0)

	NewGlowRenderer().DrawLight(rend, light, Camera2D{X: 1000, Y: -1000}, DefaultGlowParams())

	assert.Greater(t, rend.At(50, 50).X(), float32(1))
	assert.Equal(t, mgl32.Vec3{}, rend.At(90, 90))
}

func TestSoftwareRendererSkipsDegenerate(t *testing.T) {
	rend := newSoftware(t, 32, 32)
	light := NewLightWithColor(mgl32.Vec2{16, 16}, mgl32.Vec3{1, 1, 1}, 1.0)

	NewGlowRenderer().DrawLight(rend, light, Camera2D{}, GlowParams{MaxRadius: 10, NumSegments: 0})

	assert.Equal(t, 0, rend.Fills())
	assert.Equal(t, mgl32.Vec3{}, rend.At(16, 16))
}
