package renderer

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

var Debug bool = false        // Draw glow polygons as wireframe
var ClearColorR float32 = 0.0 // Background clear color red
var ClearColorG float32 = 0.0 // Background clear color green
var ClearColorB float32 = 0.0 // Background clear color blue

// Channels are drawn from [channelMin, channelMin+channelSpan)
const (
	channelMin  = 0.5
	channelSpan = 0.5
)

// Light is a point light in world space. All fields are fixed at creation,
// how big and how detailed its glow is comes from GlowParams at draw time.
type Light struct {
	position mgl32.Vec2
	color    mgl32.Vec3
	alpha    float32
}

// NewLight creates a light at (x, y) with a random color and intensity.
func NewLight(x, y float32, rng *rand.Rand) Light {
	return Light{
		position: mgl32.Vec2{x, y},
		color:    mgl32.Vec3{randomChannel(rng), randomChannel(rng), randomChannel(rng)},
		alpha:    randomChannel(rng),
	}
}

// NewLightWithColor creates a light with a known color, used where the caller
// needs a deterministic light.
func NewLightWithColor(position mgl32.Vec2, color mgl32.Vec3, alpha float32) Light {
	return Light{position: position, color: color, alpha: alpha}
}

func (l Light) Position() mgl32.Vec2 { return l.position }
func (l Light) X() float32 { return l.position.X() }
func (l Light) Y() float32 { return l.position.Y() }
func (l Light) Color() mgl32.Vec3 { return l.color }
func (l Light) Alpha() float32 { return l.alpha }

func randomChannel(rng *rand.Rand) float32 {
	v := float32(channelMin + channelSpan*rng.Float64())
	// float32 rounding can land exactly on the upper bound
	if v >= channelMin+channelSpan {
		v = math.Nextafter32(channelMin+channelSpan, 0)
	}
	return v
}

// Render is a backend able to draw flat colored convex polygons with
// additive blending in a 1:1 world unit to pixel projection.
type Render interface {
	Init(width, height int32) error
	Clear()
	FillPolygon(poly *Polygon)
	UpdateViewport(width, height int32)
	Cleanup()
}
