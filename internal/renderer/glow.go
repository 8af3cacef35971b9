package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// NumCircles is the number of concentric rings that make up one glow
	NumCircles = 5

	DefaultMaxRadius   float32 = 10
	DefaultNumSegments float32 = 100

	// Floors for the user adjustable parameters
	MinRadius   float32 = 0
	MinSegments float32 = 3
)

// GlowParams are the global drawing parameters shared by every light.
type GlowParams struct {
	MaxRadius   float32 // Outer radius of the glow
	NumSegments float32 // Edges of the polygon approximating a circle
}

func DefaultGlowParams() GlowParams {
	return GlowParams{
		MaxRadius:   DefaultMaxRadius,
		NumSegments: DefaultNumSegments,
	}
}

// AdjustRadius changes the glow radius, never going below MinRadius.
func (p *GlowParams) AdjustRadius(delta float32) {
	p.MaxRadius = max(p.MaxRadius+delta, MinRadius)
}

// AdjustSegments changes the segment count, never going below MinSegments.
func (p *GlowParams) AdjustSegments(delta float32) {
	p.NumSegments = max(p.NumSegments+delta, MinSegments)
}

// Ring is one of the concentric layers of a glow.
type Ring struct {
	Radius float32
	Alpha  float32
}

// Rings returns the glow rings of a light. Ring i has radius
// MaxRadius*(i+1)/NumCircles and alpha light.Alpha*(1-i/NumCircles).
func Rings(light Light, params GlowParams) [NumCircles]Ring {
	var rings [NumCircles]Ring
	for i := 0; i < NumCircles; i++ {
		rings[i] = Ring{
			Radius: params.MaxRadius * float32(i+1) / NumCircles,
			Alpha:  mgl32.Clamp(light.alpha*(1.0-float32(i)/NumCircles), 0, 1),
		}
	}
	return rings
}

// Polygon is a flat colored triangle fan: the first vertex is the center,
// the rest walk the perimeter. Coordinates are in screen space.
type Polygon struct {
	Vertices []mgl32.Vec2
	Color    mgl32.Vec4
}

func (p *Polygon) Center() mgl32.Vec2 {
	if len(p.Vertices) == 0 {
		return mgl32.Vec2{}
	}
	return p.Vertices[0]
}

// Perimeter returns the vertices after the center.
func (p *Polygon) Perimeter() []mgl32.Vec2 {
	if len(p.Vertices) < 2 {
		return nil
	}
	return p.Vertices[1:]
}

// AppendRingVertices appends the fan for a regular polygon with the given
// number of segments. Vertex k of the perimeter sits at angle 2*pi*k/segments
// for k in [0, segments], so an integral count closes with a seam vertex equal
// to the first one. With segments <= 0 only the center is emitted.
func AppendRingVertices(dst []mgl32.Vec2, center mgl32.Vec2, radius, segments float32) []mgl32.Vec2 {
	dst = append(dst, center)
	if segments <= 0 {
		return dst
	}
	first := len(dst)
	for k := 0; float32(k) <= segments; k++ {
		if k > 0 && float32(k) == segments {
			dst = append(dst, dst[first])
			continue
		}
		theta := 2 * math.Pi * float64(k) / float64(segments)
		dx := float32(float64(radius) * math.Cos(theta))
		dy := float32(float64(radius) * math.Sin(theta))
		dst = append(dst, mgl32.Vec2{center.X() + dx, center.Y() + dy})
	}
	return dst
}

// LightSource is an ordered collection of lights.
type LightSource interface {
	Len() int
	At(i int) Light
}

// GlowRenderer turns lights into ring polygons for a Render backend.
// The polygon passed to FillPolygon is only valid during that call.
type GlowRenderer struct {
	poly Polygon
}

func NewGlowRenderer() *GlowRenderer {
	return &GlowRenderer{
		poly: Polygon{Vertices: make([]mgl32.Vec2, 0, int(DefaultNumSegments)+2)},
	}
}

// DrawLight issues exactly NumCircles fills for the light, ring 0 first.
func (g *GlowRenderer) DrawLight(rend Render, light Light, camera Camera2D, params GlowParams) {
	center := camera.WorldToScreen(light.position)
	color := light.color
	for _, ring := range Rings(light, params) {
		g.poly.Vertices = AppendRingVertices(g.poly.Vertices[:0], center, ring.Radius, params.NumSegments)
		g.poly.Color = color.Vec4(ring.Alpha)
		rend.FillPolygon(&g.poly)
	}
}

// DrawLights draws every light in insertion order and returns how many were drawn.
func (g *GlowRenderer) DrawLights(rend Render, lights LightSource, camera Camera2D, params GlowParams) int {
	n := lights.Len()
	for i := 0; i < n; i++ {
		g.DrawLight(rend, lights.At(i), camera, params)
	}
	return n
}
