// camera.go
package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	CameraStep     = 5 // World units per frame
	CameraFastStep = 7 // World units per frame with the fast modifier held
)

// Camera2D is an integer offset into the unbounded world. Screen space is
// world space minus the offset.
type Camera2D struct {
	X, Y int
}

// Move translates the camera. There are no bounds.
func (c *Camera2D) Move(dx, dy int) {
	c.X += dx
	c.Y += dy
}

func (c Camera2D) Offset() mgl32.Vec2 {
	return mgl32.Vec2{float32(c.X), float32(c.Y)}
}

func (c Camera2D) WorldToScreen(p mgl32.Vec2) mgl32.Vec2 {
	return p.Sub(c.Offset())
}

func (c Camera2D) ScreenToWorld(p mgl32.Vec2) mgl32.Vec2 {
	return p.Add(c.Offset())
}

// PointerToWorld resolves a window pointer position to world space. Window
// systems report the pointer with a top-left origin while the projection is
// y-up, flipY mirrors the pointer against the viewport height to match.
func (c Camera2D) PointerToWorld(px, py float64, viewportHeight int, flipY bool) mgl32.Vec2 {
	x := int(px)
	y := int(py)
	if flipY {
		y = viewportHeight - y
	}
	return c.ScreenToWorld(mgl32.Vec2{float32(x), float32(y)})
}

// Projection maps screen space 1:1 onto the viewport with the origin at the
// bottom-left corner.
func Projection(width, height int32) mgl32.Mat4 {
	return mgl32.Ortho2D(0, float32(width), 0, float32(height))
}
