package renderer

import (
	"Lightsim/internal/logger"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gg"
	"go.uber.org/zap"
)

// SoftwareRenderer rasterizes glow polygons on the CPU. gg computes the
// coverage of each polygon, the renderer adds color*alpha*coverage into a
// float accumulation buffer so results match the additive GL blend.
// Screen space is y-up like the GL projection.
type SoftwareRenderer struct {
	width  int
	height int
	accum  []mgl32.Vec3

	coverage *gg.Pixmap
	dc       *gg.Context
	fills    int
}

func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{}
}

func (rend *SoftwareRenderer) Init(width, height int32) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("software renderer: invalid viewport %dx%d", width, height)
	}
	rend.allocate(int(width), int(height))
	return nil
}

func (rend *SoftwareRenderer) allocate(width, height int) {
	if rend.dc != nil {
		_ = rend.dc.Close()
	}
	rend.width = width
	rend.height = height
	rend.accum = make([]mgl32.Vec3, width*height)
	rend.coverage = gg.NewPixmap(width, height)
	rend.dc = gg.NewContext(width, height, gg.WithPixmap(rend.coverage))
	rend.fills = 0
}

func (rend *SoftwareRenderer) UpdateViewport(width, height int32) {
	if rend.dc == nil || (int(width) == rend.width && int(height) == rend.height) {
		return
	}
	if width > 0 && height > 0 {
		rend.allocate(int(width), int(height))
	}
}

func (rend *SoftwareRenderer) Clear() {
	for i := range rend.accum {
		rend.accum[i] = mgl32.Vec3{ClearColorR, ClearColorG, ClearColorB}
	}
	rend.fills = 0
}

func (rend *SoftwareRenderer) FillPolygon(poly *Polygon) {
	perimeter := poly.Perimeter()
	if rend.dc == nil || len(perimeter) < 2 {
		return
	}
	rend.fills++

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i, v := range perimeter {
		x, y := float64(v.X()), float64(rend.height)-float64(v.Y())
		if i == 0 {
			rend.dc.MoveTo(x, y)
		} else {
			rend.dc.LineTo(x, y)
		}
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	rend.dc.ClosePath()
	rend.dc.SetRGBA(1, 1, 1, 1)
	if err := rend.dc.Fill(); err != nil {
		logger.Log.Debug("Software fill failed", zap.Error(err))
		return
	}

	// Anti aliasing can touch a pixel past the exact bounds
	x0, x1 := rend.clampX(minX-2), rend.clampX(maxX+2)
	y0, y1 := rend.clampY(minY-2), rend.clampY(maxY+2)
	add := poly.Color.Vec3().Mul(poly.Color.W())
	for row := y0; row <= y1; row++ {
		for col := x0; col <= x1; col++ {
			cov := rend.coverage.GetPixel(col, row).A
			if cov <= 0 {
				continue
			}
			i := (rend.height-1-row)*rend.width + col
			rend.accum[i] = rend.accum[i].Add(add.Mul(float32(cov)))
			rend.coverage.SetPixel(col, row, gg.Transparent)
		}
	}
}

func (rend *SoftwareRenderer) clampX(v float64) int {
	return int(mgl32.Clamp(float32(math.Floor(v)), 0, float32(rend.width-1)))
}

func (rend *SoftwareRenderer) clampY(v float64) int {
	return int(mgl32.Clamp(float32(math.Floor(v)), 0, float32(rend.height-1)))
}

// At returns the accumulated color of the pixel at screen (x, y), y-up.
// Values above 1 are kept, a display would saturate them.
func (rend *SoftwareRenderer) At(x, y int) mgl32.Vec3 {
	if x < 0 || y < 0 || x >= rend.width || y >= rend.height {
		return mgl32.Vec3{}
	}
	return rend.accum[y*rend.width+x]
}

// Fills reports how many polygons were rasterized since the last Clear.
func (rend *SoftwareRenderer) Fills() int {
	return rend.fills
}

func (rend *SoftwareRenderer) Cleanup() {
	if rend.dc != nil {
		_ = rend.dc.Close()
		rend.dc = nil
	}
	rend.coverage = nil
	rend.accum = nil
	rend.width, rend.height = 0, 0
}

var _ Render = (*SoftwareRenderer)(nil)
