package world

import (
	"math/rand"

	"Lightsim/internal/renderer"
)

// DefaultLightsPerChunk is how many lights a freshly visited chunk receives.
const DefaultLightsPerChunk = 10

// Generator populates chunks with randomly placed lights. It does not track
// what it has generated, callers check a ChunkSet first.
type Generator struct {
	ChunkWidth     int
	ChunkHeight    int
	LightsPerChunk int

	rng *rand.Rand
}

// NewGenerator creates a generator drawing positions and colors from rng,
// which is shared with the rest of the session.
func NewGenerator(chunkWidth, chunkHeight int, rng *rand.Rand) *Generator {
	return &Generator{
		ChunkWidth:     chunkWidth,
		ChunkHeight:    chunkHeight,
		LightsPerChunk: DefaultLightsPerChunk,
		rng:            rng,
	}
}

// GenerateChunk appends LightsPerChunk lights at integer positions inside the
// chunk rectangle to the store.
func (g *Generator) GenerateChunk(store *LightStore, key ChunkKey) {
	minX, minY, _, _ := key.Bounds(g.ChunkWidth, g.ChunkHeight)
	for i := 0; i < g.LightsPerChunk; i++ {
		x := minX + g.rng.Intn(g.ChunkWidth)
		y := minY + g.rng.Intn(g.ChunkHeight)
		store.Add(renderer.NewLight(float32(x), float32(y), g.rng))
	}
}
