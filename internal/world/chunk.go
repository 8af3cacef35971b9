package world

import "fmt"

// ChunkKey identifies a chunk of the world grid.
type ChunkKey struct {
	X, Y int
}

func (k ChunkKey) String() string {
	return fmt.Sprintf("%d,%d", k.X, k.Y)
}

// KeyFor returns the chunk containing the world position (x, y). Division
// rounds toward negative infinity so x in [-w, 0) maps to chunk -1.
func KeyFor(x, y, chunkWidth, chunkHeight int) ChunkKey {
	return ChunkKey{
		X: floorDiv(x, chunkWidth),
		Y: floorDiv(y, chunkHeight),
	}
}

// Bounds returns the half open world rectangle [minX, maxX) x [minY, maxY)
// covered by the chunk.
func (k ChunkKey) Bounds(chunkWidth, chunkHeight int) (minX, minY, maxX, maxY int) {
	minX = k.X * chunkWidth
	minY = k.Y * chunkHeight
	return minX, minY, minX + chunkWidth, minY + chunkHeight
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ChunkSet records which chunks have been generated. It only grows.
type ChunkSet struct {
	keys map[ChunkKey]struct{}
}

func NewChunkSet() *ChunkSet {
	return &ChunkSet{keys: make(map[ChunkKey]struct{})}
}

func (s *ChunkSet) Contains(key ChunkKey) bool {
	_, ok := s.keys[key]
	return ok
}

// Add records the key and reports whether it was new.
func (s *ChunkSet) Add(key ChunkKey) bool {
	if s.Contains(key) {
		return false
	}
	s.keys[key] = struct{}{}
	return true
}

func (s *ChunkSet) Len() int {
	return len(s.keys)
}
