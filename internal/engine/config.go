package engine

import (
	"errors"
	"fmt"

	"Lightsim/internal/renderer"
	"Lightsim/internal/world"
)

// PlacementPolicy decides when holding the pointer button places lights.
type PlacementPolicy int

const (
	// PlacementEdge places one light per press.
	PlacementEdge PlacementPolicy = iota
	// PlacementLevel places one light every frame the button is held.
	PlacementLevel
)

func (p PlacementPolicy) String() string {
	switch p {
	case PlacementEdge:
		return "edge"
	case PlacementLevel:
		return "level"
	default:
		return "unknown"
	}
}

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Title  string
	Width  int // Viewport width, also the chunk width
	Height int // Viewport height, also the chunk height
	FPS    int
	VSync  bool

	InitialRadius   float32
	InitialSegments float32
	LightsPerChunk  int

	// FlipPointerY mirrors pointer y against the viewport height so a top-left
	// origin pointer lines up with the y-up projection.
	FlipPointerY bool
	Placement    PlacementPolicy

	// Seed for the session random source, 0 picks one from the clock.
	Seed  int64
	Debug bool
}

func DefaultConfig() Config {
	return Config{
		Title:           "The Rhomboid of Desire",
		Width:           1280,
		Height:          720,
		FPS:             120,
		VSync:           true,
		InitialRadius:   renderer.DefaultMaxRadius,
		InitialSegments: renderer.DefaultNumSegments,
		LightsPerChunk:  world.DefaultLightsPerChunk,
		FlipPointerY:    true,
		Placement:       PlacementEdge,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.FPS)
	case c.LightsPerChunk <= 0:
		return fmt.Errorf("%w: lights per chunk %d", ErrInvalidConfig, c.LightsPerChunk)
	case c.Placement != PlacementEdge && c.Placement != PlacementLevel:
		return fmt.Errorf("%w: placement policy %d", ErrInvalidConfig, c.Placement)
	}
	return nil
}
