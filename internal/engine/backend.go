package engine

import (
	"Lightsim/internal/input"
	"Lightsim/internal/renderer"
)

// Backend is the display and input device a session runs on.
type Backend interface {
	input.Device

	// Init acquires the display surface and input devices. Destroy must
	// release whatever was acquired even when Init fails half way.
	Init(cfg Config) error
	ViewportSize() (width, height int)
	CloseRequested() bool
	Renderer() renderer.Render
	// Present shows the frame and pumps window events.
	Present()
	// Sync blocks until the next frame slot for the target frame rate.
	Sync(fps int)
	// Destroy is safe to call more than once.
	Destroy()
}
