package engine

import (
	"Lightsim/internal/input"
	"Lightsim/internal/renderer"
)

// ScriptedFrame is the input a HeadlessBackend reports for one frame.
type ScriptedFrame struct {
	Keys             []input.Key
	Button           bool
	CursorX, CursorY float64
	Close            bool
}

// HeadlessBackend runs a session without a window: input comes from a script
// and frames are rasterized by the software renderer. A close is requested
// once the script runs out.
type HeadlessBackend struct {
	Script  []ScriptedFrame
	InitErr error
	// OnPresent sees the finished frame before the script advances.
	OnPresent func(frame int, rend *renderer.SoftwareRenderer)

	width, height int
	frame         int
	rend          *renderer.SoftwareRenderer

	Presented int
	Synced    int
	Destroyed int
}

func NewHeadlessBackend(script ...ScriptedFrame) *HeadlessBackend {
	return &HeadlessBackend{
		Script: script,
		rend:   renderer.NewSoftwareRenderer(),
	}
}

func (b *HeadlessBackend) Init(cfg Config) error {
	if b.InitErr != nil {
		return b.InitErr
	}
	b.width, b.height = cfg.Width, cfg.Height
	return nil
}

func (b *HeadlessBackend) current() (ScriptedFrame, bool) {
	if b.frame >= len(b.Script) {
		return ScriptedFrame{}, false
	}
	return b.Script[b.frame], true
}

func (b *HeadlessBackend) KeyDown(key input.Key) bool {
	frame, _ := b.current()
	for _, k := range frame.Keys {
		if k == key {
			return true
		}
	}
	return false
}

func (b *HeadlessBackend) ButtonDown(button input.Button) bool {
	frame, _ := b.current()
	return button == input.ButtonPrimary && frame.Button
}

func (b *HeadlessBackend) CursorPos() (float64, float64) {
	frame, _ := b.current()
	return frame.CursorX, frame.CursorY
}

func (b *HeadlessBackend) ViewportSize() (int, int) {
	return b.width, b.height
}

func (b *HeadlessBackend) CloseRequested() bool {
	frame, ok := b.current()
	return !ok || frame.Close
}

func (b *HeadlessBackend) Renderer() renderer.Render {
	return b.rend
}

// Software exposes the frame buffer of the last frame.
func (b *HeadlessBackend) Software() *renderer.SoftwareRenderer {
	return b.rend
}

func (b *HeadlessBackend) Present() {
	if b.OnPresent != nil {
		b.OnPresent(b.frame, b.rend)
	}
	b.Presented++
	b.frame++
}

func (b *HeadlessBackend) Sync(fps int) {
	b.Synced++
}

func (b *HeadlessBackend) Destroy() {
	b.Destroyed++
}

var _ Backend = (*HeadlessBackend)(nil)
