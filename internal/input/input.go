package input

// Key is a logical control, backends map it to physical keys.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyFast
	KeyZoomIn
	KeyZoomOut
	KeySegmentsDown
	KeySegmentsUp
	KeyQuit
	keyCount
)

var keyNames = [keyCount]string{
	KeyUp:           "up",
	KeyDown:         "down",
	KeyLeft:         "left",
	KeyRight:        "right",
	KeyFast:         "fast",
	KeyZoomIn:       "zoom-in",
	KeyZoomOut:      "zoom-out",
	KeySegmentsDown: "segments-down",
	KeySegmentsUp:   "segments-up",
	KeyQuit:         "quit",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// AllKeys lists every logical key.
func AllKeys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

type Button int

const (
	ButtonPrimary Button = iota
	buttonCount
)

// Device is polled once per frame for the raw held state of keys and buttons.
type Device interface {
	KeyDown(key Key) bool
	ButtonDown(button Button) bool
	CursorPos() (x, y float64)
}

// State is the input snapshot for one frame. JustPressed and JustReleased
// are true only on the frame the held state changed.
type State struct {
	Pressed      [keyCount]bool
	JustPressed  [keyCount]bool
	JustReleased [keyCount]bool

	ButtonPressed      [buttonCount]bool
	ButtonJustPressed  [buttonCount]bool
	ButtonJustReleased [buttonCount]bool

	MouseX, MouseY float64
}

// Poll reads the device and updates the edges against the previous frame.
func (s *State) Poll(d Device) {
	for k := Key(0); k < keyCount; k++ {
		down := d.KeyDown(k)
		s.JustPressed[k] = down && !s.Pressed[k]
		s.JustReleased[k] = !down && s.Pressed[k]
		s.Pressed[k] = down
	}

	for b := Button(0); b < buttonCount; b++ {
		down := d.ButtonDown(b)
		s.ButtonJustPressed[b] = down && !s.ButtonPressed[b]
		s.ButtonJustReleased[b] = !down && s.ButtonPressed[b]
		s.ButtonPressed[b] = down
	}

	s.MouseX, s.MouseY = d.CursorPos()
}

func (s *State) Held(k Key) bool {
	return s.Pressed[k]
}

func (s *State) ButtonHeld(b Button) bool {
	return s.ButtonPressed[b]
}

func (s *State) ButtonPressedThisFrame(b Button) bool {
	return s.ButtonJustPressed[b]
}
