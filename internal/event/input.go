package event

import "strings"

// Input is a raw terminal event: Key, Mouse or Resize.
type Input interface {
	input()
}

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
)

func (m Modifiers) String() string {
	parts := make([]string, 0, 3)
	if m&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if m&ModShift != 0 {
		parts = append(parts, "shift")
	}
	return strings.Join(parts, "+")
}

// Key is a key press. Name is the backend's canonical spelling, for example
// "q", "enter" or "ctrl+c". Runes holds typed text, if any.
type Key struct {
	Name      string
	Runes     []rune
	Modifiers Modifiers
}

func (Key) input() {}

func (k Key) String() string {
	return k.Name
}

// MouseKind is what the pointer did.
type MouseKind int

const (
	MouseDown MouseKind = iota
	MouseUp
	MouseDrag
	MouseMoved
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

// MouseButton is the button involved in a Down, Up or Drag.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Mouse is a pointer event at cell (X, Y).
type Mouse struct {
	X, Y      int
	Kind      MouseKind
	Button    MouseButton
	Modifiers Modifiers
}

func (Mouse) input() {}

// Resize reports a new terminal size.
type Resize struct {
	Width, Height int
}

func (Resize) input() {}
