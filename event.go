package tuit

import (
	"fmt"
	"time"
)

// UpdateInfo describes an input event handed to a widget.
// Use a type switch to handle specific event types. A nil UpdateInfo is
// treated the same as NoInfo.
type UpdateInfo interface {
	// isUpdateInfo is a marker method to prevent external implementations.
	isUpdateInfo()
}

// MouseButton identifies which mouse button produced a click.
type MouseButton uint16

const (
	// Primary is the left mouse button.
	Primary MouseButton = iota
	// Secondary is the right mouse button.
	Secondary
	auxiliaryBase
)

// Auxiliary returns the n-th extra mouse button (middle click, side buttons).
func Auxiliary(n uint16) MouseButton {
	return auxiliaryBase + MouseButton(n)
}

// AuxiliaryIndex returns n for a button created with Auxiliary(n).
func (b MouseButton) AuxiliaryIndex() (uint16, bool) {
	if b < auxiliaryBase {
		return 0, false
	}
	return uint16(b - auxiliaryBase), true
}

func (b MouseButton) String() string {
	switch b {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	}
	n, _ := b.AuxiliaryIndex()
	return fmt.Sprintf("auxiliary(%d)", n)
}

// KeyState is the press state of a key. States are ordered
// KeyUp < KeyDown < KeyHeld.
type KeyState uint8

const (
	// KeyUp means the key was released.
	KeyUp KeyState = iota
	// KeyDown means the key was just pressed.
	KeyDown
	// KeyHeld means the key is being held and repeating.
	KeyHeld
)

func (s KeyState) String() string {
	switch s {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyHeld:
		return "held"
	}
	return fmt.Sprintf("KeyState(%d)", uint8(s))
}

// USB HID keyboard usage codes for keys that have no printable character.
const (
	KeyEnter      uint16 = 0x28
	KeyEscape     uint16 = 0x29
	KeyBackspace  uint16 = 0x2A
	KeyTab        uint16 = 0x2B
	KeyRightArrow uint16 = 0x4F
	KeyLeftArrow  uint16 = 0x50
	KeyDownArrow  uint16 = 0x51
	KeyUpArrow    uint16 = 0x52
)

// CellClicked is a mouse click on the cell at (X, Y).
type CellClicked struct {
	X, Y   int
	Button MouseButton
}

func (CellClicked) isUpdateInfo() {}

// Point returns the clicked coordinate.
func (e CellClicked) Point() Point {
	return Point{X: e.X, Y: e.Y}
}

// KeyboardCharacter is a printable key.
type KeyboardCharacter struct {
	Char  rune
	State KeyState
}

func (KeyboardCharacter) isUpdateInfo() {}

// KeyboardInput is a key identified by its USB HID usage code.
type KeyboardInput struct {
	Code  uint16
	State KeyState
}

func (KeyboardInput) isUpdateInfo() {}

// Is reports whether the event is the given key in the KeyDown state.
func (e KeyboardInput) Is(code uint16) bool {
	return e.Code == code && e.State == KeyDown
}

// TimeDelta reports time passing since the previous update.
type TimeDelta struct {
	Elapsed time.Duration
}

func (TimeDelta) isUpdateInfo() {}

// TerminalResized is sent after the display changes size.
type TerminalResized struct{}

func (TerminalResized) isUpdateInfo() {}

// NoInfo carries nothing; Drawn passes it to Draw.
type NoInfo struct{}

func (NoInfo) isUpdateInfo() {}

// MouseRelativeTo translates a click into coordinates relative to rect's
// left-top corner. Clicks left of or above rect become NoInfo. Every other
// event is returned unchanged.
func MouseRelativeTo(info UpdateInfo, rect Rectangle) UpdateInfo {
	click, ok := info.(CellClicked)
	if !ok {
		if info == nil {
			return NoInfo{}
		}
		return info
	}
	rel := Point{X: click.X, Y: click.Y}.Sub(rect.LeftTop())
	if rel.X < 0 || rel.Y < 0 {
		return NoInfo{}
	}
	click.X, click.Y = rel.X, rel.Y
	return click
}

// UpdateResult is the outcome of handling an event. Results are ordered
// NoEvent < Interacted < LifecycleEnd so combined results can take the max.
type UpdateResult uint8

const (
	// NoEvent means the widget ignored the event.
	NoEvent UpdateResult = iota
	// Interacted means the event changed the widget.
	Interacted
	// LifecycleEnd means the widget is finished and the host should stop.
	LifecycleEnd
)

func (r UpdateResult) String() string {
	switch r {
	case NoEvent:
		return "no-event"
	case Interacted:
		return "interacted"
	case LifecycleEnd:
		return "lifecycle-end"
	}
	return fmt.Sprintf("UpdateResult(%d)", uint8(r))
}

// MergeResults returns the greatest of the results, or NoEvent if none
// are given.
func MergeResults(results ...UpdateResult) UpdateResult {
	out := NoEvent
	for _, r := range results {
		out = max(out, r)
	}
	return out
}
