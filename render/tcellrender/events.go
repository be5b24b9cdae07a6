package tcellrender

import (
	"github.com/gdamore/tcell/v2"
	"github.com/grindlemire/go-tuit"
)

var keyCodes = map[tcell.Key]uint16{
	tcell.KeyEnter:      tuit.KeyEnter,
	tcell.KeyEscape:     tuit.KeyEscape,
	tcell.KeyBackspace:  tuit.KeyBackspace,
	tcell.KeyBackspace2: tuit.KeyBackspace,
	tcell.KeyTab:        tuit.KeyTab,
	tcell.KeyRight:      tuit.KeyRightArrow,
	tcell.KeyLeft:       tuit.KeyLeftArrow,
	tcell.KeyDown:       tuit.KeyDownArrow,
	tcell.KeyUp:         tuit.KeyUpArrow,
}

var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button tuit.MouseButton
}{
	{tcell.ButtonPrimary, tuit.Primary},
	{tcell.ButtonSecondary, tuit.Secondary},
	{tcell.ButtonMiddle, tuit.Auxiliary(0)},
	{tcell.Button4, tuit.Auxiliary(1)},
	{tcell.Button5, tuit.Auxiliary(2)},
	{tcell.Button6, tuit.Auxiliary(3)},
	{tcell.Button7, tuit.Auxiliary(4)},
	{tcell.Button8, tuit.Auxiliary(5)},
}

// Translator turns tcell events into tuit update information. tcell reports
// the full button state on every mouse event, so the translator remembers
// the previous state and only reports a click when a button goes down.
type Translator struct {
	buttons tcell.ButtonMask
}

// Translate converts ev. Events with no tuit equivalent become NoInfo.
func (tr *Translator) Translate(ev tcell.Event) tuit.UpdateInfo {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return tuit.KeyboardCharacter{Char: ev.Rune(), State: tuit.KeyDown}
		}
		if code, ok := keyCodes[ev.Key()]; ok {
			return tuit.KeyboardInput{Code: code, State: tuit.KeyDown}
		}

	case *tcell.EventMouse:
		prev := tr.buttons
		tr.buttons = ev.Buttons()
		pressed := tr.buttons &^ prev

		x, y := ev.Position()
		for _, m := range mouseButtons {
			if pressed&m.mask != 0 {
				return tuit.CellClicked{X: x, Y: y, Button: m.button}
			}
		}

	case *tcell.EventResize:
		return tuit.TerminalResized{}
	}

	return tuit.NoInfo{}
}
