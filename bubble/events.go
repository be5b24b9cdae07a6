package bubble

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/grindlemire/go-tuit"
)

var keyCodes = map[tea.KeyType]uint16{
	tea.KeyEnter:     tuit.KeyEnter,
	tea.KeyEsc:       tuit.KeyEscape,
	tea.KeyBackspace: tuit.KeyBackspace,
	tea.KeyTab:       tuit.KeyTab,
	tea.KeyRight:     tuit.KeyRightArrow,
	tea.KeyLeft:      tuit.KeyLeftArrow,
	tea.KeyDown:      tuit.KeyDownArrow,
	tea.KeyUp:        tuit.KeyUpArrow,
}

var mouseButtons = map[tea.MouseButton]tuit.MouseButton{
	tea.MouseButtonLeft:     tuit.Primary,
	tea.MouseButtonRight:    tuit.Secondary,
	tea.MouseButtonMiddle:   tuit.Auxiliary(0),
	tea.MouseButtonBackward: tuit.Auxiliary(1),
	tea.MouseButtonForward:  tuit.Auxiliary(2),
	tea.MouseButton10:       tuit.Auxiliary(3),
	tea.MouseButton11:       tuit.Auxiliary(4),
}

// Translate converts a Bubble Tea message into tuit update information.
// Pasted or buffered runes produce one KeyboardCharacter each. Messages
// with no tuit equivalent, such as wheel scrolling or button releases,
// produce nothing.
func Translate(msg tea.Msg) []tuit.UpdateInfo {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyRunes:
			infos := make([]tuit.UpdateInfo, 0, len(msg.Runes))
			for _, r := range msg.Runes {
				infos = append(infos, tuit.KeyboardCharacter{Char: r, State: tuit.KeyDown})
			}
			return infos
		case tea.KeySpace:
			return []tuit.UpdateInfo{tuit.KeyboardCharacter{Char: ' ', State: tuit.KeyDown}}
		}
		if code, ok := keyCodes[msg.Type]; ok {
			return []tuit.UpdateInfo{tuit.KeyboardInput{Code: code, State: tuit.KeyDown}}
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		if button, ok := mouseButtons[msg.Button]; ok {
			return []tuit.UpdateInfo{tuit.CellClicked{X: msg.X, Y: msg.Y, Button: button}}
		}

	case tea.WindowSizeMsg:
		return []tuit.UpdateInfo{tuit.TerminalResized{}}
	}

	return nil
}
