package widgets

import "github.com/grindlemire/go-tuit"

// Sweeper clears its whole region with blank cells in one style.
type Sweeper struct {
	Style tuit.Style
}

// NewSweeper creates a Sweeper that paints with style.
func NewSweeper(style tuit.Style) Sweeper {
	return Sweeper{Style: style}
}

// SweeperOfColour creates a Sweeper with background c.
func SweeperOfColour(c tuit.Colour) Sweeper {
	return Sweeper{Style: tuit.NewStyle().Background(c)}
}

// Update ignores every event.
func (s Sweeper) Update(tuit.UpdateInfo, tuit.TerminalConst) (tuit.UpdateResult, error) {
	return tuit.NoEvent, nil
}

// Draw overwrites every cell with a space in the sweeper's style.
func (s Sweeper) Draw(_ tuit.UpdateInfo, term tuit.Terminal) (tuit.UpdateResult, error) {
	tuit.Fill(term, tuit.NewCell(' ', s.Style))
	return tuit.NoEvent, nil
}

// BoundingBox is the whole region.
func (s Sweeper) BoundingBox(rect tuit.Rectangle) (tuit.Rectangle, error) {
	return rect, nil
}

// CompletelyCovers is always true.
func (s Sweeper) CompletelyCovers(tuit.Rectangle) bool {
	return true
}
