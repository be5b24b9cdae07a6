package widgets

import (
	"unicode/utf8"

	"github.com/grindlemire/go-tuit"
)

// CenteredText is text placed in the middle of its region. Text longer
// than the region is wrapped, and the wrapped block is centred.
type CenteredText struct {
	Text  string
	Style tuit.Style
}

// NewCenteredText creates an unstyled CenteredText.
func NewCenteredText(s string) CenteredText {
	return CenteredText{Text: s}
}

// Styled returns a copy of c using style.
func (c CenteredText) Styled(style tuit.Style) CenteredText {
	c.Style = style
	return c
}

// Update reports Interacted for a primary click inside the text.
func (c CenteredText) Update(info tuit.UpdateInfo, term tuit.TerminalConst) (tuit.UpdateResult, error) {
	click, ok := info.(tuit.CellClicked)
	if !ok || click.Button != tuit.Primary {
		return tuit.NoEvent, nil
	}
	box, err := c.BoundingBox(tuit.BoundsOf(term))
	if err != nil {
		return tuit.NoEvent, err
	}
	if hit(box, click.Point()) {
		return tuit.Interacted, nil
	}
	return tuit.NoEvent, nil
}

// Draw writes the text into a view of its bounding box.
func (c CenteredText) Draw(info tuit.UpdateInfo, term tuit.Terminal) (tuit.UpdateResult, error) {
	box, err := c.BoundingBox(tuit.BoundsOf(term))
	if err != nil {
		return tuit.NoEvent, err
	}
	view, err := tuit.NewView(term, box)
	if err != nil {
		return tuit.NoEvent, err
	}
	if _, err := (Text{Text: c.Text, Style: c.Style}).Draw(info, view); err != nil {
		return tuit.NoEvent, err
	}
	return tuit.NoEvent, nil
}

// BoundingBox is the wrapped text block, capped at the region's height,
// centred on the region's midpoint.
func (c CenteredText) BoundingBox(rect tuit.Rectangle) (tuit.Rectangle, error) {
	n := utf8.RuneCountInString(c.Text)
	w, h := rect.Dimensions()
	if w == 0 || n == 0 {
		return sized(rect.LeftTop(), 0, 0), nil
	}

	height := min((n+w-1)/w, h)
	width := min(n, w)

	left := rect.Left() + w/2 - width/2
	top := rect.Top() + h/2 - height/2
	return sized(tuit.Point{X: left, Y: top}, width, height), nil
}

// CompletelyCovers is true when there are at least as many characters as
// cells in rect.
func (c CenteredText) CompletelyCovers(rect tuit.Rectangle) bool {
	return rect.Area() <= utf8.RuneCountInString(c.Text)
}
