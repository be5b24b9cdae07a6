package widgets

import (
	"iter"
	"unicode/utf8"

	"github.com/grindlemire/go-tuit"
)

// Text writes a string into the terminal row by row, starting at the
// top-left cell and wrapping at the right edge.
type Text struct {
	Text  string
	Style tuit.Style
}

// NewText creates an unstyled Text.
func NewText(s string) Text {
	return Text{Text: s}
}

// Styled returns a copy of t using style.
func (t Text) Styled(style tuit.Style) Text {
	t.Style = style
	return t
}

// Len returns the number of characters in the text.
func (t Text) Len() int {
	return utf8.RuneCountInString(t.Text)
}

// Update reports Interacted for a primary click inside the text.
func (t Text) Update(info tuit.UpdateInfo, term tuit.TerminalConst) (tuit.UpdateResult, error) {
	click, ok := info.(tuit.CellClicked)
	if !ok || click.Button != tuit.Primary {
		return tuit.NoEvent, nil
	}
	box, err := t.BoundingBox(tuit.BoundsOf(term))
	if err != nil {
		return tuit.NoEvent, err
	}
	if hit(box, click.Point()) {
		return tuit.Interacted, nil
	}
	return tuit.NoEvent, nil
}

// Draw writes the characters in order. If the terminal runs out of cells,
// the characters that fit are kept and an *OutOfBoundsCharacterError
// names the first one that did not.
func (t Text) Draw(_ tuit.UpdateInfo, term tuit.Terminal) (tuit.UpdateResult, error) {
	next, stop := iter.Pull(term.CellsMut())
	defer stop()

	idx := 0
	for _, r := range t.Text {
		cell, ok := next()
		if !ok {
			return tuit.NoEvent, tuit.OutOfBoundsCharacter(idx)
		}
		cell.Character = r
		cell.Style = t.Style
		idx++
	}
	return tuit.NoEvent, nil
}

// BoundingBox is as wide as the text or the region, whichever is smaller,
// and as tall as the number of wrapped rows. Text that needs more rows
// than rect has returns an *OutOfBoundsCharacterError at rect's area.
func (t Text) BoundingBox(rect tuit.Rectangle) (tuit.Rectangle, error) {
	n := t.Len()
	w, h := rect.Dimensions()
	if n == 0 {
		return sized(rect.LeftTop(), 0, 0), nil
	}
	if w == 0 {
		return tuit.Rectangle{}, tuit.OutOfBoundsCharacter(0)
	}
	rows := (n + w - 1) / w
	if rows > h {
		return tuit.Rectangle{}, tuit.OutOfBoundsCharacter(rect.Area())
	}
	return sized(rect.LeftTop(), min(n, w), rows), nil
}

// CompletelyCovers is true when there are at least as many characters as
// cells in rect.
func (t Text) CompletelyCovers(rect tuit.Rectangle) bool {
	return t.Len() >= rect.Area()
}
