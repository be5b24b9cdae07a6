package widgets

import (
	"slices"
	"unicode/utf8"

	"github.com/grindlemire/go-tuit"
)

// Buttons is a row of labels with one selected. Labels are drawn
// left to right on the first row exactly as given, so padding such as
// " Yes " is part of the label.
type Buttons struct {
	Labels              []string
	Selected            int
	Gap                 int // blank cells between labels
	ButtonStyle         tuit.Style
	SelectedButtonStyle tuit.Style
}

// NewButtons creates a button row selecting the first label. The selected
// label is drawn inverted until SelectedButtonStyle is changed.
func NewButtons(labels ...string) *Buttons {
	return &Buttons{
		Labels:              slices.Clone(labels),
		SelectedButtonStyle: tuit.NewStyle().Inverted(),
	}
}

// SelectLast returns a copy with the final label selected.
func (b *Buttons) SelectLast() *Buttons {
	c := *b
	c.Labels = slices.Clone(b.Labels)
	c.Selected = max(len(b.Labels)-1, 0)
	return &c
}

// Styled returns a copy using style for unselected labels and selected for
// the selected one.
func (b *Buttons) Styled(style, selected tuit.Style) *Buttons {
	c := *b
	c.Labels = slices.Clone(b.Labels)
	c.ButtonStyle = style
	c.SelectedButtonStyle = selected
	return &c
}

// SelectedLabel returns the selected label, or "" if there are none.
func (b *Buttons) SelectedLabel() string {
	if b.Selected < 0 || b.Selected >= len(b.Labels) {
		return ""
	}
	return b.Labels[b.Selected]
}

// width returns the total width of the row.
func (b *Buttons) width() int {
	w := max(len(b.Labels)-1, 0) * b.Gap
	for _, l := range b.Labels {
		w += utf8.RuneCountInString(l)
	}
	return w
}

// labelAt returns the index of the label under column x, or -1.
func (b *Buttons) labelAt(x int) int {
	pos := 0
	for i, l := range b.Labels {
		n := utf8.RuneCountInString(l)
		if x >= pos && x < pos+n {
			return i
		}
		pos += n + b.Gap
	}
	return -1
}

// Update moves the selection. A primary click on a label selects it and
// the left and right arrows step through the labels; both report
// Interacted. Enter reports LifecycleEnd.
func (b *Buttons) Update(info tuit.UpdateInfo, term tuit.TerminalConst) (tuit.UpdateResult, error) {
	switch ev := info.(type) {
	case tuit.CellClicked:
		if ev.Button != tuit.Primary {
			return tuit.NoEvent, nil
		}
		box, err := b.BoundingBox(tuit.BoundsOf(term))
		if err != nil {
			return tuit.NoEvent, err
		}
		if !hit(box, ev.Point()) {
			return tuit.NoEvent, nil
		}
		if i := b.labelAt(ev.X - box.Left()); i >= 0 {
			b.Selected = i
			return tuit.Interacted, nil
		}
	case tuit.KeyboardInput:
		switch {
		case ev.Is(tuit.KeyLeftArrow) && b.Selected > 0:
			b.Selected--
			return tuit.Interacted, nil
		case ev.Is(tuit.KeyRightArrow) && b.Selected < len(b.Labels)-1:
			b.Selected++
			return tuit.Interacted, nil
		case ev.Is(tuit.KeyEnter):
			return tuit.LifecycleEnd, nil
		}
	case tuit.KeyboardCharacter:
		if ev.State == tuit.KeyDown && (ev.Char == '\r' || ev.Char == '\n') {
			return tuit.LifecycleEnd, nil
		}
	}
	return tuit.NoEvent, nil
}

// Draw writes the labels on the first row.
func (b *Buttons) Draw(_ tuit.UpdateInfo, term tuit.Terminal) (tuit.UpdateResult, error) {
	if _, err := b.BoundingBox(tuit.BoundsOf(term)); err != nil {
		return tuit.NoEvent, err
	}

	x := 0
	for i, label := range b.Labels {
		style := b.ButtonStyle
		if i == b.Selected {
			style = b.SelectedButtonStyle
		}
		for _, r := range label {
			if c := term.CellMut(x, 0); c != nil {
				c.Character = r
				c.Style = style
			}
			x++
		}
		x += b.Gap
	}
	return tuit.NoEvent, nil
}

// BoundingBox is one row as wide as all labels together. Returns an
// *OutOfBoundsCoordinateError if that does not fit in rect.
func (b *Buttons) BoundingBox(rect tuit.Rectangle) (tuit.Rectangle, error) {
	w := b.width()
	h := min(len(b.Labels), 1)
	if w > rect.Width() || h > rect.Height() {
		return tuit.Rectangle{}, tuit.OutOfBoundsCoordinate(rect.Left()+w, rect.Top()+h)
	}
	return sized(rect.LeftTop(), w, h), nil
}

// CompletelyCovers is true when the labels fill a single-row rect with no
// gaps.
func (b *Buttons) CompletelyCovers(rect tuit.Rectangle) bool {
	return rect.Height() <= 1 && (b.Gap == 0 || len(b.Labels) < 2) && b.width() >= rect.Width()
}
