package widgets

import "github.com/grindlemire/go-tuit"

// Layout insets the region handed to a widget by a fixed number of cells on
// every side.
//
// A margin keeps the inset as part of the widget: its bounding box grows by
// the margin again, so combinators reserve the empty space around it. A
// shrink only narrows where the child may draw and reports the child's box
// as is.
type Layout struct {
	Child  tuit.BoundingBox
	Inset  int
	Margin bool
}

// WithMargin surrounds child with n blank cells that count toward its
// bounding box.
func WithMargin(child tuit.BoundingBox, n int) *Layout {
	return &Layout{Child: child, Inset: n, Margin: true}
}

// WithShrink draws child n cells inside its region.
func WithShrink(child tuit.BoundingBox, n int) *Layout {
	return &Layout{Child: child, Inset: n}
}

// inner returns rect shrunk by the inset. Returns an
// *OutOfBoundsCoordinateError at the would-be left-top corner if the inset
// is larger than rect.
func (l *Layout) inner(rect tuit.Rectangle) (tuit.Rectangle, error) {
	if l.Inset < 0 {
		return tuit.Rectangle{}, tuit.OutOfBoundsCoordinate(rect.Left()+l.Inset, rect.Top()+l.Inset)
	}
	r, ok := rect.Inset(tuit.UniformEdges(l.Inset))
	if !ok {
		return tuit.Rectangle{}, tuit.OutOfBoundsCoordinate(rect.Left()+l.Inset, rect.Top()+l.Inset)
	}
	return r, nil
}

// Update forwards the event with clicks translated into the inset region.
func (l *Layout) Update(info tuit.UpdateInfo, term tuit.TerminalConst) (tuit.UpdateResult, error) {
	inner, err := l.inner(tuit.BoundsOf(term))
	if err != nil {
		return tuit.NoEvent, err
	}
	view, err := tuit.NewConstView(term, inner)
	if err != nil {
		return tuit.NoEvent, err
	}
	return l.Child.Update(clickIn(info, inner), view)
}

// Draw draws the child into a view of the inset region.
func (l *Layout) Draw(info tuit.UpdateInfo, term tuit.Terminal) (tuit.UpdateResult, error) {
	inner, err := l.inner(tuit.BoundsOf(term))
	if err != nil {
		return tuit.NoEvent, err
	}
	view, err := tuit.NewView(term, inner)
	if err != nil {
		return tuit.NoEvent, err
	}
	return l.Child.Draw(clickIn(info, inner), view)
}

// BoundingBox is the child's box inside the inset region, grown back by the
// inset for a margin.
func (l *Layout) BoundingBox(rect tuit.Rectangle) (tuit.Rectangle, error) {
	inner, err := l.inner(rect)
	if err != nil {
		return tuit.Rectangle{}, err
	}
	box, err := l.Child.BoundingBox(inner)
	if err != nil {
		return tuit.Rectangle{}, err
	}
	if l.Margin {
		return box.Outset(tuit.UniformEdges(l.Inset)), nil
	}
	return box, nil
}

// CompletelyCovers is true only when nothing is inset and the child covers
// rect. The inset cells are never drawn.
func (l *Layout) CompletelyCovers(rect tuit.Rectangle) bool {
	return l.Inset == 0 && l.Child.CompletelyCovers(rect)
}
