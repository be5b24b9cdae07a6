package tuit

// Widget is anything that can be drawn into a terminal and can react to
// input.
//
// Update must not write to the terminal. Draw may write anywhere in the
// terminal it is handed; combinators hand their children a View so writes
// stay inside the child's region.
type Widget interface {
	Update(info UpdateInfo, t TerminalConst) (UpdateResult, error)
	Draw(info UpdateInfo, t Terminal) (UpdateResult, error)
}

// BoundingBox is implemented by widgets that can report where they draw.
type BoundingBox interface {
	Widget
	// BoundingBox returns the region the widget would occupy when handed
	// rect. The result lies inside rect.
	BoundingBox(rect Rectangle) (Rectangle, error)
	// CompletelyCovers reports whether drawing the widget overwrites every
	// cell of rect.
	CompletelyCovers(rect Rectangle) bool
}

// Drawn draws w with NoInfo.
func Drawn(w Widget, t Terminal) (UpdateResult, error) {
	return w.Draw(NoInfo{}, t)
}

// CoveredIn reports whether b completely covers its own bounding box
// inside t. Returns false if the bounding box cannot be computed.
func CoveredIn(b BoundingBox, t Metadata) bool {
	box, err := b.BoundingBox(BoundsOf(t))
	if err != nil {
		return false
	}
	return b.CompletelyCovers(box)
}
