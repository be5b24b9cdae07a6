package tuit

// ViewSplit divides a terminal into two side-by-side views. On odd widths
// the left half gets the extra column.
type ViewSplit struct {
	left  View
	right View
}

// NewViewSplit splits parent vertically down the middle.
func NewViewSplit(parent Terminal) *ViewSplit {
	w, h := parent.Dimensions()
	mid := w - w/2
	return &ViewSplit{
		left:  View{parent: parent, rect: OfSize(mid, h)},
		right: View{parent: parent, rect: NewRectangle(Point{X: mid}, Point{X: w, Y: h})},
	}
}

// Left returns the left half.
func (s *ViewSplit) Left() *View {
	return &s.left
}

// Right returns the right half.
func (s *ViewSplit) Right() *View {
	return &s.right
}

// Halves returns both halves.
func (s *ViewSplit) Halves() (left, right *View) {
	return &s.left, &s.right
}
