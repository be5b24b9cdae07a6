package widgets

import (
	"github.com/grindlemire/go-tuit"
	"github.com/grindlemire/go-tuit/internal/debug"
)

// Stacked draws one widget above another. Nest OnTopOf to build taller
// stacks; the bottom widget always keeps its full height and the top one is
// clipped when space runs out.
type Stacked struct {
	Top    tuit.BoundingBox
	Bottom tuit.BoundingBox
}

// OnTopOf stacks top above bottom.
func OnTopOf(top, bottom tuit.BoundingBox) *Stacked {
	return &Stacked{Top: top, Bottom: bottom}
}

// split returns the row dividing the two widgets inside rect, relative to
// rect's top edge, and the height the top widget asked for.
func (s *Stacked) split(rect tuit.Rectangle) (split, topHeight int, err error) {
	topBox, err := s.Top.BoundingBox(rect)
	if err != nil {
		return 0, 0, err
	}
	bottomBox, err := s.Bottom.BoundingBox(rect)
	if err != nil {
		return 0, 0, err
	}
	split = max(min(topBox.Height(), rect.Height()-bottomBox.Height()), 0)
	if split < topBox.Height() {
		debug.Log("stacked: clipping top widget", "want", topBox.Height(), "have", split, "rect", rect)
	}
	return split, topBox.Height(), nil
}

// regions returns the top and bottom parts of rect and the full height of
// the top widget, which is larger than top when it is clipped.
func (s *Stacked) regions(rect tuit.Rectangle) (top, bottom tuit.Rectangle, topHeight int, err error) {
	split, topHeight, err := s.split(rect)
	if err != nil {
		return top, bottom, 0, err
	}
	top = rect.BottomTo(rect.Top() + split)
	bottom = rect.TopTo(rect.Top() + split)
	return top, bottom, topHeight, nil
}

// overflow copies rect out of term into a grid height rows tall, so a
// clipped widget can draw all of itself. Rows past rect start blank.
func overflow(term tuit.TerminalConst, rect tuit.Rectangle, height int) *tuit.ConstantSize {
	grid := tuit.NewConstantSize(rect.Width(), height)
	grid.SetDefaultStyle(term.DefaultStyle())
	for y := range rect.Height() {
		for x := range rect.Width() {
			if c, ok := term.Cell(rect.Left()+x, rect.Top()+y); ok {
				*grid.CellMut(x, y) = c
			}
		}
	}
	return grid
}

// copyBack writes the rows of grid that fit in rect back into term.
func copyBack(term tuit.Terminal, rect tuit.Rectangle, grid tuit.TerminalConst) {
	for y := range rect.Height() {
		for x := range rect.Width() {
			c, ok := grid.Cell(x, y)
			dst := term.CellMut(rect.Left()+x, rect.Top()+y)
			if ok && dst != nil {
				*dst = c
			}
		}
	}
}

// Update routes clicks to the widget under them, translated into its
// region. Other events go to both widgets.
func (s *Stacked) Update(info tuit.UpdateInfo, term tuit.TerminalConst) (tuit.UpdateResult, error) {
	top, bottom, topHeight, err := s.regions(tuit.BoundsOf(term))
	if err != nil {
		return tuit.NoEvent, err
	}

	bottomView, err := tuit.NewConstView(term, bottom)
	if err != nil {
		return tuit.NoEvent, err
	}
	rb, err := s.Bottom.Update(clickIn(info, bottom), bottomView)
	if err != nil {
		return rb, err
	}

	var topView tuit.TerminalConst
	if topHeight > top.Height() {
		topView = overflow(term, top, topHeight)
	} else if topView, err = tuit.NewConstView(term, top); err != nil {
		return tuit.NoEvent, err
	}
	rt, err := s.Top.Update(clickIn(info, top), topView)
	if err != nil {
		return rt, err
	}
	return tuit.MergeResults(rt, rb), nil
}

// Draw draws the bottom widget first into the rows below the split, then the
// top widget into the rows above it. A clipped top widget draws at its full
// height off screen and only the rows above the split are kept.
func (s *Stacked) Draw(info tuit.UpdateInfo, term tuit.Terminal) (tuit.UpdateResult, error) {
	top, bottom, topHeight, err := s.regions(tuit.BoundsOf(term))
	if err != nil {
		return tuit.NoEvent, err
	}

	bottomView, err := tuit.NewView(term, bottom)
	if err != nil {
		return tuit.NoEvent, err
	}
	rb, err := s.Bottom.Draw(clickIn(info, bottom), bottomView)
	if err != nil {
		return rb, err
	}

	if topHeight > top.Height() {
		grid := overflow(term, top, topHeight)
		rt, err := s.Top.Draw(clickIn(info, top), grid)
		if err != nil {
			return rt, err
		}
		copyBack(term, top, grid)
		return tuit.MergeResults(rt, rb), nil
	}

	topView, err := tuit.NewView(term, top)
	if err != nil {
		return tuit.NoEvent, err
	}
	rt, err := s.Top.Draw(clickIn(info, top), topView)
	if err != nil {
		return rt, err
	}
	return tuit.MergeResults(rt, rb), nil
}

// BoundingBox is as wide as the wider widget and as tall as both together,
// anchored at rect's left-top corner. Returns an
// *OutOfBoundsCoordinateError when the stack does not fit.
func (s *Stacked) BoundingBox(rect tuit.Rectangle) (tuit.Rectangle, error) {
	topBox, err := s.Top.BoundingBox(rect)
	if err != nil {
		return tuit.Rectangle{}, err
	}
	bottomBox, err := s.Bottom.BoundingBox(rect)
	if err != nil {
		return tuit.Rectangle{}, err
	}

	w := max(topBox.Width(), bottomBox.Width())
	h := topBox.Height() + bottomBox.Height()
	if w > rect.Width() || h > rect.Height() {
		return tuit.Rectangle{}, tuit.OutOfBoundsCoordinate(rect.Left()+w, rect.Top()+h)
	}
	return sized(rect.LeftTop(), w, h), nil
}

// CompletelyCovers is true when each widget covers its share of rect.
func (s *Stacked) CompletelyCovers(rect tuit.Rectangle) bool {
	top, bottom, _, err := s.regions(rect)
	if err != nil {
		return false
	}
	return s.Top.CompletelyCovers(top) && s.Bottom.CompletelyCovers(bottom)
}
