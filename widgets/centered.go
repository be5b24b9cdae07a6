package widgets

import "github.com/grindlemire/go-tuit"

// Center places a widget in the middle of its region at the widget's
// natural size.
type Center struct {
	Child tuit.BoundingBox
}

// Centered wraps child so it is drawn centred.
func Centered(child tuit.BoundingBox) *Center {
	return &Center{Child: child}
}

// Update forwards the event with clicks translated into the child's box.
func (c *Center) Update(info tuit.UpdateInfo, term tuit.TerminalConst) (tuit.UpdateResult, error) {
	box, err := c.BoundingBox(tuit.BoundsOf(term))
	if err != nil {
		return tuit.NoEvent, err
	}
	view, err := tuit.NewConstView(term, box)
	if err != nil {
		return tuit.NoEvent, err
	}
	return c.Child.Update(clickIn(info, box), view)
}

// Draw draws the child into a view of the centred box.
func (c *Center) Draw(info tuit.UpdateInfo, term tuit.Terminal) (tuit.UpdateResult, error) {
	box, err := c.BoundingBox(tuit.BoundsOf(term))
	if err != nil {
		return tuit.NoEvent, err
	}
	view, err := tuit.NewView(term, box)
	if err != nil {
		return tuit.NoEvent, err
	}
	return c.Child.Draw(clickIn(info, box), view)
}

// BoundingBox centres the child's box in rect using (W-w)/2 and (H-h)/2,
// so an odd leftover puts the extra cell on the right and bottom. A child
// larger than rect returns an *OutOfBoundsCoordinateError carrying the
// child's size; the child is never shrunk.
func (c *Center) BoundingBox(rect tuit.Rectangle) (tuit.Rectangle, error) {
	child, err := c.Child.BoundingBox(rect)
	if err != nil {
		return tuit.Rectangle{}, err
	}
	cw, ch := child.Dimensions()
	w, h := rect.Dimensions()
	if cw > w || ch > h {
		return tuit.Rectangle{}, tuit.OutOfBoundsCoordinate(cw, ch)
	}
	left := rect.Left() + (w-cw)/2
	top := rect.Top() + (h-ch)/2
	return sized(tuit.Point{X: left, Y: top}, cw, ch), nil
}

// CompletelyCovers is true only when the centred child fills all of rect.
func (c *Center) CompletelyCovers(rect tuit.Rectangle) bool {
	box, err := c.BoundingBox(rect)
	if err != nil || box != rect {
		return false
	}
	return c.Child.CompletelyCovers(rect)
}
