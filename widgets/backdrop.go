package widgets

import (
	"github.com/grindlemire/go-tuit"
	"github.com/grindlemire/go-tuit/internal/debug"
)

// Backdrop paints a solid colour behind a widget so stale cells never show
// through the gaps it leaves.
type Backdrop struct {
	Child  tuit.BoundingBox
	Colour tuit.Colour
}

// UseBackdrop puts child on a background of colour.
func UseBackdrop(child tuit.BoundingBox, colour tuit.Colour) *Backdrop {
	return &Backdrop{Child: child, Colour: colour}
}

// Update forwards to the child.
func (b *Backdrop) Update(info tuit.UpdateInfo, term tuit.TerminalConst) (tuit.UpdateResult, error) {
	return b.Child.Update(info, term)
}

// Draw fills the child's bounding box and then draws the child on top. The
// fill is skipped when the child covers its box by itself.
func (b *Backdrop) Draw(info tuit.UpdateInfo, term tuit.Terminal) (tuit.UpdateResult, error) {
	box, err := b.Child.BoundingBox(tuit.BoundsOf(term))
	if err != nil {
		return tuit.NoEvent, err
	}

	if b.Child.CompletelyCovers(box) {
		debug.Log("backdrop: child is opaque, skipping fill", "box", box)
	} else {
		view, err := tuit.NewView(term, box)
		if err != nil {
			return tuit.NoEvent, err
		}
		if _, err := SweeperOfColour(b.Colour).Draw(tuit.NoInfo{}, view); err != nil {
			return tuit.NoEvent, err
		}
	}

	return b.Child.Draw(info, term)
}

// BoundingBox is the child's box.
func (b *Backdrop) BoundingBox(rect tuit.Rectangle) (tuit.Rectangle, error) {
	return b.Child.BoundingBox(rect)
}

// CompletelyCovers is true for any rect within the child's box, since the
// backdrop fills it.
func (b *Backdrop) CompletelyCovers(rect tuit.Rectangle) bool {
	box, err := b.Child.BoundingBox(rect)
	return err == nil && box == rect
}
