package tuit

import "iter"

// ReadOnly hides the write half of a terminal. The result forwards every
// read to t, so a widget handed it cannot type-assert its way back to
// mutation.
func ReadOnly(t TerminalConst) TerminalConst {
	if r, ok := t.(readOnly); ok {
		return r
	}
	return readOnly{t: t}
}

type readOnly struct {
	t TerminalConst
}

func (r readOnly) Dimensions() (int, int)     { return r.t.Dimensions() }
func (r readOnly) DefaultStyle() Style        { return r.t.DefaultStyle() }
func (r readOnly) Cell(x, y int) (Cell, bool) { return r.t.Cell(x, y) }
func (r readOnly) Cells() iter.Seq[Cell]      { return r.t.Cells() }

// DrawFunc adapts a draw function to the Widget interface. Update always
// returns NoEvent.
type DrawFunc func(info UpdateInfo, t Terminal) (UpdateResult, error)

// Update ignores the event.
func (f DrawFunc) Update(UpdateInfo, TerminalConst) (UpdateResult, error) {
	return NoEvent, nil
}

// Draw calls f.
func (f DrawFunc) Draw(info UpdateInfo, t Terminal) (UpdateResult, error) {
	return f(info, t)
}

// WidgetFunc builds a Widget from separate update and draw functions.
// A nil function behaves as a no-op returning NoEvent.
type WidgetFunc struct {
	OnUpdate func(info UpdateInfo, t TerminalConst) (UpdateResult, error)
	OnDraw   func(info UpdateInfo, t Terminal) (UpdateResult, error)
}

// Update calls OnUpdate.
func (w WidgetFunc) Update(info UpdateInfo, t TerminalConst) (UpdateResult, error) {
	if w.OnUpdate == nil {
		return NoEvent, nil
	}
	return w.OnUpdate(info, t)
}

// Draw calls OnDraw.
func (w WidgetFunc) Draw(info UpdateInfo, t Terminal) (UpdateResult, error) {
	if w.OnDraw == nil {
		return NoEvent, nil
	}
	return w.OnDraw(info, t)
}
