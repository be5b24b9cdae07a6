package widgets

import "github.com/grindlemire/go-tuit"

// fixedBox is a test widget with a fixed natural size. It fills whatever
// terminal it is handed with ch (unless ch is zero) and records the events
// and sizes it sees.
type fixedBox struct {
	w, h   int
	ch     rune
	covers bool

	lastInfo tuit.UpdateInfo
	drawnW   int
	drawnH   int
	draws    int
}

func (f *fixedBox) Update(info tuit.UpdateInfo, _ tuit.TerminalConst) (tuit.UpdateResult, error) {
	f.lastInfo = info
	if _, ok := info.(tuit.CellClicked); ok {
		return tuit.Interacted, nil
	}
	return tuit.NoEvent, nil
}

func (f *fixedBox) Draw(info tuit.UpdateInfo, t tuit.Terminal) (tuit.UpdateResult, error) {
	f.lastInfo = info
	f.draws++
	f.drawnW, f.drawnH = t.Dimensions()
	if f.ch != 0 {
		tuit.Fill(t, tuit.NewCell(f.ch, tuit.Style{}))
	}
	return tuit.NoEvent, nil
}

func (f *fixedBox) BoundingBox(rect tuit.Rectangle) (tuit.Rectangle, error) {
	return sized(rect.LeftTop(), f.w, f.h), nil
}

func (f *fixedBox) CompletelyCovers(tuit.Rectangle) bool {
	return f.covers
}

func lines(t tuit.TerminalConst) []string {
	var out []string
	w, h := t.Dimensions()
	for y := range h {
		row := make([]rune, 0, w)
		for x := range w {
			c, _ := t.Cell(x, y)
			row = append(row, c.Character)
		}
		out = append(out, string(row))
	}
	return out
}
