package widgets

import "github.com/grindlemire/go-tuit"

// hit reports whether the cell at p lies inside r. Unlike
// Rectangle.Contains the right and bottom edges are exclusive, so a click
// is matched to exactly one cell of the box.
func hit(r tuit.Rectangle, p tuit.Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// sized returns a w x h rectangle with its left-top corner at p.
func sized(p tuit.Point, w, h int) tuit.Rectangle {
	return tuit.NewRectangle(p, tuit.Point{X: p.X + w, Y: p.Y + h})
}

// clickIn returns the click translated into r, or NoInfo if info is a
// click outside r. Other events pass through.
func clickIn(info tuit.UpdateInfo, r tuit.Rectangle) tuit.UpdateInfo {
	if c, ok := info.(tuit.CellClicked); ok && !hit(r, c.Point()) {
		return tuit.NoInfo{}
	}
	return tuit.MouseRelativeTo(info, r)
}
