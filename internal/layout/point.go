package layout

// Point is a cell coordinate. Y grows downward.
type Point struct {
	X, Y int
}

// Add offsets p by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the offset from origin to p.
func (p Point) Sub(origin Point) Point {
	return Point{X: p.X - origin.X, Y: p.Y - origin.Y}
}

// In reports whether p lies within r, edges included.
func (p Point) In(r Rectangle) bool {
	return r.Contains(p)
}
