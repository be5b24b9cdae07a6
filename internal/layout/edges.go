package layout

// Edges is a distance for each side of a Rectangle, as consumed by
// [Rectangle.Inset] and [Rectangle.Outset].
type Edges struct {
	Top, Right, Bottom, Left int
}

// Uniform returns Edges of n on every side.
func Uniform(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}
