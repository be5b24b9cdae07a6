// layout.go re-exports geometry types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package tuit

import "github.com/grindlemire/go-tuit/internal/layout"

// Rectangle is an axis-aligned box of cells with normalised corners.
type Rectangle = layout.Rectangle

// Point is an (X, Y) cell coordinate. Y grows downward.
type Point = layout.Point

// Edges holds per-side distances used by Inset and Outset.
type Edges = layout.Edges

// NewRectangle creates a Rectangle from any two opposite corners.
func NewRectangle(first, second Point) Rectangle {
	return layout.NewRectangle(first, second)
}

// OfSize creates a Rectangle of the given size anchored at the origin.
func OfSize(width, height int) Rectangle {
	return layout.OfSize(width, height)
}

// UniformEdges returns Edges of n on every side.
func UniformEdges(n int) Edges {
	return layout.Uniform(n)
}
