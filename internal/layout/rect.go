package layout

import (
	"cmp"
	"fmt"
	"math"
)

// Rectangle is an axis-aligned box described by its left-top and
// right-bottom corners. Width is Right-Left and Height is Bottom-Top, so a
// rectangle built with OfSize(w, h) spans the cell columns [0, w).
//
// The zero value is an empty rectangle at the origin.
type Rectangle struct {
	leftTop     Point
	rightBottom Point
}

// NewRectangle creates a Rectangle from any two opposite corners.
// The corners do not need to be ordered.
func NewRectangle(first, second Point) Rectangle {
	return Rectangle{
		leftTop:     Point{X: min(first.X, second.X), Y: min(first.Y, second.Y)},
		rightBottom: Point{X: max(first.X, second.X), Y: max(first.Y, second.Y)},
	}
}

// OfSize creates a Rectangle of the given size with its left-top corner at (0, 0).
func OfSize(width, height int) Rectangle {
	return NewRectangle(Point{}, Point{X: width, Y: height})
}

// Left returns the x-coordinate of the left edge.
func (r Rectangle) Left() int {
	return r.leftTop.X
}

// Top returns the y-coordinate of the top edge.
// The y-axis grows downward, so Top is never greater than Bottom.
func (r Rectangle) Top() int {
	return r.leftTop.Y
}

// Right returns the x-coordinate of the right edge.
func (r Rectangle) Right() int {
	return r.rightBottom.X
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rectangle) Bottom() int {
	return r.rightBottom.Y
}

// LeftTop returns the top-left vertex.
func (r Rectangle) LeftTop() Point {
	return r.leftTop
}

// RightBottom returns the bottom-right vertex.
func (r Rectangle) RightBottom() Point {
	return r.rightBottom
}

// LeftBottom returns the bottom-left vertex.
func (r Rectangle) LeftBottom() Point {
	return Point{X: r.Left(), Y: r.Bottom()}
}

// RightTop returns the top-right vertex.
func (r Rectangle) RightTop() Point {
	return Point{X: r.Right(), Y: r.Top()}
}

// Width returns Right - Left.
func (r Rectangle) Width() int {
	return r.Right() - r.Left()
}

// Height returns Bottom - Top.
func (r Rectangle) Height() int {
	return r.Bottom() - r.Top()
}

// Dimensions returns (width, height).
func (r Rectangle) Dimensions() (width, height int) {
	return r.Width(), r.Height()
}

// Area returns width * height.
func (r Rectangle) Area() int {
	return r.Width() * r.Height()
}

// IsEmpty returns true if the rectangle has zero area.
func (r Rectangle) IsEmpty() bool {
	return r.Area() == 0
}

// Center returns the midpoint of the rectangle, rounded toward the left-top corner.
func (r Rectangle) Center() Point {
	return Point{X: (r.Left() + r.Right()) / 2, Y: (r.Top() + r.Bottom()) / 2}
}

// EdgeToEdge returns the length of the diagonal between the left-top and
// right-bottom vertices. The sides are converted to float64 first, so very
// large rectangles lose precision.
func (r Rectangle) EdgeToEdge() float64 {
	w, h := float64(r.Width()), float64(r.Height())
	return math.Sqrt(w*w + h*h)
}

// RightTo returns a copy with the right edge moved to x.
// If x is left of the left edge, the old left edge becomes the right edge.
func (r Rectangle) RightTo(x int) Rectangle {
	if x >= r.Left() {
		r.rightBottom.X = x
	} else {
		r.rightBottom.X, r.leftTop.X = r.leftTop.X, x
	}
	return r
}

// LeftTo returns a copy with the left edge moved to x.
// If x is right of the right edge, the old right edge becomes the left edge.
func (r Rectangle) LeftTo(x int) Rectangle {
	if x <= r.Right() {
		r.leftTop.X = x
	} else {
		r.leftTop.X, r.rightBottom.X = r.rightBottom.X, x
	}
	return r
}

// BottomTo returns a copy with the bottom edge moved to y.
// If y is above the top edge, the old top edge becomes the bottom edge.
func (r Rectangle) BottomTo(y int) Rectangle {
	if y >= r.Top() {
		r.rightBottom.Y = y
	} else {
		r.rightBottom.Y, r.leftTop.Y = r.leftTop.Y, y
	}
	return r
}

// TopTo returns a copy with the top edge moved to y.
// If y is below the bottom edge, the old bottom edge becomes the top edge.
func (r Rectangle) TopTo(y int) Rectangle {
	if y <= r.Bottom() {
		r.leftTop.Y = y
	} else {
		r.leftTop.Y, r.rightBottom.Y = r.rightBottom.Y, y
	}
	return r
}

// To returns a copy of the same size moved so its left-top corner is at p.
func (r Rectangle) To(p Point) Rectangle {
	w, h := r.Dimensions()
	return Rectangle{leftTop: p, rightBottom: Point{X: p.X + w, Y: p.Y + h}}
}

// Contains reports whether p lies within the rectangle.
//
// All four edges are inclusive: a rectangle with Left == Right still contains
// points on that column, and OfSize(20, 20) contains (20, 20). Callers that
// index cells should bound by Width/Height instead.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// ContainsRect reports whether both corners of other lie within the rectangle.
func (r Rectangle) ContainsRect(other Rectangle) bool {
	return r.Contains(other.LeftTop()) && r.Contains(other.RightBottom())
}

// Inset returns the rectangle shrunk by the given edges.
// Returns false if the edges would cross each other.
func (r Rectangle) Inset(e Edges) (Rectangle, bool) {
	left, right := r.Left()+e.Left, r.Right()-e.Right
	top, bottom := r.Top()+e.Top, r.Bottom()-e.Bottom
	if left > right || top > bottom {
		return r, false
	}
	return Rectangle{leftTop: Point{X: left, Y: top}, rightBottom: Point{X: right, Y: bottom}}, true
}

// Outset returns the rectangle grown outward by the given edges.
// The result is normalised, so negative edges larger than the size collapse safely.
func (r Rectangle) Outset(e Edges) Rectangle {
	return NewRectangle(
		Point{X: r.Left() - e.Left, Y: r.Top() - e.Top},
		Point{X: r.Right() + e.Right, Y: r.Bottom() + e.Bottom},
	)
}

// Intersect returns the overlapping part of two rectangles.
// Returns false if they share no cells.
func (r Rectangle) Intersect(other Rectangle) (Rectangle, bool) {
	left, top := max(r.Left(), other.Left()), max(r.Top(), other.Top())
	right, bottom := min(r.Right(), other.Right()), min(r.Bottom(), other.Bottom())
	if right <= left || bottom <= top {
		return Rectangle{}, false
	}
	return Rectangle{leftTop: Point{X: left, Y: top}, rightBottom: Point{X: right, Y: bottom}}, true
}

// Compare orders rectangles by area only; position is ignored, so two
// different rectangles of equal area compare as 0.
func (r Rectangle) Compare(other Rectangle) int {
	return cmp.Compare(r.Area(), other.Area())
}

// String returns the rectangle as "[(left,top) (right,bottom)]".
func (r Rectangle) String() string {
	return fmt.Sprintf("[(%d,%d) (%d,%d)]", r.Left(), r.Top(), r.Right(), r.Bottom())
}
