package tuit

import "iter"

// View is a writable window onto a rectangle of a parent terminal.
// Coordinates are relative to the rectangle's left-top corner; anything
// outside the rectangle is rejected even if the parent could address it.
//
// The rectangle is checked against the parent when the View is created and
// again whenever its cells are iterated. If a MaxSize parent is rescaled so
// the rectangle no longer fits, iteration yields nothing until it fits again.
type View struct {
	parent Terminal
	rect   Rectangle
}

// NewView creates a View of rect inside parent. Returns an
// *OutOfBoundsCoordinateError if rect does not lie within the parent.
func NewView(parent Terminal, rect Rectangle) (*View, error) {
	if err := checkInside(parent, rect); err != nil {
		return nil, err
	}
	return &View{parent: parent, rect: rect}, nil
}

// Rect returns the region in the parent's coordinates.
func (v *View) Rect() Rectangle {
	return v.rect
}

// Dimensions returns the size of the region.
func (v *View) Dimensions() (width, height int) {
	return v.rect.Dimensions()
}

// DefaultStyle forwards to the parent.
func (v *View) DefaultStyle() Style {
	return v.parent.DefaultStyle()
}

// Cell returns the cell at (x, y) relative to the region.
func (v *View) Cell(x, y int) (Cell, bool) {
	px, py, ok := translate(v.rect, x, y)
	if !ok {
		return Cell{}, false
	}
	return v.parent.Cell(px, py)
}

// CellMut returns a pointer to the cell at (x, y) relative to the region.
func (v *View) CellMut(x, y int) *Cell {
	px, py, ok := translate(v.rect, x, y)
	if !ok {
		return nil
	}
	return v.parent.CellMut(px, py)
}

// Cells yields the region row-major.
func (v *View) Cells() iter.Seq[Cell] {
	return regionCells(v.parent, v.rect)
}

// CellsMut yields pointers into the region row-major.
func (v *View) CellsMut() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		if checkInside(v.parent, v.rect) != nil {
			return
		}
		w, h := v.rect.Dimensions()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := v.parent.CellMut(v.rect.Left()+x, v.rect.Top()+y)
				if c == nil {
					continue
				}
				if !yield(c) {
					return
				}
			}
		}
	}
}

// ConstView is a read-only window onto a rectangle of a parent terminal.
type ConstView struct {
	parent TerminalConst
	rect   Rectangle
}

// NewConstView creates a ConstView of rect inside parent. Returns an
// *OutOfBoundsCoordinateError if rect does not lie within the parent.
func NewConstView(parent TerminalConst, rect Rectangle) (*ConstView, error) {
	if err := checkInside(parent, rect); err != nil {
		return nil, err
	}
	return &ConstView{parent: parent, rect: rect}, nil
}

// Rect returns the region in the parent's coordinates.
func (v *ConstView) Rect() Rectangle {
	return v.rect
}

// Dimensions returns the size of the region.
func (v *ConstView) Dimensions() (width, height int) {
	return v.rect.Dimensions()
}

// DefaultStyle forwards to the parent.
func (v *ConstView) DefaultStyle() Style {
	return v.parent.DefaultStyle()
}

// Cell returns the cell at (x, y) relative to the region.
func (v *ConstView) Cell(x, y int) (Cell, bool) {
	px, py, ok := translate(v.rect, x, y)
	if !ok {
		return Cell{}, false
	}
	return v.parent.Cell(px, py)
}

// Cells yields the region row-major.
func (v *ConstView) Cells() iter.Seq[Cell] {
	return regionCells(v.parent, v.rect)
}

func checkInside(parent Metadata, rect Rectangle) error {
	if rect.Left() < 0 || rect.Top() < 0 {
		return OutOfBoundsCoordinate(rect.Left(), rect.Top())
	}
	w, h := parent.Dimensions()
	if rect.Right() > w || rect.Bottom() > h {
		return OutOfBoundsCoordinate(rect.Right(), rect.Bottom())
	}
	return nil
}

func translate(rect Rectangle, x, y int) (int, int, bool) {
	if x < 0 || y < 0 || x >= rect.Width() || y >= rect.Height() {
		return 0, 0, false
	}
	p := rect.LeftTop().Add(Point{X: x, Y: y})
	return p.X, p.Y, true
}

func regionCells(parent TerminalConst, rect Rectangle) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		if checkInside(parent, rect) != nil {
			return
		}
		w, h := rect.Dimensions()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c, ok := parent.Cell(rect.Left()+x, rect.Top()+y)
				if !ok {
					continue
				}
				if !yield(c) {
					return
				}
			}
		}
	}
}
