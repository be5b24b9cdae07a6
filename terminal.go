package tuit

import "iter"

// Metadata describes a grid without giving access to its cells.
type Metadata interface {
	// Dimensions returns the number of columns and rows.
	Dimensions() (width, height int)
	// DefaultStyle is the style cells fall back to when their own style
	// leaves a field unset.
	DefaultStyle() Style
}

// TerminalConst is read-only access to a grid of cells.
type TerminalConst interface {
	Metadata
	// Cell returns the cell at (x, y). Returns false if the coordinate is
	// outside the grid, including negative coordinates.
	Cell(x, y int) (Cell, bool)
	// Cells yields every cell row by row, left to right.
	Cells() iter.Seq[Cell]
}

// TerminalMut is write access to a grid of cells.
type TerminalMut interface {
	Metadata
	// CellMut returns a pointer to the cell at (x, y), or nil if the
	// coordinate is outside the grid.
	CellMut(x, y int) *Cell
	// CellsMut yields a pointer to every cell row by row, left to right.
	CellsMut() iter.Seq[*Cell]
}

// Terminal is a grid of cells that can be read and written.
// Implementations never panic on bad coordinates.
type Terminal interface {
	TerminalConst
	TerminalMut
}

// grid is the storage shared by the concrete backings. Cells are addressed
// with a physical stride that may be wider than the logical width, which
// lets MaxSize shrink without moving content.
type grid struct {
	cells  []Cell
	stride int
	width  int
	height int
	style  Style
}

// idx converts (x, y) to a flat index. Returns -1 if out of bounds.
func (g *grid) idx(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return -1
	}
	return y*g.stride + x
}

// Dimensions returns the logical width and height.
func (g *grid) Dimensions() (width, height int) {
	return g.width, g.height
}

// DefaultStyle returns the style set with SetDefaultStyle.
func (g *grid) DefaultStyle() Style {
	return g.style
}

// SetDefaultStyle changes the fallback style for every cell.
func (g *grid) SetDefaultStyle(s Style) {
	g.style = s
}

// Cell returns a copy of the cell at (x, y).
func (g *grid) Cell(x, y int) (Cell, bool) {
	i := g.idx(x, y)
	if i < 0 {
		return Cell{}, false
	}
	return g.cells[i], true
}

// CellMut returns a pointer to the cell at (x, y), or nil.
func (g *grid) CellMut(x, y int) *Cell {
	i := g.idx(x, y)
	if i < 0 {
		return nil
	}
	return &g.cells[i]
}

// Cells yields the logical region row-major.
func (g *grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for y := 0; y < g.height; y++ {
			row := g.cells[y*g.stride : y*g.stride+g.width]
			for _, c := range row {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// CellsMut yields pointers into the logical region row-major.
func (g *grid) CellsMut() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for y := 0; y < g.height; y++ {
			base := y * g.stride
			for x := 0; x < g.width; x++ {
				if !yield(&g.cells[base+x]) {
					return
				}
			}
		}
	}
}

func blankCells(n int) []Cell {
	cells := make([]Cell, n)
	for i := range cells {
		cells[i] = BlankCell()
	}
	return cells
}
