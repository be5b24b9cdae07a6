package tuit

import "github.com/mattn/go-runewidth"

// Cell is one character position in the grid.
type Cell struct {
	Character rune
	Style     Style
}

// BlankCell returns a space with an unset style.
func BlankCell() Cell {
	return Cell{Character: ' '}
}

// NewCell creates a Cell with the given character and style.
func NewCell(r rune, style Style) Cell {
	return Cell{Character: r, Style: style}
}

// Width returns the number of display columns the character takes on a
// terminal (0, 1 or 2). The grid always stores one character per cell;
// renderers use this to keep the cursor aligned.
func (c Cell) Width() int {
	return runewidth.RuneWidth(c.Character)
}

// IsBlank returns true for a space (or zero rune) with no style set.
func (c Cell) IsBlank() bool {
	return (c.Character == ' ' || c.Character == 0) && c.Style == Style{}
}
