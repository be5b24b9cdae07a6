package tuit

import "strings"

// Width returns the number of columns in t.
func Width(t Metadata) int {
	w, _ := t.Dimensions()
	return w
}

// Height returns the number of rows in t.
func Height(t Metadata) int {
	_, h := t.Dimensions()
	return h
}

// BoundsOf returns t's full area anchored at the origin.
func BoundsOf(t Metadata) Rectangle {
	return OfSize(t.Dimensions())
}

// CopiedView copies the cells of rect out of t into a new ConstantSize
// with the same default style. Returns an *OutOfBoundsCoordinateError if
// rect does not lie within t.
func CopiedView(t TerminalConst, rect Rectangle) (*ConstantSize, error) {
	if err := checkInside(t, rect); err != nil {
		return nil, err
	}
	out := NewConstantSize(rect.Dimensions())
	out.SetDefaultStyle(t.DefaultStyle())
	for y := range rect.Height() {
		for x := range rect.Width() {
			if c, ok := t.Cell(rect.Left()+x, rect.Top()+y); ok {
				*out.CellMut(x, y) = c
			}
		}
	}
	return out, nil
}

// Fill overwrites every cell of t with c.
func Fill(t TerminalMut, c Cell) {
	for cell := range t.CellsMut() {
		*cell = c
	}
}

// Clear resets every cell of t to a blank cell.
func Clear(t TerminalMut) {
	Fill(t, BlankCell())
}

// ResolvedStyle returns the style of the cell at (x, y) with every unset
// field filled from t's default style and then GlobalDefaultStyle.
func ResolvedStyle(t TerminalConst, x, y int) (Style, bool) {
	c, ok := t.Cell(x, y)
	if !ok {
		return Style{}, false
	}
	return c.Style.Resolve(t.DefaultStyle()), true
}

// Text returns the characters of t as lines joined with newlines. Zero
// runes are shown as spaces.
func Text(t TerminalConst) string {
	var sb strings.Builder
	w, h := t.Dimensions()
	for y := range h {
		for x := range w {
			c, _ := t.Cell(x, y)
			if c.Character == 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(c.Character)
			}
		}
		if y < h-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// TextTrimmed is Text with trailing spaces removed from each line.
func TextTrimmed(t TerminalConst) string {
	lines := strings.Split(Text(t), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
