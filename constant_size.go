package tuit

// ConstantSize is a grid whose dimensions are fixed when it is created.
// All storage is allocated once by NewConstantSize.
type ConstantSize struct {
	grid
}

// NewConstantSize creates a width x height grid filled with blank cells.
// Negative dimensions are treated as zero.
func NewConstantSize(width, height int) *ConstantSize {
	width, height = max(width, 0), max(height, 0)
	return &ConstantSize{grid: grid{
		cells:  blankCells(width * height),
		stride: width,
		width:  width,
		height: height,
	}}
}
