package tuit

// ConstantSizeRef is a fixed-size grid over storage owned by the caller.
// Writes go straight into the caller's slice.
type ConstantSizeRef struct {
	grid
}

// NewConstantSizeRef wraps cells as a width x height grid laid out row by
// row. If cells holds fewer than width*height entries, the index of the
// last cell that would be needed is reported.
func NewConstantSizeRef(cells []Cell, width, height int) (*ConstantSizeRef, error) {
	width, height = max(width, 0), max(height, 0)
	if len(cells) < width*height {
		return nil, OutOfBoundsCharacter(width*height - 1)
	}
	return &ConstantSizeRef{grid: grid{
		cells:  cells[:width*height],
		stride: width,
		width:  width,
		height: height,
	}}, nil
}
