package tuit

import "fmt"

// RescaleError is returned by MaxSize.Rescale when the requested size is
// larger than the capacity. It carries the size that was asked for.
type RescaleError struct {
	Width, Height int
}

func (e *RescaleError) Error() string {
	return fmt.Sprintf("cannot rescale to %dx%d: exceeds maximum size", e.Width, e.Height)
}

// MaxSize is a grid with a fixed capacity whose visible size can change.
//
// Rescale only moves the logical window. Cells that become hidden keep
// their content, so growing back shows whatever was there before.
type MaxSize struct {
	grid
	maxWidth  int
	maxHeight int
}

// NewMaxSize creates a grid with capacity maxWidth x maxHeight. The
// visible size starts at the full capacity.
func NewMaxSize(maxWidth, maxHeight int) *MaxSize {
	maxWidth, maxHeight = max(maxWidth, 0), max(maxHeight, 0)
	return &MaxSize{
		grid: grid{
			cells:  blankCells(maxWidth * maxHeight),
			stride: maxWidth,
			width:  maxWidth,
			height: maxHeight,
		},
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
	}
}

// MaxDimensions returns the capacity.
func (m *MaxSize) MaxDimensions() (width, height int) {
	return m.maxWidth, m.maxHeight
}

// Rescale changes the visible size. If either dimension is negative or
// exceeds the capacity the size is left unchanged and a *RescaleError is
// returned.
func (m *MaxSize) Rescale(width, height int) error {
	if width < 0 || height < 0 || width > m.maxWidth || height > m.maxHeight {
		return &RescaleError{Width: width, Height: height}
	}
	m.width, m.height = width, height
	return nil
}
