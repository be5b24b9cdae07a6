// Package layout implements the rectangle geometry used to resolve widget
// placement on a character grid.
//
// Coordinates are non-negative cell offsets with y growing downward. A
// [Rectangle] is stored as two corners and is always normalised so that its
// left-top corner is never right of or below its right-bottom corner.
// Types are re-exported through the root tuit package for public consumption.
package layout
