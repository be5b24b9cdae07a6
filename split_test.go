package tuit

import "testing"

func TestViewSplit_Widths(t *testing.T) {
	type tc struct {
		width      int
		leftWidth  int
		rightWidth int
		rightLeft  int
	}

	tests := map[string]tc{
		"even":  {width: 10, leftWidth: 5, rightWidth: 5, rightLeft: 5},
		"odd":   {width: 11, leftWidth: 6, rightWidth: 5, rightLeft: 6},
		"one":   {width: 1, leftWidth: 1, rightWidth: 0, rightLeft: 1},
		"empty": {width: 0, leftWidth: 0, rightWidth: 0, rightLeft: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := NewConstantSize(tt.width, 3)
			left, right := NewViewSplit(parent).Halves()

			if got := Width(left); got != tt.leftWidth {
				t.Errorf("left width = %d, want %d", got, tt.leftWidth)
			}
			if got := Width(right); got != tt.rightWidth {
				t.Errorf("right width = %d, want %d", got, tt.rightWidth)
			}
			if got := right.Rect().Left(); got != tt.rightLeft {
				t.Errorf("right starts at %d, want %d", got, tt.rightLeft)
			}
			if Height(left) != 3 || Height(right) != 3 {
				t.Errorf("halves should keep the parent height")
			}
		})
	}
}

func TestViewSplit_HalvesAreDisjoint(t *testing.T) {
	parent := NewConstantSize(7, 2)
	split := NewViewSplit(parent)

	Fill(split.Left(), NewCell('L', Style{}))
	Fill(split.Right(), NewCell('R', Style{}))

	if got := Text(parent); got != "LLLLRRR\nLLLLRRR" {
		t.Errorf("Text() = %q", got)
	}
	for c := range split.Left().Cells() {
		if c.Character != 'L' {
			t.Errorf("right half leaked into left: %q", c.Character)
		}
	}
}
