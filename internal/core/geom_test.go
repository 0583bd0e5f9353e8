package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 10, 5)
	if r.Right() != 13 || r.Bottom() != 9 {
		t.Errorf("edges = (%d, %d), expected (13, 9)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name        string
		val, lo, hi int
		expected    int
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -3, 0, 10, 0},
		{"above", 70, 0, 66, 66},
		{"on bound", 44, 0, 44, 44},
		{"empty range", 7, 0, -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
				t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
			}
		})
	}

	if got := Clamp(1.5, 0.0, 1.0); got != 1.0 {
		t.Errorf("Clamp(1.5, 0, 1) = %v, expected 1", got)
	}
}

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"bullet inside tank", NewBox(540, 600, 32, 32), NewBox(551, 611, 13, 10), true},
		{"touching right edge", NewBox(0, 0, 32, 32), NewBox(32, 10, 13, 10), false},
		{"touching bottom edge", NewBox(0, 0, 32, 32), NewBox(10, 32, 13, 10), false},
		{"fractional overlap", NewBox(0, 0, 32, 32), NewBox(31.5, 31.5, 13, 10), true},
		{"far apart", NewBox(0, 0, 32, 32), NewBox(200, 200, 13, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCell(t *testing.T) {
	tests := []struct {
		v        float64
		expected int
	}{
		{0, 0},
		{15.99, 0},
		{16, 1},
		{542, 33},
		{1056, 66},
	}

	for _, tc := range tests {
		if got := CellIndex(tc.v, 16); got != tc.expected {
			t.Errorf("CellIndex(%v, 16) = %d, expected %d", tc.v, got, tc.expected)
		}
	}
}
