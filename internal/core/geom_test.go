package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectClip(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		expected Rect
	}{
		{"inside", NewRect(2, 2, 5, 5), NewRect(2, 2, 5, 5)},
		{"past right and bottom", NewRect(75, 20, 10, 10), NewRect(75, 20, 5, 4)},
		{"negative origin", NewRect(-3, -2, 6, 5), NewRect(0, 0, 3, 3)},
		{"off screen right", NewRect(90, 5, 4, 4), NewRect(90, 5, 0, 0)},
		{"off screen left", NewRect(-10, 5, 4, 4), NewRect(0, 5, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Clip(80, 24); got != tc.expected {
				t.Errorf("Clip() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", NewBox(0, 0, 10, 10), NewBox(5, 5, 10, 10), true},
		{"touching right edge", NewBox(0, 0, 10, 10), NewBox(10, 0, 10, 10), false},
		{"touching bottom edge", NewBox(0, 0, 10, 10), NewBox(0, 10, 10, 10), false},
		{"fractional overlap", NewBox(0, 0, 10, 10), NewBox(9.99, 9.99, 1, 1), true},
		{"far apart", NewBox(0, 0, 10, 10), NewBox(50, 50, 5, 5), false},
		{"contained", NewBox(0, 0, 20, 20), NewBox(5, 5, 2, 2), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(1.5, 2, 3, 4.5)
	if b.Right() != 4.5 {
		t.Errorf("Right() = %f, expected 4.5", b.Right())
	}
	if b.Bottom() != 6.5 {
		t.Errorf("Bottom() = %f, expected 6.5", b.Bottom())
	}
}
