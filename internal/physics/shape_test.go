package physics

import "testing"

func square(cx, cy, half float64) []Point {
	return []Point{
		{X: cx - half, Y: cy - half},
		{X: cx + half, Y: cy - half},
		{X: cx + half, Y: cy + half},
		{X: cx - half, Y: cy + half},
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 1, H: 1}, true},
		{"touching edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		if got := a.Intersects(tt.b); got != tt.want {
			t.Errorf("%s: Intersects = %v, want %v", tt.name, got, tt.want)
		}
		if got := tt.b.Intersects(a); got != tt.want {
			t.Errorf("%s (swapped): Intersects = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRectAround(t *testing.T) {
	r := RectAround(Point{X: 3, Y: 9}, Point{X: -1, Y: 2}, Point{X: 5, Y: 4})
	want := Rect{X: -1, Y: 2, W: 6, H: 7}
	if r != want {
		t.Errorf("RectAround = %+v, want %+v", r, want)
	}
}

func TestPolygonsIntersect(t *testing.T) {
	tri := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}

	tests := []struct {
		name string
		poly []Point
		want bool
	}{
		{"overlapping square", square(2, 2, 2), true},
		{"square beyond hypotenuse", square(9, 9, 2), false},
		{"bounding boxes overlap only", square(8, 8, 1.5), false},
		{"far away", square(50, 50, 5), false},
		{"sharing an edge", []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: -5}, {X: 0, Y: -5}}, false},
	}
	for _, tt := range tests {
		if got := PolygonsIntersect(tri, tt.poly); got != tt.want {
			t.Errorf("%s: PolygonsIntersect = %v, want %v", tt.name, got, tt.want)
		}
	}
}
