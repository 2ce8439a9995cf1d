package diagram

import "testing"

func TestBoxGeometry(t *testing.T) {
	b := Box{X: 10, Y: 20, W: 100, H: 40}

	if b.Right() != 110 {
		t.Errorf("Right() = %v, want 110", b.Right())
	}
	if b.Bottom() != 60 {
		t.Errorf("Bottom() = %v, want 60", b.Bottom())
	}
	if b.CenterX() != 60 {
		t.Errorf("CenterX() = %v, want 60", b.CenterX())
	}
	if b.CenterY() != 40 {
		t.Errorf("CenterY() = %v, want 40", b.CenterY())
	}
}

func TestBoxIntersects(t *testing.T) {
	base := Box{X: 0, Y: 0, W: 100, H: 50}

	tests := []struct {
		name  string
		other Box
		want  bool
	}{
		{
			name:  "full overlap",
			other: Box{X: 10, Y: 10, W: 20, H: 20},
			want:  true,
		},
		{
			name:  "partial overlap",
			other: Box{X: 90, Y: 40, W: 50, H: 50},
			want:  true,
		},
		{
			name:  "disjoint",
			other: Box{X: 200, Y: 0, W: 10, H: 10},
			want:  false,
		},
		{
			name:  "shared edge is zero area",
			other: Box{X: 100, Y: 0, W: 50, H: 50},
			want:  false,
		},
		{
			name:  "shared corner is zero area",
			other: Box{X: 100, Y: 50, W: 10, H: 10},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoxOnBoundary(t *testing.T) {
	b := Box{X: 10, Y: 10, W: 100, H: 40}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"top-center", Point{60, 10}, true},
		{"bottom-center", Point{60, 50}, true},
		{"left-middle", Point{10, 30}, true},
		{"right-middle", Point{110, 30}, true},
		{"corner", Point{10, 10}, true},
		{"interior", Point{60, 30}, false},
		{"exterior", Point{60, 51}, false},
		{"aligned but outside span", Point{200, 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.OnBoundary(tt.p); got != tt.want {
				t.Errorf("OnBoundary(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
