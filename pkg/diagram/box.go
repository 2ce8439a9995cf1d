package diagram

// Box is a positioned, sized rectangle representing one topology entity.
// Coordinates are pixels with a top-left origin, so Top() < Bottom().
type Box struct {
	ID    string
	Tier  Tier
	Label string

	X, Y float64
	W, H float64
}

// Left returns the x coordinate of the left edge.
func (b Box) Left() float64 { return b.X }

// Right returns the x coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Top returns the y coordinate of the top edge.
func (b Box) Top() float64 { return b.Y }

// Bottom returns the y coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center of the box.
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// Intersects reports whether two boxes overlap with non-zero area.
// Boxes that merely share an edge or corner do not intersect.
func (b Box) Intersects(o Box) bool {
	return b.Left() < o.Right() && o.Left() < b.Right() &&
		b.Top() < o.Bottom() && o.Top() < b.Bottom()
}

// OnBoundary reports whether the point lies exactly on the box perimeter.
func (b Box) OnBoundary(p Point) bool {
	onVertical := (p.X == b.Left() || p.X == b.Right()) &&
		p.Y >= b.Top() && p.Y <= b.Bottom()
	onHorizontal := (p.Y == b.Top() || p.Y == b.Bottom()) &&
		p.X >= b.Left() && p.X <= b.Right()
	return onVertical || onHorizontal
}

// Point is a pixel coordinate on the canvas.
type Point struct {
	X, Y float64
}

// Edge connects a parent box to a child box. Both endpoints lie exactly on
// the respective box boundary, never inside it.
type Edge struct {
	FromID, ToID string
	From, To     Point
}

// Layout is the finished diagram for one host: canvas size, placed boxes
// and routed edges. It is computed fresh per render call and holds no state
// across calls.
type Layout struct {
	Hostname string

	// Width and Height are the computed canvas size: the bounding box of
	// all placed rectangles plus the configured margin on every side.
	Width, Height float64

	Boxes []Box
	Edges []Edge

	// ResidualOverlaps counts box pairs the collision pass could not
	// separate within its search radius. Zero unless the pass gave up.
	ResidualOverlaps int
}

// BoxByID returns the box with the given ID.
func (l Layout) BoxByID(id string) (Box, bool) {
	for _, b := range l.Boxes {
		if b.ID == id {
			return b, true
		}
	}
	return Box{}, false
}
