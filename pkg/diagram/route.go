package diagram

// Route computes the connecting edge between a parent box and a child box.
// When the boxes are vertically separated the edge runs from the bottom
// center of the upper box to the top center of the lower box. When a
// residual overlap left them side by side instead, the edge runs between
// the facing vertical edges. Either way both endpoints lie exactly on the
// box boundaries, so lines never cross a rectangle interior.
func Route(parent, child Box) Edge {
	e := Edge{FromID: parent.ID, ToID: child.ID}

	switch {
	case parent.Bottom() <= child.Top():
		// Parent above child.
		e.From = Point{X: parent.CenterX(), Y: parent.Bottom()}
		e.To = Point{X: child.CenterX(), Y: child.Top()}
	case child.Bottom() <= parent.Top():
		// Parent below child.
		e.From = Point{X: parent.CenterX(), Y: parent.Top()}
		e.To = Point{X: child.CenterX(), Y: child.Bottom()}
	case parent.CenterX() <= child.CenterX():
		e.From = Point{X: parent.Right(), Y: parent.CenterY()}
		e.To = Point{X: child.Left(), Y: child.CenterY()}
	default:
		e.From = Point{X: parent.Left(), Y: parent.CenterY()}
		e.To = Point{X: child.Right(), Y: child.CenterY()}
	}
	return e
}
