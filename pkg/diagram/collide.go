package diagram

// resolveCollisions is the corrective pass after tier placement. Boxes are
// committed one at a time in their stable order; a box that overlaps an
// already committed box searches an expanding spiral of candidate offsets
// (right, down, left, up at each radius) until it finds clear space.
//
// The search is bounded by cfg.MaxSearchRadius. A box that exhausts the
// spiral keeps its last candidate position and the overlap is accepted:
// the return value counts those residual overlaps so callers can report
// them, but layout always completes.
func resolveCollisions(boxes []Box, cfg Config) (residual int) {
	for i := range boxes {
		if !collides(boxes[i], boxes[:i]) {
			continue
		}
		if !spiralSearch(&boxes[i], boxes[:i], cfg) {
			residual++
		}
	}
	return residual
}

// collides reports whether b overlaps any of the placed boxes.
func collides(b Box, placed []Box) bool {
	for _, p := range placed {
		if b.Intersects(p) {
			return true
		}
	}
	return false
}

// spiralSearch nudges b away from its desired position along growing
// offsets until it no longer overlaps any placed box. Returns false when
// the radius bound is hit; b is then left at the final candidate.
func spiralSearch(b *Box, placed []Box, cfg Config) bool {
	origin := *b
	offsets := [][2]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}} // right, down, left, up

	for r := cfg.SpiralStep; r <= cfg.MaxSearchRadius; r += cfg.SpiralStep {
		for _, d := range offsets {
			b.X = origin.X + d[0]*r
			b.Y = origin.Y + d[1]*r
			if !collides(*b, placed) {
				return true
			}
		}
	}
	return false
}
