package diagram

import "testing"

func TestResolveCollisionsSeparates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ResolveCollisions = true

	boxes := []Box{
		{ID: "a", X: 100, Y: 100, W: 120, H: 35},
		{ID: "b", X: 110, Y: 110, W: 120, H: 35}, // overlaps a
		{ID: "c", X: 115, Y: 105, W: 120, H: 35}, // overlaps both
	}

	residual := resolveCollisions(boxes, cfg)
	if residual != 0 {
		t.Fatalf("resolveCollisions() residual = %d, want 0", residual)
	}
	assertNoOverlaps(t, boxes)

	// The first box is never moved; later boxes yield to earlier ones.
	if boxes[0].X != 100 || boxes[0].Y != 100 {
		t.Errorf("first box moved to (%v, %v)", boxes[0].X, boxes[0].Y)
	}
}

func TestResolveCollisionsDeterministic(t *testing.T) {
	cfg := DefaultConfig()

	make3 := func() []Box {
		return []Box{
			{ID: "a", X: 0, Y: 0, W: 200, H: 200},
			{ID: "b", X: 50, Y: 50, W: 200, H: 200},
			{ID: "c", X: 100, Y: 100, W: 200, H: 200},
		}
	}

	first, second := make3(), make3()
	resolveCollisions(first, cfg)
	resolveCollisions(second, cfg)

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("box %d diverged: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestResolveCollisionsBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpiralStep = 10
	cfg.MaxSearchRadius = 20 // far too small to separate the giants below

	boxes := []Box{
		{ID: "a", X: 0, Y: 0, W: 1000, H: 1000},
		{ID: "b", X: 10, Y: 10, W: 1000, H: 1000},
	}

	residual := resolveCollisions(boxes, cfg)
	if residual != 1 {
		t.Errorf("resolveCollisions() residual = %d, want 1", residual)
	}

	// The box keeps its last candidate: search exhausted, no panic, output
	// still renderable.
	if boxes[1].W != 1000 || boxes[1].H != 1000 {
		t.Errorf("box size changed during search: %+v", boxes[1])
	}
}

func TestResolveCollisionsNoOp(t *testing.T) {
	boxes := []Box{
		{ID: "a", X: 0, Y: 0, W: 100, H: 35},
		{ID: "b", X: 200, Y: 0, W: 100, H: 35},
	}
	want := []Box{boxes[0], boxes[1]}

	if residual := resolveCollisions(boxes, DefaultConfig()); residual != 0 {
		t.Errorf("resolveCollisions() residual = %d, want 0", residual)
	}
	for i := range boxes {
		if boxes[i] != want[i] {
			t.Errorf("box %d moved without a collision: %+v", i, boxes[i])
		}
	}
}
