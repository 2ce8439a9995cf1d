package sink

import (
	"strings"
	"testing"
)

func TestRenderSVG(t *testing.T) {
	l := buildLayout(t)

	got := string(RenderSVG(l))
	if !strings.HasPrefix(got, "<svg") || !strings.HasSuffix(got, "</svg>\n") {
		t.Fatalf("RenderSVG() not a complete document")
	}

	// One <rect> per box plus the background fill.
	if rects := strings.Count(got, "<rect"); rects != len(l.Boxes)+1 {
		t.Errorf("RenderSVG() rects = %d, want %d", rects, len(l.Boxes)+1)
	}
	if lines := strings.Count(got, "<line"); lines != len(l.Edges) {
		t.Errorf("RenderSVG() lines = %d, want %d", lines, len(l.Edges))
	}
	if texts := strings.Count(got, "<text"); texts != len(l.Boxes) {
		t.Errorf("RenderSVG() texts = %d, want %d", texts, len(l.Boxes))
	}
	if !strings.Contains(got, ">vios1</text>") {
		t.Errorf("RenderSVG() missing hostname label")
	}
}
