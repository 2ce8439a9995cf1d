package sink

import (
	"encoding/json"

	"github.com/seaviz/seaviz/pkg/diagram"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	compact bool
}

// WithJSONCompact disables pretty-printing.
func WithJSONCompact() JSONOption {
	return func(r *jsonRenderer) { r.compact = true }
}

type jsonOutput struct {
	Hostname         string     `json:"hostname"`
	Width            float64    `json:"width"`
	Height           float64    `json:"height"`
	ResidualOverlaps int        `json:"residual_overlaps,omitempty"`
	Boxes            []jsonBox  `json:"boxes"`
	Edges            []jsonEdge `json:"edges,omitempty"`
}

type jsonBox struct {
	ID     string  `json:"id"`
	Tier   string  `json:"tier"`
	Label  string  `json:"label"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type jsonEdge struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
	X2   float64 `json:"x2"`
	Y2   float64 `json:"y2"`
}

// RenderJSON exports the computed layout as a JSON document: canvas size,
// box positions and dimensions, and routed connector endpoints. This is the
// data interchange format for external visualization tools and for caching
// computed layouts.
//
// RenderJSON does not modify l and is safe to call concurrently.
func RenderJSON(l diagram.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Hostname:         l.Hostname,
		Width:            l.Width,
		Height:           l.Height,
		ResidualOverlaps: l.ResidualOverlaps,
		Boxes:            make([]jsonBox, 0, len(l.Boxes)),
		Edges:            make([]jsonEdge, 0, len(l.Edges)),
	}
	for _, b := range l.Boxes {
		out.Boxes = append(out.Boxes, jsonBox{
			ID:     b.ID,
			Tier:   b.Tier.String(),
			Label:  b.Label,
			X:      b.X,
			Y:      b.Y,
			Width:  b.W,
			Height: b.H,
		})
	}
	for _, e := range l.Edges {
		out.Edges = append(out.Edges, jsonEdge{
			From: e.FromID, To: e.ToID,
			X1: e.From.X, Y1: e.From.Y,
			X2: e.To.X, Y2: e.To.Y,
		})
	}

	if r.compact {
		return json.Marshal(out)
	}
	return json.MarshalIndent(out, "", "  ")
}
