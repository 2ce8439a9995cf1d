package diagram

import "image/color"

// Surface is the drawing backend the emitter issues commands to. Implementations
// persist the final raster or vector output; the emitter has no file or
// format concerns.
//
// DrawText renders a single line of text centered on (x, y).
type Surface interface {
	DrawRectangle(x, y, w, h float64, fill color.Color)
	DrawText(x, y float64, text string, class FontClass)
	DrawLine(x1, y1, x2, y2 float64)
}

// Emitter replays a finished layout onto a surface as ordered draw calls:
// edges first so box fills cover line stubs at the anchor points, then
// rectangles, then labels.
type Emitter struct {
	cfg      Config
	measurer TextMeasurer
}

// NewEmitter creates an emitter. measurer may be nil; it is only consulted
// to truncate labels that would spill past their box, which the sizing
// contract already prevents in normal operation.
func NewEmitter(cfg Config, measurer TextMeasurer) *Emitter {
	return &Emitter{cfg: cfg, measurer: measurer}
}

// Render draws the layout. One call produces one diagram; the emitter keeps
// no state between calls.
func (e *Emitter) Render(l Layout, s Surface) {
	for _, edge := range l.Edges {
		s.DrawLine(edge.From.X, edge.From.Y, edge.To.X, edge.To.Y)
	}
	for _, b := range l.Boxes {
		s.DrawRectangle(b.X, b.Y, b.W, b.H, e.cfg.TierColor(b.Tier))
	}
	for _, b := range l.Boxes {
		label := e.fit(b.Label, b.W-2*e.cfg.Padding, fontForTier(b.Tier))
		s.DrawText(b.CenterX(), b.CenterY(), label, fontForTier(b.Tier))
	}
}

// fit truncates label with an ellipsis if it renders wider than maxW.
func (e *Emitter) fit(label string, maxW float64, class FontClass) string {
	if e.width(label, class) <= maxW {
		return label
	}
	runes := []rune(label)
	for len(runes) > 1 {
		runes = runes[:len(runes)-1]
		if candidate := string(runes) + "…"; e.width(candidate, class) <= maxW {
			return candidate
		}
	}
	return string(runes)
}

func (e *Emitter) width(text string, class FontClass) float64 {
	if e.measurer != nil {
		w, _ := e.measurer.MeasureText(text, class)
		return w
	}
	return float64(len([]rune(text))) * estimatedCharWidth[class]
}
