package sink

import (
	"github.com/seaviz/seaviz/pkg/diagram"
	"github.com/seaviz/seaviz/pkg/render"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	cfg      diagram.Config
	measurer diagram.TextMeasurer
}

// WithSVGConfig overrides the layout configuration used for fills and label
// truncation.
func WithSVGConfig(cfg diagram.Config) SVGOption {
	return func(r *svgRenderer) { r.cfg = cfg }
}

// WithSVGMetrics sets the text measurer consulted for label truncation.
// Without it the emitter falls back to estimated character widths, which the
// sizing contract keeps safe for boxes sized by the same estimates.
func WithSVGMetrics(m diagram.TextMeasurer) SVGOption {
	return func(r *svgRenderer) { r.measurer = m }
}

// RenderSVG renders the layout as a standalone SVG document.
func RenderSVG(l diagram.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{cfg: diagram.DefaultConfig()}
	for _, opt := range opts {
		opt(&r)
	}

	surface := render.NewSVG(l.Width, l.Height)
	diagram.NewEmitter(r.cfg, r.measurer).Render(l, surface)
	return surface.Bytes()
}
