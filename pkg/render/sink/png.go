package sink

import (
	"bytes"

	"github.com/disintegration/imaging"

	"github.com/seaviz/seaviz/pkg/diagram"
	"github.com/seaviz/seaviz/pkg/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	cfg        diagram.Config
	metrics    *render.Metrics
	scale      float64
	thumbWidth int
}

// WithPNGConfig overrides the layout configuration used for fills and label
// truncation. It should match the configuration the layout was built with.
func WithPNGConfig(cfg diagram.Config) PNGOption {
	return func(r *pngRenderer) { r.cfg = cfg }
}

// WithScale sets the supersampling factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithMetrics reuses an already loaded text measurer instead of loading
// fonts again per call.
func WithMetrics(m *render.Metrics) PNGOption {
	return func(r *pngRenderer) { r.metrics = m }
}

// WithThumbnail downscales the rendered image to the given pixel width,
// preserving aspect ratio. Zero disables it.
func WithThumbnail(width int) PNGOption {
	return func(r *pngRenderer) { r.thumbWidth = width }
}

// RenderPNG renders the layout to an in-memory raster and encodes it as PNG.
func RenderPNG(l diagram.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{cfg: diagram.DefaultConfig(), scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}

	if r.metrics == nil {
		m, err := render.NewMetrics()
		if err != nil {
			return nil, err
		}
		r.metrics = m
	}

	surface := render.NewRaster(l.Width, l.Height, r.scale, r.metrics)
	diagram.NewEmitter(r.cfg, r.metrics).Render(l, surface)

	var buf bytes.Buffer
	if r.thumbWidth > 0 {
		thumb := imaging.Resize(surface.Image(), r.thumbWidth, 0, imaging.Lanczos)
		if err := imaging.Encode(&buf, thumb, imaging.PNG); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	if err := surface.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
