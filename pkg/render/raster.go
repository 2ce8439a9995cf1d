package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/seaviz/seaviz/pkg/diagram"
)

// Raster is an in-memory image surface. Boxes are drawn as filled rectangles
// with a one-pixel black outline, labels centered, lines one pixel wide. The
// scale factor supersamples the whole canvas for high-DPI output without
// changing layout coordinates.
type Raster struct {
	ctx     *gg.Context
	metrics *Metrics
}

// NewRaster allocates a white canvas of width x height layout pixels scaled
// by scale. A scale at or below zero is treated as 1.
func NewRaster(width, height, scale float64, m *Metrics) *Raster {
	if scale <= 0 {
		scale = 1
	}
	ctx := gg.NewContext(int(width*scale+0.5), int(height*scale+0.5))
	ctx.Scale(scale, scale)
	ctx.SetColor(color.White)
	ctx.DrawRectangle(0, 0, width, height)
	ctx.Fill()
	return &Raster{ctx: ctx, metrics: m}
}

// DrawRectangle fills the rectangle and strokes its outline.
func (r *Raster) DrawRectangle(x, y, w, h float64, fill color.Color) {
	r.ctx.SetColor(fill)
	r.ctx.DrawRectangle(x, y, w, h)
	r.ctx.Fill()

	r.ctx.SetColor(color.Black)
	r.ctx.SetLineWidth(1)
	r.ctx.DrawRectangle(x, y, w, h)
	r.ctx.Stroke()
}

// DrawText renders one line of text centered on (x, y).
func (r *Raster) DrawText(x, y float64, text string, class diagram.FontClass) {
	r.ctx.SetFontFace(r.metrics.Face(class))
	r.ctx.SetColor(color.Black)
	r.ctx.DrawStringAnchored(text, x, y, 0.5, 0.5)
}

// DrawLine strokes a one-pixel black line.
func (r *Raster) DrawLine(x1, y1, x2, y2 float64) {
	r.ctx.SetColor(color.Black)
	r.ctx.SetLineWidth(1)
	r.ctx.DrawLine(x1, y1, x2, y2)
	r.ctx.Stroke()
}

// Image returns the rendered canvas.
func (r *Raster) Image() image.Image {
	return r.ctx.Image()
}

// EncodePNG writes the canvas as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.ctx.EncodePNG(w)
}
