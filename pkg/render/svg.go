package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"

	"github.com/seaviz/seaviz/pkg/diagram"
)

// Pixel font sizes for SVG text, matching the raster faces.
var svgFontSize = map[diagram.FontClass]float64{
	diagram.FontSmall:  sizeSmall,
	diagram.FontMedium: sizeMedium,
	diagram.FontLarge:  sizeLarge,
}

const svgFontFamily = "Helvetica, Arial, sans-serif"

// SVG builds an SVG document from layout draw calls. Elements accumulate in
// a buffer; Bytes wraps them in the document frame with a normalized viewBox.
type SVG struct {
	width, height float64
	body          bytes.Buffer
}

// NewSVG creates a surface for a canvas of width x height pixels.
func NewSVG(width, height float64) *SVG {
	return &SVG{width: width, height: height}
}

// DrawRectangle emits a filled, outlined <rect>.
func (s *SVG) DrawRectangle(x, y, w, h float64, fill color.Color) {
	fmt.Fprintf(&s.body,
		`  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="black" stroke-width="1"/>`+"\n",
		x, y, w, h, hexColor(fill))
}

// DrawText emits a <text> element centered on (x, y).
func (s *SVG) DrawText(x, y float64, text string, class diagram.FontClass) {
	var escaped bytes.Buffer
	_ = xml.EscapeText(&escaped, []byte(text))
	fmt.Fprintf(&s.body,
		`  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.0f">%s</text>`+"\n",
		x, y, svgFontFamily, svgFontSize[class], escaped.String())
}

// DrawLine emits a one-pixel black <line>.
func (s *SVG) DrawLine(x1, y1, x2, y2 float64) {
	fmt.Fprintf(&s.body,
		`  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="black" stroke-width="1"/>`+"\n",
		x1, y1, x2, y2)
}

// Bytes returns the complete SVG document.
func (s *SVG) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.width, s.height, s.width, s.height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="white"/>`+"\n")
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
