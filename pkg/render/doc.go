// Package render provides the drawing backends for SEA diagrams.
//
// # Overview
//
// The layout engine in [diagram] emits draw calls against the
// [diagram.Surface] interface; this package supplies the concrete surfaces:
//
//   - [Raster]: an in-memory image backed by fogleman/gg, encoded as PNG
//   - [SVG]: a buffered SVG document builder
//
// Both surfaces share [Metrics], the truetype text measurer that also feeds
// the box sizer so that measured and rendered label widths agree.
//
// # Output Formats
//
// File-format concerns live in the [sink] subpackage, one entry point per
// format:
//
//	png, err := sink.RenderPNG(layout, sink.WithScale(2.0))
//	svg := sink.RenderSVG(layout)
//	doc, err := sink.RenderJSON(layout)
//	dot := sink.ToDOT(topo)
//
// [diagram]: github.com/seaviz/seaviz/pkg/diagram
// [sink]: github.com/seaviz/seaviz/pkg/render/sink
package render
