// Package sink provides the output formats for rendered diagrams.
//
// Each format has one entry point configured with functional options:
//
//   - [RenderPNG]: raster image, optional supersampling and thumbnail
//   - [RenderSVG]: vector document
//   - [RenderJSON]: layout data interchange (boxes, edges, canvas)
//   - [ToDOT] with [RenderDOTSVG]/[RenderDOTPNG]: Graphviz node-link view
//     of the raw topology, an alternative to the tiered diagram
package sink
