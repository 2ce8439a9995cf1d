package sink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/seaviz/seaviz/pkg/topology"
)

// DOTOptions configures node-link rendering of a topology.
type DOTOptions struct {
	// Detailed includes hardware paths in adapter labels.
	Detailed bool
}

// Node fill colors matching the tier palette of the diagram renderer.
const (
	dotHostFill    = "#4682b4"
	dotSeaFill     = "#ffa500"
	dotEtherFill   = "#32cd32"
	dotRealFill    = "#ff4500"
	dotVirtualFill = "#8a2be2"
)

// ToDOT converts a topology to Graphviz DOT format for node-link
// visualization, an alternative to the tiered diagram. The result can be
// rendered with [RenderDOTSVG] or [RenderDOTPNG].
func ToDOT(t topology.Topology, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	host := t.Hostname
	if host == "" {
		host = "unnamed"
	}
	fmt.Fprintf(&buf, "  %q [fillcolor=%q, fontcolor=white];\n", host, dotHostFill)

	for i, sec := range t.Sections {
		sea := nodeID("sea", i, sec.Name)
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n", sea, labelOr(sec.Name), dotSeaFill)
		fmt.Fprintf(&buf, "  %q -> %q;\n", host, sea)

		for j, v := range sec.VirtualAdapters {
			id := nodeID("virt", i, fmt.Sprintf("%d/%s", j, v.Name))
			fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q, fontcolor=white];\n",
				id, adapterLabel(v, opts.Detailed), dotVirtualFill)
			fmt.Fprintf(&buf, "  %q -> %q;\n", sea, id)
		}

		realParent := sea
		if sec.HasEtherchannel() {
			ecLabel := strings.Join(sec.EtherchannelAdapters(), ", ")
			ec := nodeID("ec", i, ecLabel)
			fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n", ec, ecLabel, dotEtherFill)
			fmt.Fprintf(&buf, "  %q -> %q;\n", sea, ec)
			realParent = ec
		}
		for j, r := range sec.RealAdapters {
			id := nodeID("real", i, fmt.Sprintf("%d/%s", j, r.Name))
			fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q, fontcolor=white];\n",
				id, adapterLabel(r, opts.Detailed), dotRealFill)
			fmt.Fprintf(&buf, "  %q -> %q;\n", realParent, id)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(kind string, section int, name string) string {
	return fmt.Sprintf("%s%d:%s", kind, section, name)
}

func labelOr(name string) string {
	if name == "" {
		return "unnamed"
	}
	return name
}

func adapterLabel(a topology.AdapterRef, detailed bool) string {
	label := labelOr(a.Name)
	if detailed && a.HardwarePath != "" {
		label += "\n" + a.HardwarePath
	}
	return label
}

// RenderDOTSVG renders a DOT graph to SVG using Graphviz.
func RenderDOTSVG(dot string) ([]byte, error) {
	return renderDOT(dot, graphviz.SVG)
}

// RenderDOTPNG renders a DOT graph to PNG using Graphviz.
func RenderDOTPNG(dot string) ([]byte, error) {
	return renderDOT(dot, graphviz.PNG)
}

func renderDOT(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if format == graphviz.SVG {
		return normalizeViewBox(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites Graphviz's point-based svg element into a pixel
// viewBox anchored at the origin so downstream converters agree on size.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
