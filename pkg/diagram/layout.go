package diagram

import (
	"fmt"

	"github.com/seaviz/seaviz/pkg/topology"
)

// group tracks the boxes belonging to one SEA section while they are being
// placed. ec is nil when the section has no etherchannel with members.
type group struct {
	sea  *Box
	ec   *Box
	real []*Box
	virt []*Box
}

// boxes returns the group members in tier order.
func (g *group) boxes() []*Box {
	out := make([]*Box, 0, 2+len(g.real)+len(g.virt))
	out = append(out, g.virt...)
	out = append(out, g.sea)
	if g.ec != nil {
		out = append(out, g.ec)
	}
	out = append(out, g.real...)
	return out
}

// Build lays out one host topology. The measurer may be nil, in which case
// box widths come from the sizer's character-count estimate.
//
// Placement is deterministic: it depends only on the ordered section and
// adapter sequences, never on map iteration order, so the same topology
// always produces bit-identical positions.
func Build(topo topology.Topology, cfg Config, m TextMeasurer) (Layout, error) {
	if err := cfg.Validate(); err != nil {
		return Layout{}, err
	}

	sizer := NewSizer(cfg, m)

	host := newBox("host", TierHostname, topo.Hostname, sizer)
	groups := buildGroups(topo, sizer)

	placeColumns(host, groups, cfg)
	placeTiers(host, groups, cfg)

	l := Layout{Hostname: host.Label}
	l.Boxes = collect(host, groups)

	if cfg.ResolveCollisions {
		l.ResidualOverlaps = resolveCollisions(l.Boxes, cfg)
	}

	normalize(l.Boxes, cfg.Margin)
	l.Width, l.Height = canvasSize(l.Boxes, cfg.Margin)

	l.Edges = routeAll(l, groups)
	return l, nil
}

// newBox creates a sized, unpositioned box.
func newBox(id string, tier Tier, rawLabel string, sizer *Sizer) *Box {
	b := &Box{ID: id, Tier: tier, Label: sizer.Label(rawLabel)}
	b.W, b.H = sizer.Size(rawLabel, tier)
	return b
}

// adapterLabel renders an adapter reference as box text. The hardware path
// is part of the label so identically named adapters on different slots
// stay distinguishable.
func adapterLabel(ref topology.AdapterRef) string {
	if ref.Name == "" {
		return ""
	}
	if ref.HardwarePath == "" {
		return ref.Name
	}
	return fmt.Sprintf("%s (%s)", ref.Name, ref.HardwarePath)
}

// buildGroups sizes every box of every SEA section.
func buildGroups(topo topology.Topology, sizer *Sizer) []*group {
	groups := make([]*group, len(topo.Sections))
	for i, sec := range topo.Sections {
		g := &group{
			sea: newBox(fmt.Sprintf("sea[%d]", i), TierSea, sec.Name, sizer),
		}
		if sec.HasEtherchannel() {
			label := sec.EtherchannelAdapters()[0]
			for _, a := range sec.EtherchannelAdapters()[1:] {
				label += ", " + a
			}
			g.ec = newBox(fmt.Sprintf("sea[%d]/etherchannel", i), TierEtherchannel, label, sizer)
		}
		for j, ref := range sec.RealAdapters {
			g.real = append(g.real, newBox(
				fmt.Sprintf("sea[%d]/real[%d]", i, j), TierRealAdapter, adapterLabel(ref), sizer))
		}
		for j, ref := range sec.VirtualAdapters {
			g.virt = append(g.virt, newBox(
				fmt.Sprintf("sea[%d]/virtual[%d]", i, j), TierVirtualAdapter, adapterLabel(ref), sizer))
		}
		groups[i] = g
	}
	return groups
}

// rowWidth is the total span of sibling boxes laid side by side with gaps.
func rowWidth(row []*Box, gap float64) float64 {
	if len(row) == 0 {
		return 0
	}
	w := gap * float64(len(row)-1)
	for _, b := range row {
		w += b.W
	}
	return w
}

// placeRow positions siblings left-to-right, centered within the column
// span [x, x+colW].
func placeRow(row []*Box, x, colW, gap float64) {
	cursor := x + (colW-rowWidth(row, gap))/2
	for _, b := range row {
		b.X = cursor
		cursor += b.W + gap
	}
}

// placeColumns assigns x coordinates: each SEA group gets a column wide
// enough for its widest row, columns run left to right with the component
// gap between them, and the hostname is centered over everything.
func placeColumns(host *Box, groups []*group, cfg Config) {
	gap := cfg.ComponentSpacing

	colW := make([]float64, len(groups))
	groupsW := 0.0
	for i, g := range groups {
		w := g.sea.W
		if ec := g.ec; ec != nil && ec.W > w {
			w = ec.W
		}
		if rw := rowWidth(g.real, gap); rw > w {
			w = rw
		}
		if rw := rowWidth(g.virt, gap); rw > w {
			w = rw
		}
		colW[i] = w
		groupsW += w
	}
	if len(groups) > 0 {
		groupsW += gap * float64(len(groups)-1)
	}

	contentW := groupsW
	if host.W > contentW {
		contentW = host.W
	}

	// When the hostname box is the widest thing on the canvas the group
	// columns share its slack evenly.
	x := (contentW - groupsW) / 2
	for i, g := range groups {
		placeRow(g.virt, x, colW[i], gap)
		placeRow([]*Box{g.sea}, x, colW[i], gap)
		if g.ec != nil {
			placeRow([]*Box{g.ec}, x, colW[i], gap)
		}
		placeRow(g.real, x, colW[i], gap)
		x += colW[i] + gap
	}

	host.X = (contentW - host.W) / 2
}

// placeTiers assigns y coordinates. Each tier sits below the cumulative
// height of the non-empty tiers above it plus the line spacing; a tier with
// no boxes occupies no vertical space.
func placeTiers(host *Box, groups []*group, cfg Config) {
	occupied := [tierCount]bool{TierHostname: true}
	for _, g := range groups {
		occupied[TierSea] = true
		occupied[TierEtherchannel] = occupied[TierEtherchannel] || g.ec != nil
		occupied[TierRealAdapter] = occupied[TierRealAdapter] || len(g.real) > 0
		occupied[TierVirtualAdapter] = occupied[TierVirtualAdapter] || len(g.virt) > 0
	}

	var tierY [tierCount]float64
	y := 0.0
	for t := Tier(0); t < tierCount; t++ {
		if !occupied[t] {
			continue
		}
		tierY[t] = y
		y += cfg.BoxHeight + cfg.LineSpacing
	}

	host.Y = tierY[TierHostname]
	for _, g := range groups {
		for _, b := range g.boxes() {
			b.Y = tierY[b.Tier]
		}
	}
}

// collect flattens the placed boxes into the stable processing order:
// tier by tier, original sequence within a tier.
func collect(host *Box, groups []*group) []Box {
	boxes := []Box{*host}
	for _, g := range groups {
		for _, b := range g.virt {
			boxes = append(boxes, *b)
		}
	}
	for _, g := range groups {
		boxes = append(boxes, *g.sea)
	}
	for _, g := range groups {
		if g.ec != nil {
			boxes = append(boxes, *g.ec)
		}
	}
	for _, g := range groups {
		for _, b := range g.real {
			boxes = append(boxes, *b)
		}
	}
	return boxes
}

// normalize translates all boxes so the layout starts exactly one margin
// from the origin, even if the collision pass pushed something outward.
func normalize(boxes []Box, margin float64) {
	if len(boxes) == 0 {
		return
	}
	minX, minY := boxes[0].Left(), boxes[0].Top()
	for _, b := range boxes[1:] {
		if b.Left() < minX {
			minX = b.Left()
		}
		if b.Top() < minY {
			minY = b.Top()
		}
	}
	dx, dy := margin-minX, margin-minY
	for i := range boxes {
		boxes[i].X += dx
		boxes[i].Y += dy
	}
}

// canvasSize computes the drawing surface dimensions: the bounding box of
// all placed rectangles plus the margin on every side.
func canvasSize(boxes []Box, margin float64) (w, h float64) {
	maxX, maxY := 0.0, 0.0
	for _, b := range boxes {
		if b.Right() > maxX {
			maxX = b.Right()
		}
		if b.Bottom() > maxY {
			maxY = b.Bottom()
		}
	}
	if len(boxes) == 0 {
		return 2 * margin, 2 * margin
	}
	return maxX + margin, maxY + margin
}

// routeAll connects every parent/child pair using the boxes' final
// positions: hostname → SEA, SEA → virtual adapters, SEA → etherchannel
// (or directly to real adapters when there is none), etherchannel → real
// adapters.
func routeAll(l Layout, groups []*group) []Edge {
	final := make(map[string]Box, len(l.Boxes))
	for _, b := range l.Boxes {
		final[b.ID] = b
	}

	host := final["host"]
	var edges []Edge
	connect := func(parent, child Box) {
		edges = append(edges, Route(parent, child))
	}

	for _, g := range groups {
		sea := final[g.sea.ID]
		connect(host, sea)
		for _, v := range g.virt {
			connect(sea, final[v.ID])
		}
		realParent := sea
		if g.ec != nil {
			ec := final[g.ec.ID]
			connect(sea, ec)
			realParent = ec
		}
		for _, r := range g.real {
			connect(realParent, final[r.ID])
		}
	}
	return edges
}
