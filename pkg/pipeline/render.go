package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/seaviz/seaviz/pkg/cache"
	"github.com/seaviz/seaviz/pkg/diagram"
	"github.com/seaviz/seaviz/pkg/errors"
	"github.com/seaviz/seaviz/pkg/observability"
	"github.com/seaviz/seaviz/pkg/render/sink"
	"github.com/seaviz/seaviz/pkg/topology"
)

// RenderWithCacheInfo renders every requested format for one host with
// caching and returns cache hit info. A render hit means all requested
// formats came from cache; a single missing format re-renders everything so
// the artifacts stay consistent with each other.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, layout diagram.Layout, topo topology.Topology, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	layoutData, err := json.Marshal(layout)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize layout for cache key")
	}
	layoutHash := cache.Hash(layoutData)

	if !opts.Refresh {
		cached := make(map[string][]byte, len(opts.Formats))
		allCached := true
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				allCached = false
				break
			}
			cached[format] = data
		}
		if allCached {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return cached, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, layout.Hostname, opts.Formats)

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := r.renderFormat(layout, topo, opts, format)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, layout.Hostname, opts.Formats, time.Since(start), err)
			return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "render %s as %s", layout.Hostname, format)
		}
		artifacts[format] = data
	}
	observability.Pipeline().OnRenderComplete(ctx, layout.Hostname, opts.Formats, time.Since(start), nil)

	for format, data := range artifacts {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return artifacts, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, layout diagram.Layout, topo topology.Topology, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, layout, topo, opts)
	return artifacts, err
}

// renderFormat produces one output format. The diagram visualization draws
// the tiered layout directly; nodelink routes everything through Graphviz.
func (r *Runner) renderFormat(layout diagram.Layout, topo topology.Topology, opts Options, format string) ([]byte, error) {
	if opts.IsNodelink() {
		return renderNodelink(layout, topo, opts, format)
	}

	switch format {
	case FormatPNG:
		pngOpts := []sink.PNGOption{
			sink.WithPNGConfig(opts.LayoutConfig()),
			sink.WithScale(opts.Scale),
		}
		if m := r.fontMetrics(); m != nil {
			pngOpts = append(pngOpts, sink.WithMetrics(m))
		}
		if opts.ThumbWidth > 0 {
			pngOpts = append(pngOpts, sink.WithThumbnail(opts.ThumbWidth))
		}
		return sink.RenderPNG(layout, pngOpts...)
	case FormatSVG:
		svgOpts := []sink.SVGOption{sink.WithSVGConfig(opts.LayoutConfig())}
		if m := r.fontMetrics(); m != nil {
			svgOpts = append(svgOpts, sink.WithSVGMetrics(m))
		}
		return sink.RenderSVG(layout, svgOpts...), nil
	case FormatJSON:
		return sink.RenderJSON(layout)
	case FormatDOT:
		return []byte(sink.ToDOT(topo, sink.DOTOptions{Detailed: opts.Detailed})), nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %q", format)
}

func renderNodelink(layout diagram.Layout, topo topology.Topology, opts Options, format string) ([]byte, error) {
	dot := sink.ToDOT(topo, sink.DOTOptions{Detailed: opts.Detailed})
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return sink.RenderDOTSVG(dot)
	case FormatPNG:
		return sink.RenderDOTPNG(dot)
	case FormatJSON:
		// The box model is format-independent; JSON output is identical
		// for both visualization types.
		return sink.RenderJSON(layout)
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %q", format)
}
