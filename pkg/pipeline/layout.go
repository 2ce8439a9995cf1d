package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/seaviz/seaviz/pkg/cache"
	"github.com/seaviz/seaviz/pkg/diagram"
	"github.com/seaviz/seaviz/pkg/errors"
	"github.com/seaviz/seaviz/pkg/observability"
	"github.com/seaviz/seaviz/pkg/topology"
)

// ComputeLayoutWithCacheInfo computes the tiered layout for one host with
// caching and returns cache hit info. The cache key covers the topology
// content and every layout-affecting option, so changing either recomputes.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, topo topology.Topology, opts Options) (diagram.Layout, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return diagram.Layout{}, false, err
	}
	r.applyLogger(&opts)

	topoData, err := topology.Marshal(topo)
	if err != nil {
		return diagram.Layout{}, false, errors.Wrap(errors.ErrCodeInternal, err, "hash topology")
	}
	cacheKey := r.Keyer.LayoutKey(cache.Hash(topoData), opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached diagram.Layout
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return cached, true, nil
			}
			// Fall through and recompute on deserialization failure.
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, topo.Hostname, topo.BoxCount())

	var m diagram.TextMeasurer
	if metrics := r.fontMetrics(); metrics != nil {
		m = metrics
	}
	layout, err := diagram.Build(topo, opts.LayoutConfig(), m)
	observability.Pipeline().OnLayoutComplete(ctx, topo.Hostname, time.Since(start), err)
	if err != nil {
		return diagram.Layout{}, false, errors.Wrap(errors.ErrCodeInternal, err, "layout %s", topo.Hostname)
	}

	if data, err := json.Marshal(layout); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return layout, false, nil
}

// ComputeLayout is a convenience wrapper that calls ComputeLayoutWithCacheInfo
// and discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, topo topology.Topology, opts Options) (diagram.Layout, error) {
	layout, _, err := r.ComputeLayoutWithCacheInfo(ctx, topo, opts)
	return layout, err
}
