package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/seaviz/seaviz/pkg/cache"
	"github.com/seaviz/seaviz/pkg/render"
	"github.com/seaviz/seaviz/pkg/topology"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache, logger and lazily loaded
// font metrics - it doesn't store pipeline results. Multiple goroutines can
// safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	metricsOnce sync.Once
	metrics     *render.Metrics
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete parse → layout → render pipeline for every
// matching host, with caching at each stage.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{RunID: uuid.NewString()}
	logger := r.Logger.With("run", result.RunID)

	// Stage 1: Parse
	parseStart := time.Now()
	hosts, err := r.parseAll(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.HostCount = len(hosts)

	logger.Info("parsed topologies",
		"hosts", len(hosts),
		"duration", result.Stats.ParseTime)

	// Stages 2+3 run per host so one bad host fails with its name attached.
	for _, ph := range hosts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		hr := HostResult{
			Hostname: ph.topo.Hostname,
			Topology: ph.topo,
		}
		hr.CacheInfo.ParseHit = ph.hit
		if data, err := topology.Marshal(ph.topo); err == nil {
			hr.TopologyHash = cache.Hash(data)
		}

		layoutStart := time.Now()
		layout, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, ph.topo, opts)
		if err != nil {
			return nil, fmt.Errorf("layout %s: %w", ph.topo.Hostname, err)
		}
		hr.Layout = layout
		hr.CacheInfo.LayoutHit = layoutHit
		result.Stats.LayoutTime += time.Since(layoutStart)
		result.Stats.BoxCount += len(layout.Boxes)
		result.Stats.EdgeCount += len(layout.Edges)
		result.Stats.ResidualOverlaps += layout.ResidualOverlaps

		renderStart := time.Now()
		artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, layout, ph.topo, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", ph.topo.Hostname, err)
		}
		hr.Artifacts = artifacts
		hr.CacheInfo.RenderHit = renderHit
		result.Stats.RenderTime += time.Since(renderStart)

		logger.Info("rendered host",
			"host", ph.topo.Hostname,
			"boxes", len(layout.Boxes),
			"edges", len(layout.Edges),
			"formats", opts.Formats)

		result.Hosts = append(result.Hosts, hr)
	}

	return result, nil
}

// fontMetrics returns the shared font metrics, loading them on first use.
// Returns nil when no usable font can be loaded; callers then fall back to
// the sizer's estimated text widths.
func (r *Runner) fontMetrics() *render.Metrics {
	r.metricsOnce.Do(func() {
		m, err := render.NewMetrics()
		if err != nil {
			r.Logger.Warn("font metrics unavailable, using estimated text widths", "err", err)
			return
		}
		r.metrics = m
	})
	return r.metrics
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
