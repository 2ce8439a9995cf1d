package pipeline

import (
	"context"
	"os"
	"time"

	"github.com/seaviz/seaviz/pkg/cache"
	"github.com/seaviz/seaviz/pkg/errors"
	"github.com/seaviz/seaviz/pkg/lssea"
	"github.com/seaviz/seaviz/pkg/observability"
	"github.com/seaviz/seaviz/pkg/topology"
)

// inputPaths expands the parse options into the ordered list of log files.
func inputPaths(opts Options) ([]string, error) {
	paths := append([]string(nil), opts.Inputs...)
	if opts.Dir != "" {
		globbed, err := lssea.Glob(opts.Dir)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "glob %s", opts.Dir)
		}
		paths = append(paths, globbed...)
	}
	if len(paths) == 0 {
		return nil, errors.New(errors.ErrCodeFileNotFound, "no lssea logs found")
	}
	return paths, nil
}

// parseOne parses a single log with topology-level caching. The cache key is
// the content hash of the raw log, so edited logs never serve stale
// topologies.
func (r *Runner) parseOne(ctx context.Context, path string, opts Options) (topology.Topology, bool, error) {
	start := time.Now()
	observability.Pipeline().OnParseStart(ctx, path)

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		observability.Pipeline().OnParseComplete(ctx, path, 0, time.Since(start), err)
		return topology.Topology{}, false, err
	}
	key := r.Keyer.TopologyKey(cache.Hash(data))

	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if topo, err := topology.Unmarshal(cached); err == nil && safeHostname(topo.Hostname) {
				observability.Cache().OnCacheHit(ctx, "topology")
				observability.Pipeline().OnParseComplete(ctx, path, 1, time.Since(start), nil)
				return topo, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "topology")
	}

	topo, err := lssea.ParseFile(path)
	if err != nil {
		observability.Pipeline().OnParseComplete(ctx, path, 0, time.Since(start), err)
		return topology.Topology{}, false, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}

	// Hostnames come from untrusted log text and end up in output file
	// names. An empty hostname is tolerated (the layout engine substitutes
	// a placeholder); anything path-hostile is not.
	if !safeHostname(topo.Hostname) {
		err := errors.Wrap(errors.ErrCodeInvalidInput,
			errors.ValidateHostname(topo.Hostname), "parse %s", path)
		observability.Pipeline().OnParseComplete(ctx, path, 0, time.Since(start), err)
		return topology.Topology{}, false, err
	}

	if encoded, err := topology.Marshal(topo); err == nil {
		_ = r.Cache.Set(ctx, key, encoded, cache.TTLTopology)
		observability.Cache().OnCacheSet(ctx, "topology", len(encoded))
	}

	observability.Pipeline().OnParseComplete(ctx, path, 1, time.Since(start), nil)
	return topo, false, nil
}

// safeHostname reports whether a log-derived hostname may appear in an
// output file name. Empty is fine; the sizer renders a placeholder label.
func safeHostname(name string) bool {
	return name == "" || errors.ValidateHostname(name) == nil
}

// parsedHost pairs a topology with its cache hit status.
type parsedHost struct {
	topo topology.Topology
	hit  bool
}

// parseAll extracts topologies from every input log, applying the host
// filter and tracking per-host cache hits.
func (r *Runner) parseAll(ctx context.Context, opts Options) ([]parsedHost, error) {
	if err := opts.ValidateForParse(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	paths, err := inputPaths(opts)
	if err != nil {
		return nil, err
	}

	var hosts []parsedHost
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		topo, hit, err := r.parseOne(ctx, path, opts)
		if err != nil {
			return nil, err
		}
		if !opts.WantsHost(topo.Hostname) {
			continue
		}
		hosts = append(hosts, parsedHost{topo: topo, hit: hit})
	}

	if len(hosts) == 0 {
		return nil, errors.New(errors.ErrCodeHostNotFound, "no matching hosts in %d log(s)", len(paths))
	}
	return hosts, nil
}

// Parse extracts topologies from every input log, applying the host filter.
func (r *Runner) Parse(ctx context.Context, opts Options) ([]topology.Topology, error) {
	hosts, err := r.parseAll(ctx, opts)
	if err != nil {
		return nil, err
	}
	topos := make([]topology.Topology, len(hosts))
	for i, h := range hosts {
		topos[i] = h.topo
	}
	return topos, nil
}
