// Package pipeline provides the core diagram pipeline for seaviz.
//
// This package implements the complete parse → layout → render pipeline that
// the CLI drives. By centralizing this logic, we ensure consistent caching
// and error behavior across all entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Extract adapter topologies from lssea logs
//  2. Layout: Compute tiered box positions per host
//  3. Render: Generate output in various formats (PNG, SVG, JSON, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Inputs:  []string{"lssea_vios1.log"},
//	    Formats: []string{"png", "json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Hosts[0].Artifacts["png"]
//
// Run individual stages:
//
//	// Parse only
//	topos, err := runner.Parse(ctx, opts)
//
//	// Layout with a parsed topology
//	layout, err := runner.ComputeLayout(ctx, topo, opts)
//
//	// Render with an existing layout
//	artifacts, err := runner.Render(ctx, layout, topo, opts)
package pipeline

import (
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/seaviz/seaviz/pkg/cache"
	"github.com/seaviz/seaviz/pkg/diagram"
	"github.com/seaviz/seaviz/pkg/errors"
	"github.com/seaviz/seaviz/pkg/topology"
)

// Visualization types.
const (
	VizTypeDiagram  = "diagram"
	VizTypeNodelink = "nodelink"
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// DefaultScale is the default PNG supersampling factor.
const DefaultScale = 2.0

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatSVG:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeDiagram:  true,
	VizTypeNodelink: true,
}

// Options contains all configuration for the diagram pipeline.
type Options struct {
	// Parse options
	Inputs  []string `json:"inputs,omitempty"`  // explicit lssea log paths
	Dir     string   `json:"dir,omitempty"`     // directory globbed for lssea*log
	Hosts   []string `json:"hosts,omitempty"`   // restrict output to these hostnames
	Refresh bool     `json:"refresh,omitempty"` // bypass cached results

	// Layout options
	VizType string          `json:"viz_type,omitempty"`
	Collide bool            `json:"collide,omitempty"` // run the collision resolution pass
	Config  *diagram.Config `json:"-"`                 // nil means diagram.DefaultConfig

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	ThumbWidth int      `json:"thumb_width,omitempty"`
	Detailed   bool     `json:"detailed,omitempty"` // include hardware paths in DOT labels

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID correlates log lines of one batch run.
	RunID string

	// Hosts holds one entry per rendered host, in input order.
	Hosts []HostResult

	// Stats contains timing and size information aggregated over hosts.
	Stats Stats
}

// HostResult is the pipeline output for a single host.
type HostResult struct {
	Hostname string

	// Topology is the parsed adapter topology.
	Topology topology.Topology

	// TopologyHash is the content hash of the topology JSON.
	TopologyHash string

	// Layout contains the computed box positions.
	Layout diagram.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	HostCount        int
	BoxCount         int
	EdgeCount        int
	ResidualOverlaps int
	ParseTime        time.Duration
	LayoutTime       time.Duration
	RenderTime       time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ParseHit  bool // Whether the parsed topology came from cache
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: png, svg, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidVizType,
			"invalid viz_type: %q (must be one of: diagram, nodelink)", vizType)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForParse checks required fields for parsing.
func (o *Options) ValidateForParse() error {
	if len(o.Inputs) == 0 && o.Dir == "" {
		return errors.New(errors.ErrCodeInvalidInput, "inputs or dir is required")
	}
	for _, p := range o.Inputs {
		if err := errors.ValidatePath(p); err != nil {
			return err
		}
	}
	return nil
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	if o.VizType == "" {
		o.VizType = VizTypeDiagram
	}
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := o.LayoutConfig().Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "layout config")
	}
	return nil
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	return ValidateFormats(o.Formats)
}

// LayoutConfig returns the effective layout configuration: the explicit one
// when set, otherwise the default, with the collision toggle applied.
func (o *Options) LayoutConfig() diagram.Config {
	cfg := diagram.DefaultConfig()
	if o.Config != nil {
		cfg = *o.Config
	}
	cfg.ResolveCollisions = o.Collide
	return cfg
}

// IsNodelink returns true if this is a nodelink visualization.
func (o Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}

// WantsHost reports whether hostname passes the host filter. An empty filter
// admits every host.
func (o Options) WantsHost(hostname string) bool {
	if len(o.Hosts) == 0 {
		return true
	}
	for _, h := range o.Hosts {
		if h == hostname {
			return true
		}
	}
	return false
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	cfgData, _ := json.Marshal(o.LayoutConfig())
	return cache.LayoutKeyOpts{
		ConfigHash: cache.Hash(cfgData),
		Collide:    o.Collide,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     format,
		VizType:    o.VizType,
		Scale:      o.Scale,
		ThumbWidth: o.ThumbWidth,
		Detailed:   o.Detailed,
	}
}
