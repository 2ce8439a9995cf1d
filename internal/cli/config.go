package cli

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/seaviz/seaviz/pkg/diagram"
	"github.com/seaviz/seaviz/pkg/pipeline"
)

// fileConfig mirrors the structure of a seaviz TOML config file. Every field
// is optional; unset values keep their defaults, and command-line flags win
// over config file values.
//
// Example:
//
//	[layout]
//	min_width = 150.0
//	resolve_collisions = true
//
//	[colors]
//	sea = "#ffa500"
//
//	[render]
//	formats = ["png", "svg"]
//	scale = 2.0
type fileConfig struct {
	Layout layoutConfig `toml:"layout"`
	Colors colorConfig  `toml:"colors"`
	Render renderConfig `toml:"render"`
}

type layoutConfig struct {
	Padding           *float64 `toml:"padding"`
	MinWidth          *float64 `toml:"min_width"`
	BoxHeight         *float64 `toml:"box_height"`
	ComponentSpacing  *float64 `toml:"component_spacing"`
	LineSpacing       *float64 `toml:"line_spacing"`
	Margin            *float64 `toml:"margin"`
	ResolveCollisions *bool    `toml:"resolve_collisions"`
	SpiralStep        *float64 `toml:"spiral_step"`
	MaxSearchRadius   *float64 `toml:"max_search_radius"`
}

type colorConfig struct {
	Hostname     string `toml:"hostname"`
	Sea          string `toml:"sea"`
	Etherchannel string `toml:"etherchannel"`
	Real         string `toml:"real"`
	Virtual      string `toml:"virtual"`
}

type renderConfig struct {
	VizType    string   `toml:"viz_type"`
	Formats    []string `toml:"formats"`
	Scale      *float64 `toml:"scale"`
	ThumbWidth *int     `toml:"thumb_width"`
	Detailed   *bool    `toml:"detailed"`
}

// loadConfigFile decodes the TOML file at path.
func loadConfigFile(path string) (*fileConfig, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return &fc, nil
}

// diagramConfig builds a diagram.Config from the file, starting from the
// defaults and overriding only the fields the file sets.
func (fc *fileConfig) diagramConfig() (diagram.Config, error) {
	cfg := diagram.DefaultConfig()

	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setF(&cfg.Padding, fc.Layout.Padding)
	setF(&cfg.MinWidth, fc.Layout.MinWidth)
	setF(&cfg.BoxHeight, fc.Layout.BoxHeight)
	setF(&cfg.ComponentSpacing, fc.Layout.ComponentSpacing)
	setF(&cfg.LineSpacing, fc.Layout.LineSpacing)
	setF(&cfg.Margin, fc.Layout.Margin)
	setF(&cfg.SpiralStep, fc.Layout.SpiralStep)
	setF(&cfg.MaxSearchRadius, fc.Layout.MaxSearchRadius)
	if fc.Layout.ResolveCollisions != nil {
		cfg.ResolveCollisions = *fc.Layout.ResolveCollisions
	}

	setC := func(dst *color.Color, src string) error {
		if src == "" {
			return nil
		}
		c, err := parseHexColor(src)
		if err != nil {
			return err
		}
		*dst = c
		return nil
	}
	for _, pair := range []struct {
		dst *color.Color
		src string
	}{
		{&cfg.HostnameColor, fc.Colors.Hostname},
		{&cfg.SeaColor, fc.Colors.Sea},
		{&cfg.EtherchannelColor, fc.Colors.Etherchannel},
		{&cfg.RealAdapterColor, fc.Colors.Real},
		{&cfg.VirtualColor, fc.Colors.Virtual},
	} {
		if err := setC(pair.dst, pair.src); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// applyRenderDefaults copies render settings from the file onto opts, for
// every option the command line left unset.
func (fc *fileConfig) applyRenderDefaults(opts *pipeline.Options) {
	if opts.VizType == "" && fc.Render.VizType != "" {
		opts.VizType = fc.Render.VizType
	}
	if len(opts.Formats) == 0 && len(fc.Render.Formats) > 0 {
		opts.Formats = fc.Render.Formats
	}
	if opts.Scale == 0 && fc.Render.Scale != nil {
		opts.Scale = *fc.Render.Scale
	}
	if opts.ThumbWidth == 0 && fc.Render.ThumbWidth != nil {
		opts.ThumbWidth = *fc.Render.ThumbWidth
	}
	if !opts.Detailed && fc.Render.Detailed != nil {
		opts.Detailed = *fc.Render.Detailed
	}
}

// parseHexColor parses "#rrggbb" or "rrggbb" into an opaque color.
func parseHexColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return nil, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
