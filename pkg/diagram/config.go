package diagram

import (
	"fmt"
	"image/color"
)

// Default layout constants, matching the values the diagrams were tuned with.
const (
	DefaultPadding          = 10.0
	DefaultMinWidth         = 120.0
	DefaultBoxHeight        = 35.0
	DefaultComponentSpacing = 25.0
	DefaultLineSpacing      = 15.0
	DefaultMargin           = 60.0
	DefaultSpiralStep       = 10.0
	DefaultMaxSearchRadius  = 500.0
)

// Config holds every tunable the layout engine consumes. All distances are
// pixels. The zero value is not usable; start from DefaultConfig.
type Config struct {
	// Padding is the horizontal space between a label and its box edge.
	Padding float64

	// MinWidth is the floor for every box width regardless of label length.
	MinWidth float64

	// BoxHeight is the fixed height of every box. Labels in this domain are
	// single-line, so height never depends on content.
	BoxHeight float64

	// ComponentSpacing is the horizontal gap between sibling boxes and
	// between SEA groups.
	ComponentSpacing float64

	// LineSpacing is the vertical gap between adjacent tiers.
	LineSpacing float64

	// Margin offsets the whole layout from the canvas origin and pads the
	// computed canvas on all sides.
	Margin float64

	// ResolveCollisions enables the corrective spiral-search pass after tier
	// placement. The tier spacing math keeps common layouts overlap-free on
	// its own; the pass covers pathological label lengths.
	ResolveCollisions bool

	// SpiralStep is the radius increment of the collision search spiral.
	SpiralStep float64

	// MaxSearchRadius bounds the collision search. When exceeded the box
	// keeps its last candidate position and the overlap is reported.
	MaxSearchRadius float64

	// Per-tier fill colors.
	HostnameColor     color.Color
	SeaColor          color.Color
	EtherchannelColor color.Color
	RealAdapterColor  color.Color
	VirtualColor      color.Color
}

// DefaultConfig returns the standard layout configuration.
func DefaultConfig() Config {
	return Config{
		Padding:           DefaultPadding,
		MinWidth:          DefaultMinWidth,
		BoxHeight:         DefaultBoxHeight,
		ComponentSpacing:  DefaultComponentSpacing,
		LineSpacing:       DefaultLineSpacing,
		Margin:            DefaultMargin,
		ResolveCollisions: false,
		SpiralStep:        DefaultSpiralStep,
		MaxSearchRadius:   DefaultMaxSearchRadius,

		HostnameColor:     color.RGBA{70, 130, 180, 255},  // steel blue
		SeaColor:          color.RGBA{255, 165, 0, 255},   // orange
		EtherchannelColor: color.RGBA{50, 205, 50, 255},   // lime green
		RealAdapterColor:  color.RGBA{255, 69, 0, 255},    // red orange
		VirtualColor:      color.RGBA{138, 43, 226, 255},  // blue violet
	}
}

// Validate checks that every field carries a usable value.
func (c Config) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"padding", c.Padding},
		{"min width", c.MinWidth},
		{"box height", c.BoxHeight},
		{"component spacing", c.ComponentSpacing},
		{"line spacing", c.LineSpacing},
	}
	for _, chk := range checks {
		if chk.v <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v", chk.name, chk.v)
		}
	}
	if c.Margin < 0 {
		return fmt.Errorf("config: margin must be non-negative, got %v", c.Margin)
	}
	if c.ResolveCollisions {
		if c.SpiralStep <= 0 {
			return fmt.Errorf("config: spiral step must be positive, got %v", c.SpiralStep)
		}
		if c.MaxSearchRadius < c.SpiralStep {
			return fmt.Errorf("config: max search radius %v smaller than spiral step %v",
				c.MaxSearchRadius, c.SpiralStep)
		}
	}
	for t := Tier(0); t < tierCount; t++ {
		if c.TierColor(t) == nil {
			return fmt.Errorf("config: missing color for %s tier", t)
		}
	}
	return nil
}

// TierColor returns the fill color for boxes of the given tier.
func (c Config) TierColor(t Tier) color.Color {
	switch t {
	case TierHostname:
		return c.HostnameColor
	case TierSea:
		return c.SeaColor
	case TierEtherchannel:
		return c.EtherchannelColor
	case TierRealAdapter:
		return c.RealAdapterColor
	case TierVirtualAdapter:
		return c.VirtualColor
	default:
		return nil
	}
}
