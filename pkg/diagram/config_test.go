package diagram

import "testing"

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero padding", func(c *Config) { c.Padding = 0 }},
		{"negative min width", func(c *Config) { c.MinWidth = -1 }},
		{"zero box height", func(c *Config) { c.BoxHeight = 0 }},
		{"zero component spacing", func(c *Config) { c.ComponentSpacing = 0 }},
		{"zero line spacing", func(c *Config) { c.LineSpacing = 0 }},
		{"negative margin", func(c *Config) { c.Margin = -1 }},
		{"zero spiral step with collisions", func(c *Config) {
			c.ResolveCollisions = true
			c.SpiralStep = 0
		}},
		{"radius below step", func(c *Config) {
			c.ResolveCollisions = true
			c.SpiralStep = 50
			c.MaxSearchRadius = 10
		}},
		{"missing tier color", func(c *Config) { c.SeaColor = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() = nil, want error")
			}
		})
	}
}

func TestConfigZeroMarginAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Margin = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestConfigSpiralIgnoredWhenDisabled(t *testing.T) {
	// Spiral parameters are only consulted when the collision pass runs.
	cfg := DefaultConfig()
	cfg.ResolveCollisions = false
	cfg.SpiralStep = 0
	cfg.MaxSearchRadius = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestTierColor(t *testing.T) {
	cfg := DefaultConfig()
	for tier := Tier(0); tier < tierCount; tier++ {
		if cfg.TierColor(tier) == nil {
			t.Errorf("TierColor(%s) = nil", tier)
		}
	}
	if got := cfg.TierColor(tierCount); got != nil {
		t.Errorf("TierColor(out of range) = %v, want nil", got)
	}
}
