package diagram

import "testing"

// fixedMeasurer returns deterministic text metrics for tests: every rune is
// a fixed width per font class.
type fixedMeasurer struct{}

func (fixedMeasurer) MeasureText(text string, class FontClass) (w, h float64) {
	per := map[FontClass]float64{FontSmall: 6, FontMedium: 8, FontLarge: 10}[class]
	return float64(len([]rune(text))) * per, 12
}

func TestSizerWidthFloor(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSizer(cfg, fixedMeasurer{})

	tests := []struct {
		name  string
		label string
		tier  Tier
		wantW float64
	}{
		{
			name:  "short label hits minimum",
			label: "ent0",
			tier:  TierRealAdapter,
			wantW: cfg.MinWidth, // 4*6 + 20 = 44 < 120
		},
		{
			name:  "long label grows past minimum",
			label: "ent0 (U78AB.001.WZSKM4X-P1-C6-T1)",
			tier:  TierRealAdapter,
			wantW: float64(len("ent0 (U78AB.001.WZSKM4X-P1-C6-T1)"))*6 + 2*cfg.Padding,
		},
		{
			name:  "hostname uses large font",
			label: "vios-with-a-rather-long-name",
			tier:  TierHostname,
			wantW: float64(len("vios-with-a-rather-long-name"))*10 + 2*cfg.Padding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := s.Size(tt.label, tt.tier)
			if w != tt.wantW {
				t.Errorf("Size() width = %v, want %v", w, tt.wantW)
			}
			if h != cfg.BoxHeight {
				t.Errorf("Size() height = %v, want %v", h, cfg.BoxHeight)
			}
			if w < float64(len([]rune(tt.label)))*6 {
				t.Errorf("Size() width %v narrower than text", w)
			}
		})
	}
}

func TestSizerPlaceholder(t *testing.T) {
	s := NewSizer(DefaultConfig(), fixedMeasurer{})
	if got := s.Label(""); got != PlaceholderLabel {
		t.Errorf("Label(\"\") = %q, want %q", got, PlaceholderLabel)
	}
	if got := s.Label("ent5"); got != "ent5" {
		t.Errorf("Label(\"ent5\") = %q, want %q", got, "ent5")
	}

	// Sizing an empty label must still return a positive box.
	w, h := s.Size("", TierSea)
	if w <= 0 || h <= 0 {
		t.Errorf("Size(\"\") = %v x %v, want positive dimensions", w, h)
	}
}

func TestSizerEstimateFallback(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSizer(cfg, nil)

	label := "ent0 (U78AB.001.WZSKM4X-P1-C6-T1-ERIO-LONG-PATH)"
	w, _ := s.Size(label, TierVirtualAdapter)
	want := float64(len([]rune(label)))*estimatedCharWidth[FontSmall] + 2*cfg.Padding
	if w != want {
		t.Errorf("Size() fallback width = %v, want %v", w, want)
	}
	if w < cfg.MinWidth {
		t.Errorf("Size() fallback width %v below minimum %v", w, cfg.MinWidth)
	}
}
