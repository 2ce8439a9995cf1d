package diagram

// TextMeasurer reports the rendered pixel size of text at a font class.
// Drawing surfaces implement it; the sizer treats it as optional and falls
// back to a character-count estimate when nil.
type TextMeasurer interface {
	MeasureText(text string, class FontClass) (w, h float64)
}

// PlaceholderLabel substitutes for entities with missing names, so a
// malformed topology still yields a renderable diagram.
const PlaceholderLabel = "unnamed"

// Average glyph width per font class, used when no measurer is available.
var estimatedCharWidth = map[FontClass]float64{
	FontSmall:  6.0,
	FontMedium: 7.5,
	FontLarge:  9.5,
}

// Sizer computes box dimensions from label text. It never fails: empty
// labels get a placeholder and a missing measurer degrades to an estimate.
type Sizer struct {
	cfg      Config
	measurer TextMeasurer
}

// NewSizer creates a sizer for the given configuration. measurer may be nil.
func NewSizer(cfg Config, measurer TextMeasurer) *Sizer {
	return &Sizer{cfg: cfg, measurer: measurer}
}

// Label normalizes a raw entity name into a drawable label.
func (s *Sizer) Label(raw string) string {
	if raw == "" {
		return PlaceholderLabel
	}
	return raw
}

// Size returns the box dimensions for a label on the given tier:
// width = max(text width + 2*padding, configured minimum), height is the
// fixed per-tier constant.
func (s *Sizer) Size(label string, tier Tier) (w, h float64) {
	label = s.Label(label)
	w = s.textWidth(label, fontForTier(tier)) + 2*s.cfg.Padding
	if w < s.cfg.MinWidth {
		w = s.cfg.MinWidth
	}
	return w, s.cfg.BoxHeight
}

func (s *Sizer) textWidth(label string, class FontClass) float64 {
	if s.measurer != nil {
		w, _ := s.measurer.MeasureText(label, class)
		return w
	}
	return float64(len([]rune(label))) * estimatedCharWidth[class]
}
