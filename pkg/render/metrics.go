package render

import (
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/seaviz/seaviz/pkg/diagram"
)

// Font sizes in points at 72 DPI, one per label class.
const (
	sizeSmall  = 11.0
	sizeMedium = 13.0
	sizeLarge  = 16.0
)

// systemFonts are tried in order before falling back to the embedded Go
// regular face. Names cover the common Linux and macOS installs.
var systemFonts = []string{
	"DejaVuSans.ttf",
	"LiberationSans-Regular.ttf",
	"Arial.ttf",
	"Helvetica.ttf",
}

// Metrics measures and renders label text with real truetype faces so the
// sizer and the surfaces agree on widths. It implements
// [diagram.TextMeasurer].
type Metrics struct {
	faces map[diagram.FontClass]font.Face
}

// NewMetrics loads a sans-serif system font, or the embedded Go regular face
// when none is found, and prepares one face per font class.
func NewMetrics() (*Metrics, error) {
	f, err := loadFont()
	if err != nil {
		return nil, err
	}

	faces := make(map[diagram.FontClass]font.Face, 3)
	for class, size := range map[diagram.FontClass]float64{
		diagram.FontSmall:  sizeSmall,
		diagram.FontMedium: sizeMedium,
		diagram.FontLarge:  sizeLarge,
	} {
		faces[class] = truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72})
	}
	return &Metrics{faces: faces}, nil
}

// MeasureText returns the rendered width and line height of text in pixels.
func (m *Metrics) MeasureText(text string, class diagram.FontClass) (w, h float64) {
	face := m.Face(class)
	width := font.MeasureString(face, text)
	metrics := face.Metrics()
	return fixedToFloat(width), fixedToFloat(metrics.Height)
}

// Face returns the truetype face for a font class. Unknown classes get the
// small face.
func (m *Metrics) Face(class diagram.FontClass) font.Face {
	if f, ok := m.faces[class]; ok {
		return f
	}
	return m.faces[diagram.FontSmall]
}

func loadFont() (*truetype.Font, error) {
	for _, name := range systemFonts {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if f, err := truetype.Parse(data); err == nil {
			return f, nil
		}
	}

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}
	return f, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
