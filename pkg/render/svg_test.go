package render

import (
	"image/color"
	"strings"
	"testing"

	"github.com/seaviz/seaviz/pkg/diagram"
)

func TestSVGDocumentFrame(t *testing.T) {
	s := NewSVG(320, 215)
	got := string(s.Bytes())

	want := `viewBox="0 0 320.0 215.0"`
	if !strings.Contains(got, want) {
		t.Errorf("Bytes() missing %q in %q", want, got)
	}
	if !strings.HasPrefix(got, "<svg") || !strings.HasSuffix(got, "</svg>\n") {
		t.Errorf("Bytes() not a complete document: %q", got)
	}
}

func TestSVGElements(t *testing.T) {
	s := NewSVG(200, 100)
	s.DrawLine(10, 20, 30, 40)
	s.DrawRectangle(5, 5, 120, 35, color.RGBA{255, 165, 0, 255})
	s.DrawText(65, 22.5, "ent8", diagram.FontMedium)
	got := string(s.Bytes())

	for _, want := range []string{
		`<line x1="10.0" y1="20.0" x2="30.0" y2="40.0" stroke="black"`,
		`<rect x="5.0" y="5.0" width="120.0" height="35.0" fill="#ffa500" stroke="black"`,
		`<text x="65.0" y="22.5" text-anchor="middle"`,
		`>ent8</text>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Bytes() missing %q", want)
		}
	}
}

func TestSVGEscapesText(t *testing.T) {
	s := NewSVG(100, 100)
	s.DrawText(10, 10, "a<b&c", diagram.FontSmall)
	got := string(s.Bytes())

	if strings.Contains(got, ">a<b&c</text>") {
		t.Fatalf("Bytes() emitted unescaped text: %q", got)
	}
	if !strings.Contains(got, "a&lt;b&amp;c") {
		t.Errorf("Bytes() = %q, want escaped label", got)
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want string
	}{
		{"steel blue", color.RGBA{70, 130, 180, 255}, "#4682b4"},
		{"black", color.Black, "#000000"},
		{"white", color.White, "#ffffff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hexColor(tt.c); got != tt.want {
				t.Errorf("hexColor() = %q, want %q", got, tt.want)
			}
		})
	}
}
