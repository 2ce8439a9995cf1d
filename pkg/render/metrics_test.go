package render

import (
	"testing"

	"github.com/seaviz/seaviz/pkg/diagram"
)

func TestNewMetrics(t *testing.T) {
	m, err := NewMetrics()
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	for _, class := range []diagram.FontClass{diagram.FontSmall, diagram.FontMedium, diagram.FontLarge} {
		if m.Face(class) == nil {
			t.Errorf("Face(%v) = nil", class)
		}
	}
}

func TestMeasureTextGrowsWithLength(t *testing.T) {
	m, err := NewMetrics()
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	short, _ := m.MeasureText("ent8", diagram.FontMedium)
	long, _ := m.MeasureText("ent8_backup_channel", diagram.FontMedium)
	if short <= 0 {
		t.Fatalf("MeasureText(short) = %v, want positive", short)
	}
	if long <= short {
		t.Errorf("MeasureText(long) = %v, want greater than short %v", long, short)
	}
}

func TestMeasureTextClassOrdering(t *testing.T) {
	m, err := NewMetrics()
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	const label = "vios-partition-1"
	small, hs := m.MeasureText(label, diagram.FontSmall)
	medium, _ := m.MeasureText(label, diagram.FontMedium)
	large, hl := m.MeasureText(label, diagram.FontLarge)

	if !(small < medium && medium < large) {
		t.Errorf("widths not ordered by class: small=%v medium=%v large=%v", small, medium, large)
	}
	if !(hs > 0 && hl > hs) {
		t.Errorf("heights not ordered by class: small=%v large=%v", hs, hl)
	}
}
