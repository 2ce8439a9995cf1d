package sink

import (
	"bytes"
	"image/png"
	"testing"
)

func TestRenderPNG(t *testing.T) {
	l := buildLayout(t)

	data, err := RenderPNG(l)
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	// Default scale is 2x.
	if got, want := img.Bounds().Dx(), int(l.Width*2+0.5); got != want {
		t.Errorf("width = %d, want %d", got, want)
	}
	if got, want := img.Bounds().Dy(), int(l.Height*2+0.5); got != want {
		t.Errorf("height = %d, want %d", got, want)
	}
}

func TestRenderPNGScale(t *testing.T) {
	l := buildLayout(t)

	data, err := RenderPNG(l, WithScale(1))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got, want := img.Bounds().Dx(), int(l.Width+0.5); got != want {
		t.Errorf("width = %d, want %d", got, want)
	}
}

func TestRenderPNGThumbnail(t *testing.T) {
	l := buildLayout(t)

	data, err := RenderPNG(l, WithThumbnail(200))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got := img.Bounds().Dx(); got != 200 {
		t.Errorf("thumbnail width = %d, want 200", got)
	}
	if img.Bounds().Dy() <= 0 {
		t.Errorf("thumbnail height = %d, want positive", img.Bounds().Dy())
	}
}
