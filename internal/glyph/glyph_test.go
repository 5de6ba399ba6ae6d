package glyph

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestRasterize_ZeroArea(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 100},
		{"zero height", 100, 0},
		{"zero both", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Rasterize("Aoba", tt.width, tt.height, 100)
			if !errors.Is(err, ErrEmptySurface) {
				t.Errorf("expected ErrEmptySurface, got %v", err)
			}
			if img != nil {
				t.Error("expected nil image for zero-area surface")
			}
		})
	}
}

func TestRasterize_DrawsCenteredInk(t *testing.T) {
	img, err := Rasterize("Aoba", 400, 200, 100)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}

	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 200 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}

	// 统计墨迹像素的包围盒，应大致居中
	minX, minY, maxX, maxY := 400, 200, -1, -1
	ink := 0
	for y := 0; y < 200; y++ {
		for x := 0; x < 400; x++ {
			if AlphaAt(img, x, y) > 128 {
				ink++
				minX, maxX = min(minX, x), max(maxX, x)
				minY, maxY = min(minY, y), max(maxY, y)
			}
		}
	}

	if ink == 0 {
		t.Fatal("expected some ink pixels")
	}

	cx := float64(minX+maxX) / 2
	if cx < 180 || cx > 220 {
		t.Errorf("ink not horizontally centred: bbox x=[%d,%d]", minX, maxX)
	}
	cy := float64(minY+maxY) / 2
	if cy < 70 || cy > 130 {
		t.Errorf("ink not vertically centred: bbox y=[%d,%d]", minY, maxY)
	}

	// 四角应为空白
	for _, p := range []image.Point{{0, 0}, {399, 0}, {0, 199}, {399, 199}} {
		if a := AlphaAt(img, p.X, p.Y); a != 0 {
			t.Errorf("corner %v should be transparent, alpha=%d", p, a)
		}
	}
}

func TestSample_Threshold(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	img.SetRGBA(0, 0, color.RGBA{A: 255})
	img.SetRGBA(2, 0, color.RGBA{A: 128}) // 等于阈值，不接受
	img.SetRGBA(4, 2, color.RGBA{A: 129})
	img.SetRGBA(3, 3, color.RGBA{A: 255}) // 不在步长网格上

	cells := Sample(img, 2, 128)

	want := []Cell{{0, 0}, {4, 2}}
	if len(cells) != len(want) {
		t.Fatalf("expected %d cells, got %d: %v", len(want), len(cells), cells)
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("cell %d: expected %v, got %v", i, want[i], cells[i])
		}
	}
}

func TestSample_InvalidInput(t *testing.T) {
	if cells := Sample(nil, 4, 128); cells != nil {
		t.Errorf("expected nil for nil image, got %v", cells)
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if cells := Sample(img, 0, 128); cells != nil {
		t.Errorf("expected nil for zero stride, got %v", cells)
	}
}

func TestSample_Deterministic(t *testing.T) {
	img, err := Rasterize("Aoba", 1024, 768, 256)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}

	first := Sample(img, 6, 128)
	second := Sample(img, 6, 128)
	if len(first) == 0 {
		t.Fatal("expected cells for a 1024x768 label")
	}
	if len(first) != len(second) {
		t.Errorf("sampling not deterministic: %d vs %d", len(first), len(second))
	}
	for _, c := range first {
		if c.X%6 != 0 || c.Y%6 != 0 {
			t.Fatalf("cell %v not on stride grid", c)
		}
	}
}
