package surfaces

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/gonewx/glyphfield/pkg/systems"
)

// ImageSurface is a CPU raster surface backed by a gg context.
//
// Pixels persist between frames; the only full clear is Clear, which hosts
// call once after creating or resizing the surface.
type ImageSurface struct {
	dc         *gg.Context
	background color.NRGBA
}

// NewImageSurface 创建指定尺寸的表面并填充背景色
// 非正尺寸被视为 0x0：表面存在但不可绘制
func NewImageSurface(width, height int, background color.NRGBA) *ImageSurface {
	s := &ImageSurface{background: background}
	s.Resize(width, height)
	return s
}

// Resize replaces the backing image and clears it to the background.
func (s *ImageSurface) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.dc = gg.NewContext(width, height)
	s.Clear()
}

// Clear 用不透明背景色填充整个表面
func (s *ImageSurface) Clear() {
	s.dc.SetColor(s.background)
	s.dc.Clear()
}

// Size implements systems.Surface.
func (s *ImageSurface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

// FillOverlay implements systems.Surface.
func (s *ImageSurface) FillOverlay(c color.NRGBA) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(0, 0, float64(s.dc.Width()), float64(s.dc.Height()))
	s.dc.Fill()
}

// FillGlow implements systems.Surface.
func (s *ImageSurface) FillGlow(x, y, radius float64, stops []systems.GradientStop) {
	if radius <= 0 || len(stops) == 0 {
		return
	}
	gradient := gg.NewRadialGradient(x, y, 0, x, y, radius)
	for _, stop := range stops {
		gradient.AddColorStop(stop.Offset, stop.Color)
	}
	s.dc.SetFillStyle(gradient)
	s.dc.DrawCircle(x, y, radius)
	s.dc.Fill()
}

// FillCircle implements systems.Surface.
func (s *ImageSurface) FillCircle(x, y, radius float64, c color.NRGBA) {
	s.dc.SetColor(c)
	s.dc.DrawCircle(x, y, radius)
	s.dc.Fill()
}

// StrokeLine implements systems.Surface.
func (s *ImageSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(x0, y0, x1, y1)
	s.dc.Stroke()
}

// Image 返回底层图像（与表面共享像素）
func (s *ImageSurface) Image() image.Image {
	return s.dc.Image()
}

// SavePNG 将当前帧写入 PNG 文件
func (s *ImageSurface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", path, err)
	}
	return nil
}
