// Package glyph rasterizes a text label offscreen and samples the result into
// a grid of "ink" cells.
//
// The rasterizer always uses the embedded Go Bold font so that particle
// counts do not depend on the fonts installed on the host.
package glyph

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

// ErrEmptySurface is returned when the target surface has no area yet.
var ErrEmptySurface = errors.New("glyph: surface has zero area")

var (
	boldOnce sync.Once
	boldFont *truetype.Font
	boldErr  error
)

// BoldFont returns the parsed Go Bold font. Parsing happens once per process.
func BoldFont() (*truetype.Font, error) {
	boldOnce.Do(func() {
		boldFont, boldErr = truetype.Parse(gobold.TTF)
		if boldErr != nil {
			boldErr = fmt.Errorf("failed to parse bold font: %w", boldErr)
		}
	})
	return boldFont, boldErr
}

// NewFace 创建指定像素字号的字体（DPI 72，1pt = 1px）
func NewFace(size float64) (font.Face, error) {
	f, err := BoldFont()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}

// Rasterize 将文字以白色、居中方式绘制到一张 width x height 的透明画布上
//
// 参数:
//   - label: 要绘制的文字
//   - width, height: 画布尺寸（与目标表面一致）
//   - fontSize: 像素字号
//
// 返回:
//   - *image.RGBA: 绘制结果，未绘制区域 alpha = 0
//   - error: 画布面积为 0 或字体加载失败
func Rasterize(label string, width, height int, fontSize float64) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptySurface
	}

	face, err := NewFace(fontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	dc := gg.NewContext(width, height)
	dc.SetFontFace(face)
	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(label, float64(width)/2, float64(height)/2, 0.5, 0.5)

	if rgba, ok := dc.Image().(*image.RGBA); ok {
		return rgba, nil
	}

	// gg 目前总是返回 *image.RGBA，这里只是兜底
	src := dc.Image()
	rgba := image.NewRGBA(src.Bounds())
	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)
	return rgba, nil
}
