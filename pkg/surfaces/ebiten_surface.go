package surfaces

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/glyphfield/pkg/systems"
)

// glowRings 径向渐变的近似环数
// ebiten 的 vector 包没有径向渐变，用同心圆从外到内叠加
const glowRings = 4

// EbitenSurface draws onto an offscreen ebiten image that persists between
// frames. The host composes it onto the screen in Draw.
type EbitenSurface struct {
	image      *ebiten.Image
	width      int
	height     int
	background color.NRGBA
}

// NewEbitenSurface 创建离屏表面
func NewEbitenSurface(width, height int, background color.NRGBA) *EbitenSurface {
	s := &EbitenSurface{background: background}
	s.Resize(width, height)
	return s
}

// Resize recreates the offscreen image. A zero-area size keeps no image and
// makes every draw call a no-op.
func (s *EbitenSurface) Resize(width, height int) {
	if s.image != nil {
		s.image.Deallocate()
		s.image = nil
	}
	s.width, s.height = max(width, 0), max(height, 0)
	if s.width == 0 || s.height == 0 {
		return
	}
	s.image = ebiten.NewImage(s.width, s.height)
	s.image.Fill(s.background)
}

// Image 返回离屏图像，零面积时为 nil
func (s *EbitenSurface) Image() *ebiten.Image {
	return s.image
}

// Size implements systems.Surface.
func (s *EbitenSurface) Size() (int, int) {
	return s.width, s.height
}

// FillOverlay implements systems.Surface.
func (s *EbitenSurface) FillOverlay(c color.NRGBA) {
	if s.image == nil {
		return
	}
	vector.DrawFilledRect(s.image, 0, 0, float32(s.width), float32(s.height), c, false)
}

// FillGlow implements systems.Surface.
func (s *EbitenSurface) FillGlow(x, y, radius float64, stops []systems.GradientStop) {
	if s.image == nil || radius <= 0 {
		return
	}
	for i, c := range glowRingColors(stops, glowRings) {
		if c.A == 0 {
			continue
		}
		offset := float64(glowRings-i) / glowRings
		vector.DrawFilledCircle(s.image, float32(x), float32(y), float32(radius*offset), c, true)
	}
}

// glowRingColors 返回从外到内各环的颜色
//
// 第 k 个环（由内向外，从 1 计）的半径为 k/n，环带 ((k-1)/n, k/n] 被第 k..n 个环覆盖。
// 各环透明度按 1-T_k = Π(1-a_j) 反解，使环带叠加后的透明度等于渐变在 (k-1)/n 处的值。
func glowRingColors(stops []systems.GradientStop, rings int) []color.NRGBA {
	colors := make([]color.NRGBA, rings)
	covered := 0.0 // 外侧各环已叠加的透明度
	for k := rings; k >= 1; k-- {
		c := GradientAt(stops, float64(k-1)/float64(rings))
		target := float64(c.A) / 255

		alpha := 0.0
		if target > covered && covered < 1 {
			alpha = 1 - (1-target)/(1-covered)
		}
		c.A = uint8(math.Round(alpha * 255))
		colors[rings-k] = c
		covered = math.Max(covered, target)
	}
	return colors
}

// FillCircle implements systems.Surface.
func (s *EbitenSurface) FillCircle(x, y, radius float64, c color.NRGBA) {
	if s.image == nil {
		return
	}
	vector.DrawFilledCircle(s.image, float32(x), float32(y), float32(radius), c, true)
}

// StrokeLine implements systems.Surface.
func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	if s.image == nil || c.A == 0 {
		return
	}
	vector.StrokeLine(s.image, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}
