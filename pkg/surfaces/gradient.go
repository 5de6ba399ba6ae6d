// Package surfaces 提供 systems.Surface 的各宿主实现
//
//   - ImageSurface: 基于 gg 的 CPU 光栅，用于无界面快照和测试
//   - EbitenSurface: 基于 ebiten 离屏图像，用于桌面和移动端窗口
//   - TerminalSurface: 基于 tcell 的字符单元缓冲，用于终端
package surfaces

import (
	"image/color"
	"math"

	"github.com/gonewx/glyphfield/pkg/systems"
)

// GradientAt 在 offset 处插值渐变颜色，offset 超出首尾色标时取端点颜色
func GradientAt(stops []systems.GradientStop, offset float64) color.NRGBA {
	if len(stops) == 0 {
		return color.NRGBA{}
	}
	if offset <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if offset > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		t := (offset - a.Offset) / span
		return color.NRGBA{
			R: lerp8(a.Color.R, b.Color.R, t),
			G: lerp8(a.Color.G, b.Color.G, t),
			B: lerp8(a.Color.B, b.Color.B, t),
			A: lerp8(a.Color.A, b.Color.A, t),
		}
	}
	return stops[len(stops)-1].Color
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// blend 把 src 按其 alpha 合成到不透明的 dst 上
// 每个通道至少前进一级，反复覆盖时最终收敛到 src，不留残影
func blend(dst, src color.NRGBA) color.NRGBA {
	a := float64(src.A) / 255
	return color.NRGBA{
		R: blendChannel(dst.R, src.R, a),
		G: blendChannel(dst.G, src.G, a),
		B: blendChannel(dst.B, src.B, a),
		A: 255,
	}
}

func blendChannel(dst, src uint8, a float64) uint8 {
	delta := (float64(src) - float64(dst)) * a
	switch {
	case delta > 0:
		return dst + uint8(math.Ceil(delta))
	case delta < 0:
		return dst - uint8(math.Ceil(-delta))
	default:
		return dst
	}
}
