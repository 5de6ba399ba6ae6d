package surfaces

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/glyphfield/pkg/systems"
)

// 每个字符单元对应的像素尺寸，终端字符大约是 1:2 的竖长方形
const (
	CellWidth  = 8
	CellHeight = 16
)

// intensityRamp 按亮度从低到高选择字符
var intensityRamp = []rune(" .:-=+*#%@")

// TerminalSurface rasterizes into a grid of character cells.
//
// Size reports pixels (cells × cell size) so the field is generated at the
// same scale as in a window; drawing quantizes to cells. Each cell keeps an
// opaque colour that the trail overlay pulls back toward the background.
type TerminalSurface struct {
	cols, rows int
	cells      []color.NRGBA
	background color.NRGBA
	opacity    float64
}

// NewTerminalSurface 创建 cols x rows 个字符单元的表面
func NewTerminalSurface(cols, rows int, background color.NRGBA) *TerminalSurface {
	s := &TerminalSurface{background: background, opacity: 1}
	s.Resize(cols, rows)
	return s
}

// Resize 按字符单元数重建缓冲并清为背景色
func (s *TerminalSurface) Resize(cols, rows int) {
	s.cols, s.rows = max(cols, 0), max(rows, 0)
	s.cells = make([]color.NRGBA, s.cols*s.rows)
	bg := s.background
	bg.A = 255
	for i := range s.cells {
		s.cells[i] = bg
	}
}

// Grid 返回字符单元数
func (s *TerminalSurface) Grid() (cols, rows int) {
	return s.cols, s.rows
}

// Size implements systems.Surface.
func (s *TerminalSurface) Size() (int, int) {
	return s.cols * CellWidth, s.rows * CellHeight
}

// CellAt 返回指定单元的颜色，越界时返回背景色
func (s *TerminalSurface) CellAt(col, row int) color.NRGBA {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return s.background
	}
	return s.cells[row*s.cols+col]
}

// FillOverlay implements systems.Surface.
func (s *TerminalSurface) FillOverlay(c color.NRGBA) {
	for i := range s.cells {
		s.cells[i] = blend(s.cells[i], c)
	}
}

// FillGlow implements systems.Surface.
// The glow only tints the centre cell with the innermost stop.
func (s *TerminalSurface) FillGlow(x, y, radius float64, stops []systems.GradientStop) {
	if radius <= 0 || len(stops) == 0 {
		return
	}
	s.plot(x, y, GradientAt(stops, 0))
}

// FillCircle implements systems.Surface.
func (s *TerminalSurface) FillCircle(x, y, radius float64, c color.NRGBA) {
	s.plot(x, y, c)
}

// StrokeLine implements systems.Surface.
// Lines are plotted cell by cell at the line's colour and alpha.
func (s *TerminalSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	c0, r0 := cellOf(x0, y0)
	c1, r1 := cellOf(x1, y1)
	steps := max(abs(c1-c0), abs(r1-r0))
	if steps == 0 {
		return
	}
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		col := c0 + int(math.Round(float64(c1-c0)*t))
		row := r0 + int(math.Round(float64(r1-r0)*t))
		s.plotCell(col, row, c)
	}
}

// SetOpacity 设置输出时的整体不透明度，0 时只显示背景
// 只影响 Flush，不改变单元缓冲
func (s *TerminalSurface) SetOpacity(opacity float64) {
	s.opacity = math.Max(0, math.Min(1, opacity))
}

// Flush writes the cell buffer to the screen and shows it.
func (s *TerminalSurface) Flush(screen tcell.Screen) {
	bg := tcell.NewRGBColor(int32(s.background.R), int32(s.background.G), int32(s.background.B))
	base := luminance(s.background)
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			c := s.cells[row*s.cols+col]
			if s.opacity < 1 {
				fg := c
				fg.A = uint8(math.Round(s.opacity * 255))
				c = blend(s.background, fg)
			}
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
				Background(bg)
			screen.SetContent(col, row, rampRune(luminance(c), base), nil, style)
		}
	}
	screen.Show()
}

func (s *TerminalSurface) plot(x, y float64, c color.NRGBA) {
	col, row := cellOf(x, y)
	s.plotCell(col, row, c)
}

func (s *TerminalSurface) plotCell(col, row int, c color.NRGBA) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return
	}
	i := row*s.cols + col
	s.cells[i] = blend(s.cells[i], c)
}

func cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

// rampRune 按高出背景的亮度选择字符
func rampRune(l, base float64) rune {
	if base >= 1 {
		return intensityRamp[0]
	}
	t := (l - base) / (1 - base)
	if t <= 0.02 {
		return intensityRamp[0]
	}
	i := int(math.Ceil(t * float64(len(intensityRamp)-1)))
	return intensityRamp[min(i, len(intensityRamp)-1)]
}

func luminance(c color.NRGBA) float64 {
	return (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
