package systems

import "image/color"

// recordingSurface 记录所有绘制调用，用于断言渲染行为
type recordingSurface struct {
	width, height int

	overlays []color.NRGBA
	glows    []recordedGlow
	circles  []recordedCircle
	lines    []recordedLine
}

type recordedGlow struct {
	x, y, radius float64
	stops        []GradientStop
}

type recordedCircle struct {
	x, y, radius float64
	color        color.NRGBA
}

type recordedLine struct {
	x0, y0, x1, y1, width float64
	color                 color.NRGBA
}

func newRecordingSurface(width, height int) *recordingSurface {
	return &recordingSurface{width: width, height: height}
}

func (s *recordingSurface) Size() (int, int) { return s.width, s.height }

func (s *recordingSurface) FillOverlay(c color.NRGBA) {
	s.overlays = append(s.overlays, c)
}

func (s *recordingSurface) FillGlow(x, y, radius float64, stops []GradientStop) {
	copied := make([]GradientStop, len(stops))
	copy(copied, stops)
	s.glows = append(s.glows, recordedGlow{x: x, y: y, radius: radius, stops: copied})
}

func (s *recordingSurface) FillCircle(x, y, radius float64, c color.NRGBA) {
	s.circles = append(s.circles, recordedCircle{x: x, y: y, radius: radius, color: c})
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	s.lines = append(s.lines, recordedLine{x0: x0, y0: y0, x1: x1, y1: y1, width: width, color: c})
}
