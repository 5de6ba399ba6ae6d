package components

// SimulationState holds the per-engine mutable inputs read by the force model.
//
// Pointer and click fields are written by input handlers between frames
// (last write wins) and read by the next frame's force computation.
type SimulationState struct {
	// PointerX, PointerY 当前指针位置
	PointerX float64
	PointerY float64

	// Time 累计时间，每帧增加 PhysicsConfig.TimeStep，用于颜色漂移
	Time float64

	// Impulse 点击爆炸的剩余能量（点击时置 1，之后每帧按系数衰减）
	Impulse float64

	// ClickX, ClickY 最近一次点击的位置
	ClickX float64
	ClickY float64

	// Width, Height 画布尺寸
	Width  int
	Height int
}

// Center returns the midpoint of the current surface.
func (s *SimulationState) Center() (float64, float64) {
	return float64(s.Width) / 2, float64(s.Height) / 2
}
