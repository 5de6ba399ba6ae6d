package components

import "github.com/go-gl/mathgl/mgl64"

// ParticleComponent represents a single glyph particle.
//
// One particle exists per sampled "ink" cell of the rasterized label. The
// Integrator mutates Position and Velocity in place every tick; Base is fixed
// at creation and is the point the particle orbits around.
//
// This is a pure data component - all behaviour lives in the systems package.
type ParticleComponent struct {
	// Position (当前位置, 屏幕像素 + 深度)
	// 只在创建时直接赋值，之后仅通过 Velocity 更新
	Position mgl64.Vec3

	// Velocity (速度, 像素/帧)
	Velocity mgl64.Vec3

	// Base 锚点位置（由文字栅格采样得到，创建后不再修改）
	Base mgl64.Vec3

	// Target 当前帧的目标位置 = Base + 轨道偏移
	// 每帧重新计算，不作为持久状态使用
	Target mgl64.Vec3

	// Angle 轨道相位（弧度），每帧累加 AngleSpeed
	Angle float64

	// AngleSpeed 每帧相位增量，创建时随机，带符号
	AngleSpeed float64

	// JitterRadius 轨道偏移幅度
	JitterRadius float64
}
