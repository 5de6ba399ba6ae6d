package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/glyphfield/pkg/components"
	"github.com/gonewx/glyphfield/pkg/config"
)

// 力模型：全部为纯函数，只读取粒子、模拟状态和物理参数，返回对速度的贡献。
// 调用顺序由 ParticleSystem.Step 决定。

// OrbitTarget returns base + (cos a * r, sin a * r, sin 2a * OrbitDepth)
// for the particle's current phase.
func OrbitTarget(p *components.ParticleComponent, phys *config.PhysicsConfig) mgl64.Vec3 {
	return mgl64.Vec3{
		p.Base.X() + math.Cos(p.Angle)*p.JitterRadius,
		p.Base.Y() + math.Sin(p.Angle)*p.JitterRadius,
		p.Base.Z() + math.Sin(p.Angle*2)*phys.OrbitDepth,
	}
}

// AdvanceOrbit 相位累加，不做取模（三角函数天然周期）
func AdvanceOrbit(p *components.ParticleComponent) {
	p.Angle += p.AngleSpeed
}

// PointerRepulsion pushes the particle away from the pointer.
//
// Only the (x, y) distance matters. Inside PointerRadius the magnitude is
// ((radius - d) / radius) * PointerGain; at or beyond the radius it is exactly
// zero. With the particle exactly under the pointer the direction degenerates
// to atan2(0, 0) = 0, so the push is along -x at full strength.
func PointerRepulsion(p *components.ParticleComponent, state *components.SimulationState, phys *config.PhysicsConfig) mgl64.Vec3 {
	dx := state.PointerX - p.Position.X()
	dy := state.PointerY - p.Position.Y()
	distance := math.Sqrt(dx*dx + dy*dy)

	if distance >= phys.PointerRadius {
		return mgl64.Vec3{}
	}

	force := (phys.PointerRadius - distance) / phys.PointerRadius
	angle := math.Atan2(dy, dx)
	return mgl64.Vec3{
		-math.Cos(angle) * force * phys.PointerGain,
		-math.Sin(angle) * force * phys.PointerGain,
		0,
	}
}

// ClickExplosion pushes the particle away from the last click origin while
// the impulse is above ImpulseEpsilon.
func ClickExplosion(p *components.ParticleComponent, state *components.SimulationState, phys *config.PhysicsConfig) mgl64.Vec3 {
	if state.Impulse <= phys.ImpulseEpsilon {
		return mgl64.Vec3{}
	}

	dx := p.Position.X() - state.ClickX
	dy := p.Position.Y() - state.ClickY
	distance := math.Sqrt(dx*dx + dy*dy)

	if distance >= phys.ClickRadius {
		return mgl64.Vec3{}
	}

	force := ((phys.ClickRadius - distance) / phys.ClickRadius) * state.Impulse
	angle := math.Atan2(dy, dx)
	return mgl64.Vec3{
		math.Cos(angle) * force * phys.ClickGain,
		math.Sin(angle) * force * phys.ClickGain,
		0,
	}
}

// SpringForce 指向目标位置的弹簧力（每轴独立，增益 SpringGain）
func SpringForce(p *components.ParticleComponent, phys *config.PhysicsConfig) mgl64.Vec3 {
	return p.Target.Sub(p.Position).Mul(phys.SpringGain)
}

// Damp 速度阻尼，是系统唯一的耗散机制
func Damp(v mgl64.Vec3, phys *config.PhysicsConfig) mgl64.Vec3 {
	return v.Mul(phys.Damping)
}

// DecayImpulse 点击冲量按固定系数衰减
func DecayImpulse(impulse float64, phys *config.PhysicsConfig) float64 {
	return impulse * phys.ImpulseDecay
}
