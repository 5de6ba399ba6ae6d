package systems

import (
	"github.com/gonewx/glyphfield/pkg/components"
	"github.com/gonewx/glyphfield/pkg/config"
)

// ParticleSystem integrates every particle by one frame.
//
// The order within a particle update is fixed:
//  1. target = orbit(base, angle); angle += angleSpeed
//  2. velocity += pointer repulsion
//  3. velocity += click explosion
//  4. velocity += spring toward target
//  5. velocity *= damping
//  6. position += velocity
//
// Identical inputs therefore produce identical trajectories. The step size is
// one frame; there is no wall-clock delta.
type ParticleSystem struct {
	config *config.FieldConfig
}

// NewParticleSystem creates a new ParticleSystem instance.
func NewParticleSystem(cfg *config.FieldConfig) *ParticleSystem {
	return &ParticleSystem{config: cfg}
}

// Step advances the simulation clock, integrates all particles and then decays
// the click impulse once.
//
// The impulse is consumed before it decays, so the first frame after a click
// applies the full impulse of 1.
func (ps *ParticleSystem) Step(store *ParticleStore, state *components.SimulationState) {
	phys := &ps.config.Physics

	state.Time += phys.TimeStep

	particles := store.Particles()
	for i := range particles {
		ps.integrate(&particles[i], state, phys)
	}

	state.Impulse = DecayImpulse(state.Impulse, phys)
}

func (ps *ParticleSystem) integrate(p *components.ParticleComponent, state *components.SimulationState, phys *config.PhysicsConfig) {
	p.Target = OrbitTarget(p, phys)
	AdvanceOrbit(p)

	p.Velocity = p.Velocity.Add(PointerRepulsion(p, state, phys))
	p.Velocity = p.Velocity.Add(ClickExplosion(p, state, phys))
	p.Velocity = p.Velocity.Add(SpringForce(p, phys))
	p.Velocity = Damp(p.Velocity, phys)

	p.Position = p.Position.Add(p.Velocity)
}

// KineticEnergy 返回所有粒子的总动能（单位质量），用于统计输出
func KineticEnergy(particles []components.ParticleComponent) float64 {
	total := 0.0
	for i := range particles {
		v := particles[i].Velocity
		total += 0.5 * v.Dot(v)
	}
	return total
}
