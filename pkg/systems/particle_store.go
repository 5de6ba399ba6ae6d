package systems

import "github.com/gonewx/glyphfield/pkg/components"

// ParticleStore is the arena that owns every particle of the field.
//
// It is regenerated wholesale on every resize: Reset truncates the slice but
// keeps its capacity so a regeneration of similar size does not allocate.
type ParticleStore struct {
	particles []components.ParticleComponent
}

// NewParticleStore creates an empty store with the given initial capacity.
func NewParticleStore(capacity int) *ParticleStore {
	return &ParticleStore{
		particles: make([]components.ParticleComponent, 0, capacity),
	}
}

// Reset 清空所有粒子（保留底层数组容量）
func (s *ParticleStore) Reset() {
	s.particles = s.particles[:0]
}

// Add 追加一个粒子
func (s *ParticleStore) Add(p components.ParticleComponent) {
	s.particles = append(s.particles, p)
}

// Len 返回粒子数量
func (s *ParticleStore) Len() int {
	return len(s.particles)
}

// Particles returns the live backing slice. Callers may mutate elements in
// place but must not append to or reslice it.
func (s *ParticleStore) Particles() []components.ParticleComponent {
	return s.particles
}
