package systems

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/glyphfield/pkg/components"
)

func randomParticles(n int, seed int64) []components.ParticleComponent {
	rng := rand.New(rand.NewSource(seed))
	particles := make([]components.ParticleComponent, n)
	for i := range particles {
		particles[i].Position = mgl64.Vec3{
			rng.Float64() * 300,
			rng.Float64() * 200,
			(rng.Float64() - 0.5) * 100,
		}
	}
	return particles
}

// countPairs 独立计算满足阈值的无序对数量
func countPairs(particles []components.ParticleComponent, threshold float64) int {
	count := 0
	for i := 0; i < len(particles); i++ {
		for j := i + 1; j < len(particles); j++ {
			if particles[i].Position.Sub(particles[j].Position).Len() < threshold {
				count++
			}
		}
	}
	return count
}

func TestLinkScanner_BruteForceMatchesPairCount(t *testing.T) {
	particles := randomParticles(400, 7)
	ls := NewLinkScanner(false)

	links := ls.Scan(particles, 40)
	if want := countPairs(particles, 40); len(links) != want {
		t.Errorf("expected %d links, got %d", want, len(links))
	}

	seen := make(map[[2]int]bool, len(links))
	for _, l := range links {
		if l.I >= l.J {
			t.Fatalf("link %v not ordered I < J", l)
		}
		key := [2]int{l.I, l.J}
		if seen[key] {
			t.Fatalf("duplicate link %v", l)
		}
		seen[key] = true
		if l.Distance >= 40 {
			t.Fatalf("link %v at or beyond threshold", l)
		}
	}
}

// TestLinkScanner_GridEqualsBruteForce 分桶网格与暴力扫描结果完全一致
func TestLinkScanner_GridEqualsBruteForce(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		particles := randomParticles(600, seed)

		brute := append([]Link(nil), NewLinkScanner(false).Scan(particles, 40)...)
		grid := NewLinkScanner(true).Scan(particles, 40)

		if len(brute) != len(grid) {
			t.Fatalf("seed %d: brute %d links, grid %d links", seed, len(brute), len(grid))
		}
		for i := range brute {
			if brute[i] != grid[i] {
				t.Fatalf("seed %d: link %d differs: brute %v grid %v", seed, i, brute[i], grid[i])
			}
		}
	}
}

func TestLinkScanner_NegativeCoordinates(t *testing.T) {
	// 跨越 0 的桶边界
	particles := []components.ParticleComponent{
		{Position: mgl64.Vec3{-1, -1, -1}},
		{Position: mgl64.Vec3{1, 1, 1}},
		{Position: mgl64.Vec3{-37, 0, 0}},
		{Position: mgl64.Vec3{200, 200, 200}},
	}

	brute := append([]Link(nil), NewLinkScanner(false).Scan(particles, 40)...)
	grid := NewLinkScanner(true).Scan(particles, 40)
	if len(brute) != 3 || len(grid) != 3 {
		t.Fatalf("expected 3 links each, got brute=%d grid=%d", len(brute), len(grid))
	}
}

func TestLinkScanner_Empty(t *testing.T) {
	ls := NewLinkScanner(true)
	if links := ls.Scan(nil, 40); len(links) != 0 {
		t.Errorf("expected no links for empty input, got %d", len(links))
	}
	one := randomParticles(1, 1)
	if links := ls.Scan(one, 40); len(links) != 0 {
		t.Errorf("expected no links for a single particle, got %d", len(links))
	}
}

func BenchmarkLinkScanner_BruteForce(b *testing.B) {
	particles := randomParticles(2000, 9)
	ls := NewLinkScanner(false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ls.Scan(particles, 40)
	}
}

func BenchmarkLinkScanner_Grid(b *testing.B) {
	particles := randomParticles(2000, 9)
	ls := NewLinkScanner(true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ls.Scan(particles, 40)
	}
}
