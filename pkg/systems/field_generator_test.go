package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gonewx/glyphfield/internal/glyph"
	"github.com/gonewx/glyphfield/pkg/config"
)

// TestFieldGenerator_StandardScenario 1024x768（standard 配置档）
func TestFieldGenerator_StandardScenario(t *testing.T) {
	cfg := config.DefaultFieldConfig()
	gen := NewFieldGenerator(cfg, rand.New(rand.NewSource(1)))
	store := NewParticleStore(0)

	count := gen.Generate(store, 1024, 768)

	// 字号 256、步长 6 时 "Aoba" 的采样数应在合理区间内
	if count < 500 || count > 3000 {
		t.Fatalf("expected particle count in [500, 3000], got %d", count)
	}
	if count != store.Len() {
		t.Errorf("Generate returned %d but store holds %d", count, store.Len())
	}

	img, err := glyph.Rasterize(cfg.Label, 1024, 768, cfg.ProfileFor(1024).FontSize(1024))
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}

	for i, p := range store.Particles() {
		bx, by := p.Base.X(), p.Base.Y()
		if bx < 0 || bx >= 1024 || by < 0 || by >= 768 {
			t.Fatalf("particle %d base (%.0f, %.0f) outside surface", i, bx, by)
		}
		if int(bx)%6 != 0 || int(by)%6 != 0 {
			t.Fatalf("particle %d base (%.0f, %.0f) not on stride-6 grid", i, bx, by)
		}
		if a := glyph.AlphaAt(img, int(bx), int(by)); a <= cfg.AlphaThreshold {
			t.Fatalf("particle %d base (%.0f, %.0f) has alpha %d <= threshold", i, bx, by, a)
		}
		if math.Abs(p.Base.Z()) > 25 {
			t.Errorf("particle %d base z %.2f outside ±25", i, p.Base.Z())
		}
		if p.Position.X() < 0 || p.Position.X() >= 1024 || p.Position.Y() < 0 || p.Position.Y() >= 768 {
			t.Errorf("particle %d initial position outside surface: %v", i, p.Position)
		}
		if math.Abs(p.Position.Z()) > 150 {
			t.Errorf("particle %d initial z %.2f outside ±150", i, p.Position.Z())
		}
		if p.Angle < 0 || p.Angle >= 2*math.Pi {
			t.Errorf("particle %d angle %.3f outside [0, 2π)", i, p.Angle)
		}
		if math.Abs(p.AngleSpeed) > 0.005 {
			t.Errorf("particle %d angle speed %.4f outside ±0.005", i, p.AngleSpeed)
		}
		if p.JitterRadius < 2 || p.JitterRadius > 7 {
			t.Errorf("particle %d jitter %.2f outside standard range [2, 7]", i, p.JitterRadius)
		}
		if p.Velocity.Len() != 0 {
			t.Errorf("particle %d should start at rest, got %v", i, p.Velocity)
		}
	}
}

func TestFieldGenerator_CompactProfile(t *testing.T) {
	cfg := config.DefaultFieldConfig()
	gen := NewFieldGenerator(cfg, rand.New(rand.NewSource(2)))
	store := NewParticleStore(0)

	if gen.Generate(store, 375, 667) == 0 {
		t.Fatal("expected particles on a compact surface")
	}

	for i, p := range store.Particles() {
		if int(p.Base.X())%10 != 0 || int(p.Base.Y())%10 != 0 {
			t.Fatalf("particle %d not on compact stride-10 grid: %v", i, p.Base)
		}
		if p.JitterRadius < 1 || p.JitterRadius > 2.5 {
			t.Errorf("particle %d jitter %.2f outside compact range [1, 2.5]", i, p.JitterRadius)
		}
	}
}

func TestFieldGenerator_ZeroArea(t *testing.T) {
	cfg := config.DefaultFieldConfig()
	gen := NewFieldGenerator(cfg, rand.New(rand.NewSource(3)))
	store := NewParticleStore(0)

	// 先生成一次，确认 0x0 会清空旧粒子
	gen.Generate(store, 800, 600)
	if store.Len() == 0 {
		t.Fatal("setup: expected particles for 800x600")
	}

	if n := gen.Generate(store, 0, 0); n != 0 {
		t.Errorf("expected 0 particles for 0x0, got %d", n)
	}
	if store.Len() != 0 {
		t.Errorf("expected empty store after 0x0 generation, got %d", store.Len())
	}
}

// TestFieldGenerator_RegenerationCountStable 相同尺寸重复生成，数量一致
func TestFieldGenerator_RegenerationCountStable(t *testing.T) {
	cfg := config.DefaultFieldConfig()
	gen := NewFieldGenerator(cfg, rand.New(rand.NewSource(4)))
	store := NewParticleStore(0)

	first := gen.Generate(store, 1024, 768)
	capacity := cap(store.Particles())
	firstX := store.Particles()[0].Position.X()

	second := gen.Generate(store, 1024, 768)
	if first != second {
		t.Errorf("regeneration count changed: %d -> %d", first, second)
	}
	if cap(store.Particles()) != capacity {
		t.Errorf("regeneration of equal size should reuse the arena: cap %d -> %d", capacity, cap(store.Particles()))
	}
	// 初始散布位置来自独立随机抽样
	if store.Particles()[0].Position.X() == firstX {
		t.Error("expected a fresh random scatter position after regeneration")
	}
}

func TestFieldGenerator_SeedReproducible(t *testing.T) {
	cfg := config.DefaultFieldConfig()
	a := NewParticleStore(0)
	b := NewParticleStore(0)

	NewFieldGenerator(cfg, rand.New(rand.NewSource(42))).Generate(a, 640, 480)
	NewFieldGenerator(cfg, rand.New(rand.NewSource(42))).Generate(b, 640, 480)

	if a.Len() != b.Len() {
		t.Fatalf("counts differ: %d vs %d", a.Len(), b.Len())
	}
	for i := range a.Particles() {
		if a.Particles()[i] != b.Particles()[i] {
			t.Fatalf("particle %d differs between equal seeds", i)
		}
	}
}
