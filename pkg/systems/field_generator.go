package systems

import (
	"errors"
	"log"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/glyphfield/internal/glyph"
	"github.com/gonewx/glyphfield/pkg/components"
	"github.com/gonewx/glyphfield/pkg/config"
)

// FieldGenerator turns the configured label into particles.
//
// Generation runs once at mount and again on every resize; each run replaces
// the store contents completely.
type FieldGenerator struct {
	config *config.FieldConfig
	rng    *rand.Rand
}

// NewFieldGenerator creates a generator. rng supplies every random draw
// (scatter, depth, orbit phase, jitter) so a fixed seed reproduces a field.
func NewFieldGenerator(cfg *config.FieldConfig, rng *rand.Rand) *FieldGenerator {
	return &FieldGenerator{
		config: cfg,
		rng:    rng,
	}
}

// Cells 栅格化文字并返回所有被接受的采样点
//
// 返回:
//   - []glyph.Cell: 采样点（行优先）
//   - config.Profile: 本次使用的配置档
//   - error: 画布面积为 0 或字体不可用
func (g *FieldGenerator) Cells(width, height int) ([]glyph.Cell, config.Profile, error) {
	profile := g.config.ProfileFor(width)

	img, err := glyph.Rasterize(g.config.Label, width, height, profile.FontSize(width))
	if err != nil {
		return nil, profile, err
	}

	stride := profile.SampleStride(width)
	return glyph.Sample(img, stride, g.config.AlphaThreshold), profile, nil
}

// Generate 清空 store 并为每个采样点创建一个粒子
//
// 画布尺寸为 0（尚未布局）或栅格化失败时 store 保持为空，不返回错误：
// 引擎会以 0 个粒子继续运行，直到下一次 resize 提供有效尺寸。
//
// 返回生成的粒子数量。
func (g *FieldGenerator) Generate(store *ParticleStore, width, height int) int {
	store.Reset()

	cells, profile, err := g.Cells(width, height)
	if err != nil {
		if errors.Is(err, glyph.ErrEmptySurface) {
			log.Printf("[FieldGenerator] Surface size is %dx%d, skipping generation", width, height)
		} else {
			log.Printf("[FieldGenerator] Warning: rasterization failed: %v (empty field)", err)
		}
		return 0
	}

	phys := &g.config.Physics
	w, h := float64(width), float64(height)

	for _, cell := range cells {
		position := mgl64.Vec3{
			g.rng.Float64() * w,
			g.rng.Float64() * h,
			g.symmetric(phys.ScatterDepth),
		}
		// target 与 base 的 z 独立抽样；target 在第一帧就会被覆盖，
		// 保留这次抽样以固定随机序列
		targetZ := g.symmetric(phys.BaseDepth)
		base := mgl64.Vec3{float64(cell.X), float64(cell.Y), g.symmetric(phys.BaseDepth)}

		store.Add(components.ParticleComponent{
			Position:     position,
			Base:         base,
			Target:       mgl64.Vec3{base.X(), base.Y(), targetZ},
			Angle:        g.rng.Float64() * 2 * math.Pi,
			AngleSpeed:   g.symmetric(phys.AngleSpeedRange),
			JitterRadius: g.rng.Float64()*profile.JitterSpan + profile.JitterMin,
		})
	}

	log.Printf("[FieldGenerator] Created %d particles (%s profile, %dx%d, stride %d)",
		store.Len(), profile.Name, width, height, profile.SampleStride(width))
	return store.Len()
}

// symmetric returns a uniform value in [-halfWidth, halfWidth).
func (g *FieldGenerator) symmetric(halfWidth float64) float64 {
	return (g.rng.Float64() - 0.5) * 2 * halfWidth
}
