package config

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// FieldConfig 粒子场配置
//
// 包含文字栅格化、两套视口配置档（compact/standard）、物理参数和渲染参数。
// 默认值见 DefaultFieldConfig()，可通过 YAML 文件覆盖。
//
// 配置文件位置: data/field.yaml
type FieldConfig struct {
	// Label 被栅格化的文字
	Label string `yaml:"label"`

	// AlphaThreshold 采样阈值，像素 alpha 严格大于该值才生成粒子
	AlphaThreshold uint8 `yaml:"alphaThreshold"`

	// CompactBreakpoint 宽度小于该值时使用 compact 配置档
	CompactBreakpoint int `yaml:"compactBreakpoint"`

	// Compact 窄屏配置档
	Compact ProfileConfig `yaml:"compact"`

	// Standard 标准配置档
	Standard ProfileConfig `yaml:"standard"`

	Physics PhysicsConfig `yaml:"physics"`
	Render  RenderConfig  `yaml:"render"`
}

// ProfileConfig 视口宽度相关的参数集合
type ProfileConfig struct {
	// FontFraction 字号 = min(width * FontFraction, MaxFontSize)
	FontFraction float64 `yaml:"fontFraction"`
	MaxFontSize  float64 `yaml:"maxFontSize"`

	// Stride 固定采样步长；为 0 时使用 floor(width / StrideDivisor)，下限 MinStride
	Stride        int     `yaml:"stride"`
	StrideDivisor float64 `yaml:"strideDivisor"`
	MinStride     int     `yaml:"minStride"`

	// JitterMin, JitterSpan 轨道半径 = JitterMin + rand * JitterSpan
	JitterMin  float64 `yaml:"jitterMin"`
	JitterSpan float64 `yaml:"jitterSpan"`

	// ParticleSize 渲染基准半径
	ParticleSize float64 `yaml:"particleSize"`
}

// PhysicsConfig 力模型参数（单位：像素/帧）
type PhysicsConfig struct {
	// ScatterDepth 初始位置 z ∈ [-ScatterDepth, ScatterDepth)
	ScatterDepth float64 `yaml:"scatterDepth"`
	// BaseDepth 锚点 z ∈ [-BaseDepth, BaseDepth)
	BaseDepth float64 `yaml:"baseDepth"`
	// AngleSpeedRange 轨道角速度 ∈ [-AngleSpeedRange, AngleSpeedRange)
	AngleSpeedRange float64 `yaml:"angleSpeedRange"`
	// OrbitDepth 轨道 z 偏移幅度（sin(2a) * OrbitDepth）
	OrbitDepth float64 `yaml:"orbitDepth"`

	PointerRadius float64 `yaml:"pointerRadius"`
	PointerGain   float64 `yaml:"pointerGain"`

	ClickRadius    float64 `yaml:"clickRadius"`
	ClickGain      float64 `yaml:"clickGain"`
	ImpulseEpsilon float64 `yaml:"impulseEpsilon"`
	ImpulseDecay   float64 `yaml:"impulseDecay"`

	SpringGain float64 `yaml:"springGain"`
	Damping    float64 `yaml:"damping"`

	// TimeStep 每帧时间累加量（仅用于颜色漂移）
	TimeStep float64 `yaml:"timeStep"`
}

// RenderConfig 投影与绘制参数
type RenderConfig struct {
	// TrailColor 每帧覆盖的半透明底色，产生拖尾效果
	TrailColor RGBA `yaml:"trailColor"`

	// FocalLength scale = FocalLength / (FocalLength + z)
	FocalLength float64 `yaml:"focalLength"`

	// 深度归一化：depth = (z + DepthOffset) / DepthRange
	DepthOffset   float64 `yaml:"depthOffset"`
	DepthRange    float64 `yaml:"depthRange"`
	MinBrightness float64 `yaml:"minBrightness"`

	BaseHue            float64 `yaml:"baseHue"`
	HueSwing           float64 `yaml:"hueSwing"`
	BaseSaturation     float64 `yaml:"baseSaturation"`
	SaturationSwing    float64 `yaml:"saturationSwing"`
	BaseLightness      float64 `yaml:"baseLightness"`
	LightnessGain      float64 `yaml:"lightnessGain"`
	CoreLightnessBoost float64 `yaml:"coreLightnessBoost"`

	// GlowScale 光晕半径 = 核心半径 * GlowScale
	GlowScale float64 `yaml:"glowScale"`

	LinkDistance float64 `yaml:"linkDistance"`
	LinkAlpha    float64 `yaml:"linkAlpha"`
	LinkWidth    float64 `yaml:"linkWidth"`
	LinkColor    RGBA    `yaml:"linkColor"`

	// LinkGrid 使用分桶网格查找近邻（结果与暴力扫描一致）
	LinkGrid bool `yaml:"linkGrid"`
}

// RGBA 颜色配置，A 为 0-1 的不透明度
type RGBA struct {
	R uint8   `yaml:"r"`
	G uint8   `yaml:"g"`
	B uint8   `yaml:"b"`
	A float64 `yaml:"a"`
}

// NRGBA converts the configured colour to a non-premultiplied colour.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alphaByte(c.A)}
}

// Profile 某一宽度下生效的配置档
type Profile struct {
	Name string
	ProfileConfig
}

const (
	ProfileCompact  = "compact"
	ProfileStandard = "standard"
)

// DefaultFieldConfig 返回默认配置
func DefaultFieldConfig() *FieldConfig {
	return &FieldConfig{
		Label:             DefaultLabel,
		AlphaThreshold:    128,
		CompactBreakpoint: CompactBreakpoint,
		Compact: ProfileConfig{
			FontFraction: 0.3,
			MaxFontSize:  160,
			Stride:       10,
			JitterMin:    1,
			JitterSpan:   1.5,
			ParticleSize: 1.8,
		},
		Standard: ProfileConfig{
			FontFraction:  0.25,
			MaxFontSize:   400,
			StrideDivisor: 150,
			MinStride:     4,
			JitterMin:     2,
			JitterSpan:    5,
			ParticleSize:  2.5,
		},
		Physics: PhysicsConfig{
			ScatterDepth:    150,
			BaseDepth:       25,
			AngleSpeedRange: 0.005,
			OrbitDepth:      10,
			PointerRadius:   250,
			PointerGain:     4,
			ClickRadius:     600,
			ClickGain:       15,
			ImpulseEpsilon:  0.01,
			ImpulseDecay:    0.9,
			SpringGain:      0.15,
			Damping:         0.9,
			TimeStep:        0.01,
		},
		Render: RenderConfig{
			TrailColor:         RGBA{R: 15, G: 23, B: 42, A: 0.4},
			FocalLength:        400,
			DepthOffset:        200,
			DepthRange:         400,
			MinBrightness:      0.4,
			BaseHue:            200,
			HueSwing:           15,
			BaseSaturation:     75,
			SaturationSwing:    15,
			BaseLightness:      50,
			LightnessGain:      20,
			CoreLightnessBoost: 15,
			GlowScale:          2,
			LinkDistance:       40,
			LinkAlpha:          0.25,
			LinkWidth:          0.5,
			LinkColor:          RGBA{R: 59, G: 130, B: 246, A: 1},
		},
	}
}

// LoadFieldConfig 加载粒子场配置
//
// 从指定路径读取 YAML 文件。文件中未出现的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/field.yaml"）
//
// 返回:
//   - *FieldConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadFieldConfig(path string) (*FieldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read field config: %w", err)
	}
	return ParseFieldConfig(data)
}

// ParseFieldConfig 解析 YAML 格式的配置内容
func ParseFieldConfig(data []byte) (*FieldConfig, error) {
	config := DefaultFieldConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse field config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid field config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 采样步长、字号比例为正
//   - 阻尼与衰减系数在 (0, 1] / (0, 1) 之间，保证能量不会无限增长
//   - 投影焦距、深度范围、连线距离为正
func (c *FieldConfig) Validate() error {
	if c.Label == "" {
		return fmt.Errorf("label must not be empty")
	}
	if c.CompactBreakpoint < 0 {
		return fmt.Errorf("compactBreakpoint must be >= 0, got %d", c.CompactBreakpoint)
	}

	if err := c.Compact.validate(ProfileCompact); err != nil {
		return err
	}
	if err := c.Standard.validate(ProfileStandard); err != nil {
		return err
	}

	p := c.Physics
	if p.Damping <= 0 || p.Damping > 1 {
		return fmt.Errorf("physics.damping must be in (0, 1], got %.3f", p.Damping)
	}
	if p.ImpulseDecay <= 0 || p.ImpulseDecay >= 1 {
		return fmt.Errorf("physics.impulseDecay must be in (0, 1), got %.3f", p.ImpulseDecay)
	}
	if p.PointerRadius <= 0 || p.ClickRadius <= 0 {
		return fmt.Errorf("physics radii must be positive: pointer=%.1f click=%.1f",
			p.PointerRadius, p.ClickRadius)
	}
	if p.SpringGain <= 0 {
		return fmt.Errorf("physics.springGain must be positive, got %.3f", p.SpringGain)
	}
	if p.ScatterDepth < 0 || p.BaseDepth < 0 || p.AngleSpeedRange < 0 {
		return fmt.Errorf("physics random bands must be >= 0")
	}

	r := c.Render
	if r.FocalLength <= 0 {
		return fmt.Errorf("render.focalLength must be positive, got %.1f", r.FocalLength)
	}
	if r.DepthRange <= 0 {
		return fmt.Errorf("render.depthRange must be positive, got %.1f", r.DepthRange)
	}
	if r.LinkDistance <= 0 {
		return fmt.Errorf("render.linkDistance must be positive, got %.1f", r.LinkDistance)
	}
	if r.GlowScale < 1 {
		return fmt.Errorf("render.glowScale must be >= 1, got %.2f", r.GlowScale)
	}

	return nil
}

func (p ProfileConfig) validate(name string) error {
	if p.FontFraction <= 0 || p.MaxFontSize <= 0 {
		return fmt.Errorf("%s font settings must be positive: fraction=%.2f max=%.1f",
			name, p.FontFraction, p.MaxFontSize)
	}
	if p.Stride <= 0 && (p.StrideDivisor <= 0 || p.MinStride <= 0) {
		return fmt.Errorf("%s profile needs either stride or strideDivisor+minStride", name)
	}
	if p.JitterMin < 0 || p.JitterSpan < 0 {
		return fmt.Errorf("%s jitter range must be >= 0", name)
	}
	if p.ParticleSize <= 0 {
		return fmt.Errorf("%s particleSize must be positive, got %.2f", name, p.ParticleSize)
	}
	return nil
}

// ProfileFor 根据画布宽度选择配置档
func (c *FieldConfig) ProfileFor(width int) Profile {
	if width < c.CompactBreakpoint {
		return Profile{Name: ProfileCompact, ProfileConfig: c.Compact}
	}
	return Profile{Name: ProfileStandard, ProfileConfig: c.Standard}
}

// FontSize 返回该宽度下的字号
func (p ProfileConfig) FontSize(width int) float64 {
	return math.Min(float64(width)*p.FontFraction, p.MaxFontSize)
}

// SampleStride 返回该宽度下的采样步长
func (p ProfileConfig) SampleStride(width int) int {
	if p.Stride > 0 {
		return p.Stride
	}
	stride := int(math.Floor(float64(width) / p.StrideDivisor))
	if stride < p.MinStride {
		return p.MinStride
	}
	return stride
}

func alphaByte(a float64) uint8 {
	if a <= 0 {
		return 0
	}
	if a >= 1 {
		return 255
	}
	return uint8(math.Round(a * 255))
}
