package systems

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gonewx/glyphfield/pkg/components"
	"github.com/gonewx/glyphfield/pkg/config"
)

// Surface is the raster target the renderer draws to.
//
// Implementations must not clear between frames: the motion trail comes from
// compositing FillOverlay over the previous frame's pixels.
type Surface interface {
	// Size 返回表面像素尺寸
	Size() (width, height int)
	// FillOverlay 用半透明颜色覆盖整个表面
	FillOverlay(c color.NRGBA)
	// FillGlow 以 (x, y) 为圆心绘制径向渐变圆
	FillGlow(x, y, radius float64, stops []GradientStop)
	// FillCircle 绘制实心圆
	FillCircle(x, y, radius float64, c color.NRGBA)
	// StrokeLine 绘制线段
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
}

// GradientStop is one colour stop of a radial glow, Offset in [0, 1].
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// Projection is the screen-space mapping of one particle.
type Projection struct {
	X, Y   float64
	Scale  float64
	Radius float64
}

// RenderStats 一帧的绘制统计
type RenderStats struct {
	Particles int
	Links     int
}

// RenderSystem draws the particle store onto a Surface.
//
// Per particle it draws a soft glow, an opaque core and then the links to
// every later particle within the link distance. Only size and colour depend
// on depth; screen x/y are the particle's x/y unchanged.
type RenderSystem struct {
	config *config.FieldConfig
	links  *LinkScanner
	stops  []GradientStop
}

// NewRenderSystem creates a new RenderSystem instance.
func NewRenderSystem(cfg *config.FieldConfig) *RenderSystem {
	return &RenderSystem{
		config: cfg,
		links:  NewLinkScanner(cfg.Render.LinkGrid),
		stops:  make([]GradientStop, 3),
	}
}

// Fade composites the translucent trail colour over the whole surface.
func (rs *RenderSystem) Fade(s Surface) {
	s.FillOverlay(rs.config.Render.TrailColor.NRGBA())
}

// Project maps a particle to screen space for the given base size.
func (rs *RenderSystem) Project(p *components.ParticleComponent, baseSize float64) Projection {
	scale := rs.config.Render.FocalLength / (rs.config.Render.FocalLength + p.Position.Z())
	return Projection{
		X:      p.Position.X(),
		Y:      p.Position.Y(),
		Scale:  scale,
		Radius: math.Max(1, baseSize*scale),
	}
}

// Draw renders all particles and their links. It reads the store only.
func (rs *RenderSystem) Draw(s Surface, particles []components.ParticleComponent, t float64) RenderStats {
	stats := RenderStats{}
	if len(particles) == 0 {
		return stats
	}

	r := &rs.config.Render
	width, _ := s.Size()
	baseSize := rs.config.ProfileFor(width).ParticleSize

	links := rs.links.Scan(particles, r.LinkDistance)
	next := 0

	for i := range particles {
		p := &particles[i]
		proj := rs.Project(p, baseSize)
		glow, core := ParticleColors(r, t, i, p.Position.Z())

		rs.stops[0] = GradientStop{Offset: 0, Color: withAlpha(glow, 0.9)}
		rs.stops[1] = GradientStop{Offset: 0.5, Color: withAlpha(glow, 0.5)}
		rs.stops[2] = GradientStop{Offset: 1, Color: withAlpha(glow, 0)}
		s.FillGlow(proj.X, proj.Y, proj.Radius*r.GlowScale, rs.stops)
		s.FillCircle(proj.X, proj.Y, proj.Radius, core)
		stats.Particles++

		for next < len(links) && links[next].I == i {
			link := links[next]
			other := &particles[link.J]
			s.StrokeLine(proj.X, proj.Y, other.Position.X(), other.Position.Y(), r.LinkWidth, LinkColor(r, link.Distance))
			stats.Links++
			next++
		}
	}

	return stats
}

// Depth 归一化深度 (z + offset) / range，限制在 [0, 1]
func Depth(r *config.RenderConfig, z float64) float64 {
	return clamp((z+r.DepthOffset)/r.DepthRange, 0, 1)
}

// ParticleColors returns the glow colour (opaque, alpha applied per stop) and
// the core colour for particle index at time t and depth z.
//
// Hue and saturation drift slowly with time and index; lightness follows depth.
func ParticleColors(r *config.RenderConfig, t float64, index int, z float64) (glow, core color.NRGBA) {
	brightness := math.Max(r.MinBrightness, Depth(r, z))

	hue := r.BaseHue + math.Sin(t+float64(index)*0.1)*r.HueSwing
	saturation := r.BaseSaturation + math.Sin(t*0.5+float64(index)*0.05)*r.SaturationSwing
	lightness := r.BaseLightness + brightness*r.LightnessGain

	glow = hslColor(hue, saturation, lightness, 1)
	core = hslColor(hue, saturation, lightness+r.CoreLightnessBoost, 1)
	return glow, core
}

// LinkColor 连线颜色，alpha = (1 - d/threshold) * LinkAlpha
func LinkColor(r *config.RenderConfig, distance float64) color.NRGBA {
	alpha := (1 - distance/r.LinkDistance) * r.LinkAlpha
	return withAlpha(r.LinkColor.NRGBA(), alpha)
}

// hslColor converts percent-based saturation/lightness to an sRGB colour.
func hslColor(hue, saturation, lightness, alpha float64) color.NRGBA {
	c := colorful.Hsl(hue, clamp(saturation/100, 0, 1), clamp(lightness/100, 0, 1)).Clamped()
	r, g, b := c.RGB255()
	return withAlpha(color.NRGBA{R: r, G: g, B: b}, alpha)
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(math.Round(clamp(alpha, 0, 1) * 255))
	return c
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
