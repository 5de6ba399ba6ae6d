// Package app 提供粒子场查看器的 ebiten 宿主
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/glyphfield/pkg/config"
	"github.com/gonewx/glyphfield/pkg/engine"
	"github.com/gonewx/glyphfield/pkg/game"
	"github.com/gonewx/glyphfield/pkg/surfaces"
	"github.com/gonewx/glyphfield/pkg/utils"
)

// AppName gdata 存储使用的应用名
const AppName = "glyphfield"

// FadeDuration disperse 后淡出的秒数
const FadeDuration = 1.5

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 粒子场配置路径，为空时使用 data/field.yaml
	ConfigPath string
	// Label 覆盖配置中的文字，为空时使用配置值
	Label string
	// Fullscreen 启动时全屏（与已保存设置取或）
	Fullscreen bool
	// LinkGrid 使用分桶网格扫描连线（与已保存设置取或）
	LinkGrid bool
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是查看器的核心包装器，实现 ebiten.Game 接口
type App struct {
	engine    *engine.Engine
	scheduler *engine.ManualScheduler
	bus       *engine.Bus
	surface   *surfaces.EbitenSurface
	input     *utils.InputAdapter
	fader     *utils.Fader
	settings  *game.SettingsManager

	background color.NRGBA
	showStats  bool
	verbose    bool

	layoutWidth  int
	layoutHeight int
}

// NewApp 创建并初始化查看器
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	fieldConfig, source, err := config.ResolveFieldConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("粒子场配置加载失败: %w", err)
	}
	log.Printf("[App] Field config source: %s", source)

	settings := game.OpenSettingsManager(AppName)
	viewer := settings.GetSettings()

	if cfg.Label != "" {
		fieldConfig.Label = cfg.Label
	}
	if cfg.LinkGrid || viewer.LinkGrid {
		fieldConfig.Render.LinkGrid = true
		settings.SetLinkGrid(true)
	}
	if cfg.Fullscreen {
		settings.SetFullscreen(true)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a := &App{
		scheduler:  engine.NewManualScheduler(),
		bus:        engine.NewBus(),
		fader:      utils.NewFader(FadeDuration, utils.EaseInOutCubic),
		settings:   settings,
		background: config.BackgroundColor.NRGBA(),
		showStats:  viewer.ShowStats,
		verbose:    cfg.Verbose,
	}
	a.surface = surfaces.NewEbitenSurface(0, 0, a.background)
	a.input = utils.NewInputAdapter(a.bus)

	a.engine, err = engine.New(engine.Options{
		Config:     fieldConfig,
		Scheduler:  a.scheduler,
		Events:     a.bus,
		Rand:       rand.New(rand.NewSource(seed)),
		OnDisperse: a.onDisperse,
	})
	if err != nil {
		return nil, fmt.Errorf("引擎创建失败: %w", err)
	}

	log.Printf("[App] Label %q, seed %d, link grid %v", fieldConfig.Label, seed, fieldConfig.Render.LinkGrid)
	return a, nil
}

// WindowSettings 返回启动时应使用的窗口尺寸和全屏状态
func (a *App) WindowSettings() (width, height int, fullscreen bool) {
	s := a.settings.GetSettings()
	return s.WindowWidth, s.WindowHeight, s.Fullscreen
}

// onDisperse 首次点击后开始淡出
func (a *App) onDisperse() {
	log.Printf("[App] Disperse signalled, fading out over %.1fs", FadeDuration)
	a.engine.SetVisible(false)
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settings.SetFullscreen(fullscreen)
	}

	// S 切换统计信息
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.showStats = !a.showStats
		a.settings.SetShowStats(a.showStats)
	}

	// R 恢复显示
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.engine.SetVisible(true)
	}

	if a.layoutWidth > 0 && a.layoutHeight > 0 {
		a.syncSurface()
	}

	if a.engine.State() == engine.StateRunning {
		a.input.Poll()
		a.scheduler.RunFrame()
	}

	a.fader.SetVisible(a.engine.Visible())
	a.fader.Update(1 / float64(ebiten.TPS()))
	return nil
}

// syncSurface 首次拿到布局尺寸时挂载引擎，之后尺寸变化时重建离屏图像并通知引擎
func (a *App) syncSurface() {
	w, h := a.surface.Size()
	if w == a.layoutWidth && h == a.layoutHeight && a.engine.State() != engine.StateUninitialized {
		return
	}

	a.surface.Resize(a.layoutWidth, a.layoutHeight)

	if a.engine.State() == engine.StateUninitialized {
		if err := a.engine.Mount(a.surface); err != nil {
			log.Printf("[App] Mount failed: %v", err)
			return
		}
		// 挂载已按当前尺寸生成粒子场，只同步适配器记录的尺寸
		a.input.SetSize(a.layoutWidth, a.layoutHeight)
		return
	}

	log.Printf("[App] Surface resized to %dx%d", a.layoutWidth, a.layoutHeight)
	a.input.Resize(a.layoutWidth, a.layoutHeight)
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.background)

	if img := a.surface.Image(); img != nil {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(a.fader.Opacity()))
		screen.DrawImage(img, op)
	}

	if a.showStats {
		stats := a.engine.LastStats()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"TPS %.0f  FPS %.0f\nparticles %d  links %d\nframes %d  opacity %.2f",
			ebiten.ActualTPS(), ebiten.ActualFPS(),
			stats.Particles, stats.Links,
			a.engine.Frames(), a.fader.Opacity()))
	}
}

// Layout 返回逻辑屏幕尺寸
// 画布始终跟随窗口大小，尺寸变化在下一次 Update 中处理
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.layoutWidth, a.layoutHeight = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Close 销毁引擎并保存查看器设置
func (a *App) Close() error {
	a.engine.Teardown()

	if !ebiten.IsFullscreen() && !utils.IsMobile() {
		a.settings.SetWindowSize(ebiten.WindowSize())
	}
	if err := a.settings.Save(); err != nil {
		return fmt.Errorf("设置保存失败: %w", err)
	}
	return nil
}

// Engine 返回粒子场引擎
func (a *App) Engine() *engine.Engine {
	return a.engine
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
