// Package engine drives the glyph particle field.
//
// The engine owns the particle store and the simulation state, listens for
// pointer and resize events on an EventSource, and runs one
// fade → integrate → render cycle per frame handed to it by a Scheduler.
// It has no dependency on any UI toolkit; hosts (ebiten, tcell, headless)
// adapt their loop and input to Scheduler, EventSource and systems.Surface.
package engine

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/glyphfield/pkg/components"
	"github.com/gonewx/glyphfield/pkg/config"
	"github.com/gonewx/glyphfield/pkg/systems"
)

// State is the engine lifecycle state.
type State int

const (
	// StateUninitialized 已创建，尚未挂载
	StateUninitialized State = iota
	// StateGenerating 正在根据当前尺寸生成粒子场
	StateGenerating
	// StateRunning 帧循环运行中
	StateRunning
	// StateTornDown 已销毁（终态）
	StateTornDown
)

// String returns a readable name for logging.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateGenerating:
		return "generating"
	case StateRunning:
		return "running"
	case StateTornDown:
		return "torn-down"
	default:
		return "unknown"
	}
}

// ErrTornDown is returned by Mount after Teardown.
var ErrTornDown = errors.New("engine: already torn down")

// Options configures a new Engine.
type Options struct {
	// Config 粒子场配置，nil 时使用默认配置
	Config *config.FieldConfig

	// Scheduler 宿主的下一帧调度器（必填）
	Scheduler Scheduler

	// Events 输入事件来源（必填）
	Events EventSource

	// Rand 随机源，nil 时以当前时间为种子
	Rand *rand.Rand

	// OnDisperse is called synchronously, exactly once, on the first click.
	OnDisperse func()
}

// Engine is the particle field engine. All methods must be called from the
// host loop goroutine.
type Engine struct {
	config    *config.FieldConfig
	scheduler Scheduler
	events    EventSource

	generator *systems.FieldGenerator
	physics   *systems.ParticleSystem
	renderer  *systems.RenderSystem

	store   *systems.ParticleStore
	sim     components.SimulationState
	surface systems.Surface

	state         State
	unsubscribers []func()

	onDisperse func()
	dispersed  bool
	visible    bool

	frames    uint64
	lastStats systems.RenderStats
}

// New creates an engine in StateUninitialized. Nothing runs until Mount.
func New(opts Options) (*Engine, error) {
	if opts.Scheduler == nil {
		return nil, fmt.Errorf("engine: scheduler is required")
	}
	if opts.Events == nil {
		return nil, fmt.Errorf("engine: event source is required")
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultFieldConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: invalid config: %w", err)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Engine{
		config:     cfg,
		scheduler:  opts.Scheduler,
		events:     opts.Events,
		generator:  systems.NewFieldGenerator(cfg, rng),
		physics:    systems.NewParticleSystem(cfg),
		renderer:   systems.NewRenderSystem(cfg),
		store:      systems.NewParticleStore(2048),
		state:      StateUninitialized,
		onDisperse: opts.OnDisperse,
		visible:    true,
	}, nil
}

// Mount attaches the engine to a surface, generates the field for the
// surface's size, subscribes to input and schedules the first frame.
//
// A nil surface is tolerated: the field stays empty and frames only advance
// the simulation until a resize supplies dimensions.
func (e *Engine) Mount(surface systems.Surface) error {
	switch e.state {
	case StateTornDown:
		return ErrTornDown
	case StateUninitialized:
	default:
		return fmt.Errorf("engine: already mounted (state %s)", e.state)
	}

	e.surface = surface
	width, height := 0, 0
	if surface != nil {
		width, height = surface.Size()
	} else {
		log.Printf("[Engine] Warning: mounted without a surface, field stays empty")
	}

	e.regenerate(width, height)
	e.sim.PointerX, e.sim.PointerY = e.sim.Center()

	e.unsubscribers = append(e.unsubscribers,
		e.events.Subscribe(EventResize, e.handleResize),
		e.events.Subscribe(EventPointerMove, e.handlePointerMove),
		e.events.Subscribe(EventPointerClick, e.handleClick),
	)

	e.scheduler.ScheduleNextFrame(e.frame)
	log.Printf("[Engine] Mounted on %dx%d surface with %d particles", width, height, e.store.Len())
	return nil
}

// Teardown cancels the scheduled frame and removes every listener.
// It is idempotent and safe to call before Mount or after a failed Mount.
func (e *Engine) Teardown() {
	if e.state == StateTornDown {
		return
	}
	previous := e.state
	e.state = StateTornDown

	e.scheduler.Cancel()
	for _, unsubscribe := range e.unsubscribers {
		unsubscribe()
	}
	e.unsubscribers = nil

	log.Printf("[Engine] Torn down from state %s after %d frames", previous, e.frames)
}

// frame is the self-rescheduling loop body.
func (e *Engine) frame() {
	if e.state != StateRunning {
		return
	}

	if e.surface != nil {
		e.renderer.Fade(e.surface)
	}

	e.physics.Step(e.store, &e.sim)

	if e.surface != nil {
		e.lastStats = e.renderer.Draw(e.surface, e.store.Particles(), e.sim.Time)
	}

	e.frames++
	// 绘制期间表面可能触发 Teardown，此时不再调度
	if e.state != StateRunning {
		return
	}
	e.scheduler.ScheduleNextFrame(e.frame)
}

func (e *Engine) regenerate(width, height int) {
	e.state = StateGenerating
	e.sim.Width, e.sim.Height = width, height
	e.generator.Generate(e.store, width, height)
	e.state = StateRunning
}

func (e *Engine) handleResize(ev Event) {
	if e.state != StateRunning {
		return
	}
	e.regenerate(ev.Width, ev.Height)
}

func (e *Engine) handlePointerMove(ev Event) {
	if e.state != StateRunning {
		return
	}
	e.sim.PointerX, e.sim.PointerY = ev.X, ev.Y
}

func (e *Engine) handleClick(ev Event) {
	if e.state != StateRunning {
		return
	}
	e.sim.Impulse = 1
	e.sim.ClickX, e.sim.ClickY = ev.X, ev.Y

	if e.dispersed {
		return
	}
	e.dispersed = true
	if e.onDisperse != nil {
		e.onDisperse()
	}
}

// SetVisible sets the visual transition flag. The engine keeps simulating
// and rendering regardless; hosts read Visible to compose the surface.
func (e *Engine) SetVisible(visible bool) {
	e.visible = visible
}

// Visible 返回视觉过渡标志
func (e *Engine) Visible() bool {
	return e.visible
}

// State 返回当前生命周期状态
func (e *Engine) State() State {
	return e.state
}

// Dispersed 是否已经触发过 disperse 信号
func (e *Engine) Dispersed() bool {
	return e.dispersed
}

// Frames 已执行的帧数
func (e *Engine) Frames() uint64 {
	return e.frames
}

// Particles returns the live particle slice. Callers must treat it as
// read-only; it is replaced on the next regeneration.
func (e *Engine) Particles() []components.ParticleComponent {
	return e.store.Particles()
}

// Simulation 返回模拟状态的副本
func (e *Engine) Simulation() components.SimulationState {
	return e.sim
}

// LastStats 返回最近一帧的绘制统计
func (e *Engine) LastStats() systems.RenderStats {
	return e.lastStats
}

// Config 返回生效的配置
func (e *Engine) Config() *config.FieldConfig {
	return e.config
}
