package main

import (
	"log"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/gonewx/glyphfield/pkg/config"
	"github.com/gonewx/glyphfield/pkg/engine"
	"github.com/gonewx/glyphfield/pkg/surfaces"
	"github.com/gonewx/glyphfield/pkg/utils"
)

// fadeDuration disperse 后淡出的秒数
const fadeDuration = 1.5

// Host adapts a tcell screen to the engine: mouse and resize events go to
// the bus, each tick pumps one frame and flushes the cell buffer.
type Host struct {
	screen    tcell.Screen
	surface   *surfaces.TerminalSurface
	engine    *engine.Engine
	scheduler *engine.ManualScheduler
	bus       *engine.Bus
	fader     *utils.Fader

	buttonDown bool
}

// NewHost 创建终端宿主并挂载引擎
func NewHost(screen tcell.Screen, cfg *config.FieldConfig, seed int64) (*Host, error) {
	h := &Host{
		screen:    screen,
		scheduler: engine.NewManualScheduler(),
		bus:       engine.NewBus(),
		fader:     utils.NewFader(fadeDuration, utils.EaseInOutCubic),
	}

	cols, rows := screen.Size()
	h.surface = surfaces.NewTerminalSurface(cols, rows, config.BackgroundColor.NRGBA())

	e, err := engine.New(engine.Options{
		Config:    cfg,
		Scheduler: h.scheduler,
		Events:    h.bus,
		Rand:      rand.New(rand.NewSource(seed)),
		OnDisperse: func() {
			log.Printf("[Term] Disperse signalled")
			h.engine.SetVisible(false)
		},
	})
	if err != nil {
		return nil, err
	}
	h.engine = e

	if err := e.Mount(h.surface); err != nil {
		return nil, err
	}
	return h, nil
}

// HandleEvent 处理一个 tcell 事件，返回 false 表示退出
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				h.engine.SetVisible(true)
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := cellCentre(col, row)
		h.bus.Publish(engine.Event{Kind: engine.EventPointerMove, X: x, Y: y})

		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !h.buttonDown {
			h.bus.Publish(engine.Event{Kind: engine.EventPointerClick, X: x, Y: y})
		}
		h.buttonDown = pressed

	case *tcell.EventResize:
		cols, rows := ev.Size()
		h.surface.Resize(cols, rows)
		width, height := h.surface.Size()
		h.bus.Publish(engine.Event{Kind: engine.EventResize, Width: width, Height: height})
		h.screen.Sync()

	case nil:
		// 屏幕已关闭
		return false
	}
	return true
}

// Tick 推进一帧并刷新屏幕
func (h *Host) Tick(dt float64) {
	h.scheduler.RunFrame()

	h.fader.SetVisible(h.engine.Visible())
	h.fader.Update(dt)
	h.surface.SetOpacity(h.fader.Opacity())
	h.surface.Flush(h.screen)
}

// Close 销毁引擎
func (h *Host) Close() {
	h.engine.Teardown()
}

// cellCentre 字符单元中心对应的像素坐标
func cellCentre(col, row int) (float64, float64) {
	return float64(col*surfaces.CellWidth) + surfaces.CellWidth/2,
		float64(row*surfaces.CellHeight) + surfaces.CellHeight/2
}
