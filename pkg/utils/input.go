// Package utils 提供宿主侧的通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/glyphfield/pkg/engine"
)

// InputState 存储当前帧的输入状态
// 用于统一处理鼠标和触摸输入
type InputState struct {
	// 是否有点击/触摸事件刚刚发生
	JustPressed bool
	// 指针位置（触摸优先）
	X, Y int
	// 是否有活动的触摸
	IsTouching bool
}

// GetInputState 获取当前帧的输入状态
// 同时支持鼠标点击和触摸输入，优先检测触摸
func GetInputState() InputState {
	state := InputState{}

	// 首先检查触摸输入（移动设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.JustPressed = true
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.IsTouching = true
		return state
	}

	// 拖动中的触摸也驱动指针排斥
	allTouchIDs := ebiten.AppendTouchIDs(nil)
	if len(allTouchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(allTouchIDs[0])
		state.IsTouching = true
		return state
	}

	// 其次检查鼠标输入（桌面设备）
	state.X, state.Y = ebiten.CursorPosition()
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return state
}

// Publisher 接收宿主输入事件，engine.Bus 实现此接口
type Publisher interface {
	Publish(e engine.Event)
}

// InputAdapter translates polled host input into engine events.
//
// Pointer moves are published only when the position changes; a press is
// published as a move to the press position followed by a click, so the
// repulsion source and the explosion origin agree on the same tick.
type InputAdapter struct {
	events Publisher

	hasPointer         bool
	pointerX, pointerY int

	width, height int
}

// NewInputAdapter 创建输入适配器
func NewInputAdapter(events Publisher) *InputAdapter {
	return &InputAdapter{events: events}
}

// Apply 发布一帧的输入状态
func (a *InputAdapter) Apply(state InputState) {
	if !a.hasPointer || state.X != a.pointerX || state.Y != a.pointerY {
		a.hasPointer = true
		a.pointerX, a.pointerY = state.X, state.Y
		a.events.Publish(engine.Event{
			Kind: engine.EventPointerMove,
			X:    float64(state.X),
			Y:    float64(state.Y),
		})
	}

	if state.JustPressed {
		a.events.Publish(engine.Event{
			Kind: engine.EventPointerClick,
			X:    float64(state.X),
			Y:    float64(state.Y),
		})
	}
}

// Resize 尺寸变化时发布 resize 事件，返回是否发布
func (a *InputAdapter) Resize(width, height int) bool {
	if width == a.width && height == a.height {
		return false
	}
	a.width, a.height = width, height
	a.events.Publish(engine.Event{
		Kind:   engine.EventResize,
		Width:  width,
		Height: height,
	})
	return true
}

// SetSize 只记录尺寸，不发布事件
// 引擎挂载时已按当前尺寸生成粒子场，宿主用它同步适配器
func (a *InputAdapter) SetSize(width, height int) {
	a.width, a.height = width, height
}

// Poll 读取 ebiten 输入并发布
func (a *InputAdapter) Poll() {
	a.Apply(GetInputState())
}
