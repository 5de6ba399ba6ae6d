package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseInOutCubic 三次方缓入缓出
// 特点：开始慢，中间快，结束慢
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Fader drives an opacity between 0 and 1 over a fixed duration.
//
// The progress is linear in time and eased on output. Reversing the target
// mid-fade continues from the current progress instead of restarting.
type Fader struct {
	duration float64
	progress float64 // 0 = 完全不可见, 1 = 完全可见
	target   float64
	ease     func(float64) float64
}

// NewFader 创建完全可见的淡入淡出器
//
// 参数：
//   - duration: 完整过渡的秒数，非正值表示立即切换
//   - ease: 缓动函数，nil 时使用线性
func NewFader(duration float64, ease func(float64) float64) *Fader {
	if ease == nil {
		ease = EaseLinear
	}
	return &Fader{duration: duration, progress: 1, target: 1, ease: ease}
}

// SetVisible 设置过渡目标
func (f *Fader) SetVisible(visible bool) {
	if visible {
		f.target = 1
	} else {
		f.target = 0
	}
}

// Update 推进 dt 秒
func (f *Fader) Update(dt float64) {
	if f.duration <= 0 {
		f.progress = f.target
		return
	}
	step := dt / f.duration
	if f.progress < f.target {
		f.progress = math.Min(f.target, f.progress+step)
	} else if f.progress > f.target {
		f.progress = math.Max(f.target, f.progress-step)
	}
}

// Opacity 返回缓动后的不透明度
func (f *Fader) Opacity() float64 {
	return f.ease(f.progress)
}

// Done 过渡是否已完成
func (f *Fader) Done() bool {
	return f.progress == f.target
}
