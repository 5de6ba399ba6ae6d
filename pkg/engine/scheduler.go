package engine

// Scheduler is the host's "next frame" primitive.
//
// ScheduleNextFrame registers the callback to run on the next display
// refresh, replacing any callback still pending. Cancel drops the pending
// callback; it must be safe to call repeatedly.
type Scheduler interface {
	ScheduleNextFrame(callback func())
	Cancel()
}

// ManualScheduler is a Scheduler pumped explicitly by its host.
//
// Hosts with their own loop (ebiten's Update, a terminal ticker, a headless
// renderer, tests) call RunFrame once per refresh. It is not safe for
// concurrent use; all calls must come from the host's loop goroutine.
type ManualScheduler struct {
	pending func()
	frames  uint64
}

// NewManualScheduler 创建手动驱动的调度器
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// ScheduleNextFrame implements Scheduler.
func (s *ManualScheduler) ScheduleNextFrame(callback func()) {
	s.pending = callback
}

// Cancel implements Scheduler.
func (s *ManualScheduler) Cancel() {
	s.pending = nil
}

// Pending 是否有等待执行的帧回调
func (s *ManualScheduler) Pending() bool {
	return s.pending != nil
}

// Frames 已执行的帧数
func (s *ManualScheduler) Frames() uint64 {
	return s.frames
}

// RunFrame runs the pending callback, if any, and reports whether one ran.
// The callback is detached before it runs so it may reschedule itself.
func (s *ManualScheduler) RunFrame() bool {
	callback := s.pending
	if callback == nil {
		return false
	}
	s.pending = nil
	s.frames++
	callback()
	return true
}
