package engine

// EventKind identifies an input signal delivered to the engine.
type EventKind int

const (
	// EventPointerMove 指针移动，X/Y 为表面坐标
	EventPointerMove EventKind = iota
	// EventPointerClick 指针点击，X/Y 为表面坐标
	EventPointerClick
	// EventResize 视口尺寸变化，Width/Height 为新尺寸
	EventResize
)

// String returns a readable name for logging.
func (k EventKind) String() string {
	switch k {
	case EventPointerMove:
		return "pointer-move"
	case EventPointerClick:
		return "pointer-click"
	case EventResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Event is one input signal.
type Event struct {
	Kind EventKind

	X, Y float64

	Width, Height int
}

// Handler receives events of the kind it subscribed to.
type Handler func(Event)

// EventSource is the generic subscription interface the engine listens on.
// The returned function removes the subscription and is safe to call twice.
type EventSource interface {
	Subscribe(kind EventKind, handler Handler) (unsubscribe func())
}

// Bus is an in-memory EventSource. Host adapters translate toolkit input
// into Publish calls. Like the rest of the engine it is single-threaded:
// Publish and Subscribe must be called from the host loop goroutine.
type Bus struct {
	handlers map[EventKind][]*subscription
}

type subscription struct {
	handler Handler
	removed bool
}

// NewBus 创建事件总线
func NewBus() *Bus {
	return &Bus{handlers: make(map[EventKind][]*subscription)}
}

// Subscribe implements EventSource.
func (b *Bus) Subscribe(kind EventKind, handler Handler) func() {
	sub := &subscription{handler: handler}
	b.handlers[kind] = append(b.handlers[kind], sub)

	return func() {
		if sub.removed {
			return
		}
		sub.removed = true
		subs := b.handlers[kind]
		for i, s := range subs {
			if s == sub {
				b.handlers[kind] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers the event synchronously to every current subscriber of
// its kind, in subscription order. A handler removed by an earlier handler
// during the same Publish is not called.
func (b *Bus) Publish(e Event) {
	subs := b.handlers[e.Kind]
	if len(subs) == 0 {
		return
	}
	snapshot := append([]*subscription(nil), subs...)
	for _, s := range snapshot {
		if !s.removed {
			s.handler(e)
		}
	}
}

// ListenerCount 返回所有类型的订阅总数
func (b *Bus) ListenerCount() int {
	total := 0
	for _, subs := range b.handlers {
		total += len(subs)
	}
	return total
}
