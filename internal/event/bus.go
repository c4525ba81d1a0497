// Package event implements the engine's synchronous publish/subscribe bus.
//
// Grounded on rdtc8822-debug-L1JGO-Whale's internal/core/event.Bus (a
// generic, reflect.Type-keyed handler registry with package-level
// Emit[T]/Subscribe[T] helpers) but adapted from that engine's
// double-buffered, tick-deferred delivery to the synchronous, re-entrant
// FIFO delivery spec.md §2/§5 require: delivery order is subscription
// order, and a publish that happens from inside a handler is appended to a
// drain queue and flushed before the outer Publish call returns.
package event

import "reflect"

// Bus is the engine's single event dispatcher. It is not safe for
// concurrent use — the whole engine is single-threaded cooperative
// (spec.md §5).
type Bus struct {
	handlers map[reflect.Type][]any
	queue    []func()
	draining bool
}

// NewBus constructs an empty Bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[reflect.Type][]any)}
}

// Subscribe registers fn to be called, in registration order, for every
// event of type T published after this call.
func Subscribe[T any](b *Bus, fn func(T)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	b.handlers[t] = append(b.handlers[t], fn)
}

// Publish delivers evt to every subscriber of its type, in subscription
// order. If Publish is called re-entrantly (from inside a handler that is
// itself running as part of an outer Publish), the nested publish is
// appended to a FIFO queue and drained after the outer handler list
// finishes, rather than interleaving — re-entrant publishes never run
// out of order relative to the handler that triggered them.
func Publish[T any](b *Bus, evt T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	deliver := func() {
		handlers := b.handlers[t]
		for _, h := range handlers {
			if fn, ok := h.(func(T)); ok {
				fn(evt)
			}
		}
	}

	if b.draining {
		b.queue = append(b.queue, deliver)
		return
	}

	b.draining = true
	deliver()
	for len(b.queue) > 0 {
		next := b.queue[0]
		b.queue = b.queue[1:]
		next()
	}
	b.draining = false
}
