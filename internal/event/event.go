// Package event provides a synchronous, typed publish/subscribe channel.
//
// Emit delivers to every listener in registration order before it returns.
// Nothing is queued or batched, so a listener observes the event at the
// exact point in the producer's update where it was raised.
package event

// Listener receives events of type T.
type Listener[T any] interface {
	Handle(ev T)
}

// ListenerFunc adapts a plain function to a Listener.
type ListenerFunc[T any] func(ev T)

// Handle calls f(ev).
func (f ListenerFunc[T]) Handle(ev T) {
	f(ev)
}

// Dispatcher fans an event out to registered listeners.
// The zero value is ready to use. Not safe for concurrent use.
type Dispatcher[T any] struct {
	listeners []Listener[T]
}

// Subscribe registers l. A nil listener is ignored.
func (d *Dispatcher[T]) Subscribe(l Listener[T]) {
	if l == nil {
		return
	}
	d.listeners = append(d.listeners, l)
}

// Emit delivers ev to every listener.
func (d *Dispatcher[T]) Emit(ev T) {
	for _, l := range d.listeners {
		l.Handle(ev)
	}
}

// Len returns the number of registered listeners.
func (d *Dispatcher[T]) Len() int {
	return len(d.listeners)
}
