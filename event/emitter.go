package event

import "sync"

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/emitter.go -package=mocks . Emitter

// Emitter receives requests produced while an actor is being ticked.
type Emitter interface {
	Emit(r Request)
}

// Buffer is an Emitter that collects requests until they are flushed.
type Buffer struct {
	mu       sync.Mutex
	requests []Request
}

// Emit ...
func (b *Buffer) Emit(r Request) {
	b.mu.Lock()
	b.requests = append(b.requests, r)
	b.mu.Unlock()
}

// Len returns the amount of requests currently buffered.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

// Flush returns every buffered request in emission order and empties the buffer.
func (b *Buffer) Flush() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()

	requests := b.requests
	b.requests = nil
	return requests
}

// Discard is an Emitter that drops every request.
var Discard Emitter = discard{}

type discard struct{}

func (discard) Emit(Request) {}
