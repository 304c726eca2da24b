package session

import "sync"

// Bus is the process-wide auth-changed signal. A broadcast carries no
// payload; it means "re-read auth state from the store now". Every component
// that mutates the token or role slots must write the store first and
// broadcast after, so subscribers always observe the new state.
type Bus struct {
	mu   sync.Mutex
	subs []func()
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn to run on every subsequent broadcast.
func (b *Bus) Subscribe(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

// Broadcast synchronously notifies all subscribers in subscription order.
func (b *Bus) Broadcast() {
	b.mu.Lock()
	subs := make([]func(), len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
