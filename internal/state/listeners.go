package state

import "sync"

// Listeners is a registry of change callbacks. The zero value is ready to use.
//
// Go funcs are not comparable, so every Add registers a distinct entry and
// returns the only handle able to remove it. Removal is idempotent, which keeps
// repeated subscribe/unsubscribe pairs from leaking entries.
type Listeners struct {
	mu      sync.Mutex
	nextID  uint64
	entries []listener
}

type listener struct {
	id uint64
	fn func()
}

// Add registers fn and returns a func that deregisters it.
func (l *Listeners) Add(fn func()) (remove func()) {
	if fn == nil {
		return func() {}
	}

	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, listener{id: id, fn: fn})
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { l.remove(id) })
	}
}

func (l *Listeners) remove(id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// Notify calls every registered listener in registration order. Listeners run
// outside the lock so they may subscribe, unsubscribe or read state freely.
func (l *Listeners) Notify() {
	for _, fn := range l.snapshot() {
		fn()
	}
}

// Len reports how many listeners are registered.
func (l *Listeners) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Reset drops every registered listener.
func (l *Listeners) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

func (l *Listeners) snapshot() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) == 0 {
		return nil
	}
	fns := make([]func(), len(l.entries))
	for i, e := range l.entries {
		fns[i] = e.fn
	}
	return fns
}
