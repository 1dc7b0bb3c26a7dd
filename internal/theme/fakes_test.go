package theme

import (
	"errors"
	"sync"
)

type memStorage struct {
	value   string
	saves   int
	loads   int
	loadErr error
	saveErr error
}

func (m *memStorage) Load() (string, error) {
	m.loads++
	if m.loadErr != nil {
		return "", m.loadErr
	}
	return m.value, nil
}

func (m *memStorage) Save(value string) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.value = value
	return nil
}

var errUnavailable = errors.New("storage unavailable")

type fakeSignal struct {
	mu       sync.Mutex
	light    bool
	ok       bool
	watchers map[int]func()
	nextID   int
}

func newFakeSignal(light bool) *fakeSignal {
	return &fakeSignal{light: light, ok: true, watchers: make(map[int]func())}
}

func (f *fakeSignal) PrefersLight() (bool, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.light, f.ok
}

func (f *fakeSignal) Watch(onChange func()) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	f.watchers[id] = onChange
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.watchers, id)
	}
}

// set flips the preference and fires every watcher, like a media query change.
func (f *fakeSignal) set(light bool) {
	f.mu.Lock()
	f.light = light
	fns := make([]func(), 0, len(f.watchers))
	for _, fn := range f.watchers {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (f *fakeSignal) watcherCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.watchers)
}

// countingRoot wraps ClassList and counts applications.
type countingRoot struct {
	ClassList
	adds int
}

func (c *countingRoot) AddClass(name string) {
	c.adds++
	c.ClassList.AddClass(name)
}
