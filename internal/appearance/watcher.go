package appearance

import (
	"context"
	"sync"
	"time"

	"github.com/five82/onboard/internal/state"
)

// DefaultInterval is how often a Watcher polls its detector.
const DefaultInterval = 5 * time.Second

// Watcher polls a Detector and reports changes. It satisfies theme.Signal.
//
// Polling runs only while at least one callback is registered.
type Watcher struct {
	detector Detector
	interval time.Duration

	mu     sync.Mutex
	light  bool
	ok     bool
	primed bool
	cancel context.CancelFunc

	listeners state.Listeners
}

// NewWatcher builds a watcher over d. A non-positive interval uses
// DefaultInterval.
func NewWatcher(d Detector, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Watcher{detector: d, interval: interval}
}

// PrefersLight implements theme.Signal.
func (w *Watcher) PrefersLight() (bool, bool) {
	w.mu.Lock()
	if w.primed {
		light, ok := w.light, w.ok
		w.mu.Unlock()
		return light, ok
	}
	w.mu.Unlock()
	return w.detector.Detect()
}

// Watch implements theme.Signal.
func (w *Watcher) Watch(onChange func()) (stop func()) {
	remove := w.listeners.Add(onChange)
	w.start()

	var once sync.Once
	return func() {
		once.Do(func() {
			remove()
			if w.listeners.Len() == 0 {
				w.stop()
			}
		})
	}
}

func (w *Watcher) start() {
	w.mu.Lock()
	if w.cancel != nil {
		w.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.mu.Unlock()

	// Prime so the first tick compares against the state at Watch time.
	w.poll()

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.poll()
			}
		}
	}()
}

func (w *Watcher) stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Running reports whether the polling goroutine is active.
func (w *Watcher) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cancel != nil
}

// poll detects once and notifies when the answer differs from the last one.
func (w *Watcher) poll() {
	light, ok := w.detector.Detect()

	w.mu.Lock()
	changed := w.primed && (light != w.light || ok != w.ok)
	w.light, w.ok, w.primed = light, ok, true
	w.mu.Unlock()

	if changed {
		w.listeners.Notify()
	}
}
