package theme

import (
	"log"
	"sync"

	"github.com/five82/onboard/internal/state"
)

// Store holds the theme preference, persists it, resolves it against the OS
// signal and notifies subscribers of changes.
//
// The mode is read from storage once, on first use, and cached afterwards so
// Snapshot stays stable between changes.
type Store struct {
	env Env

	mu        sync.Mutex
	mode      Mode
	loaded    bool
	mounted   bool
	stopWatch func()

	listeners state.Listeners
}

// NewStore builds a store over env. Call Mount to start following the OS
// signal and Close to stop.
func NewStore(env Env) *Store {
	return &Store{env: env}
}

// Mode returns the persisted mode, or DefaultMode when nothing usable is stored.
func (s *Store) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modeLocked()
}

// Snapshot returns the current mode for consistency checks by polling
// consumers. It only changes after SetMode, Cycle or an applied OS change.
func (s *Store) Snapshot() Mode {
	return s.Mode()
}

// ServerSnapshot returns the mode to assume when there is no storage or
// visual surface at all.
func (s *Store) ServerSnapshot() Mode {
	return DefaultMode
}

// Resolve maps m onto a concrete theme. System consults the OS signal and
// falls back to dark when the signal is unavailable.
func (s *Store) Resolve(m Mode) Resolved {
	switch m {
	case Light:
		return ResolvedLight
	case System:
		return s.systemResolved()
	}
	return ResolvedDark
}

// Resolved is Resolve applied to the current mode.
func (s *Store) Resolved() Resolved {
	return s.Resolve(s.Mode())
}

// SetMode persists m, applies it to the root and notifies every subscriber
// before returning. Unknown modes are ignored.
func (s *Store) SetMode(m Mode) {
	if !m.Valid() {
		log.Printf("theme: ignoring unknown mode %q", m)
		return
	}

	s.mu.Lock()
	if s.env.Storage != nil {
		if err := s.env.Storage.Save(string(m)); err != nil {
			log.Printf("theme: save preference: %v", err)
		}
	}
	s.mode = m
	s.loaded = true
	Apply(s.env.Root, s.Resolve(m))
	s.mu.Unlock()

	s.listeners.Notify()
}

// Cycle advances dark → light → system → dark.
func (s *Store) Cycle() {
	s.SetMode(s.Mode().Next())
}

// Subscribe registers fn for every SetMode call and for OS changes while the
// mode is System. The returned func deregisters fn.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	return s.listeners.Add(fn)
}

// Mount starts watching the OS signal and reapplies the resolved theme once,
// correcting any drift from state applied before the store existed. Calling
// Mount on a mounted store does nothing.
func (s *Store) Mount() {
	s.mu.Lock()
	if s.mounted {
		s.mu.Unlock()
		return
	}
	s.mounted = true
	Apply(s.env.Root, s.Resolve(s.modeLocked()))
	s.mu.Unlock()

	if s.env.Signal == nil {
		return
	}
	stop := s.env.Signal.Watch(s.handleSignalChange)

	s.mu.Lock()
	if !s.mounted {
		// Closed while Watch was registering.
		s.mu.Unlock()
		stop()
		return
	}
	s.stopWatch = stop
	s.mu.Unlock()
}

// Close stops watching the OS signal. Subscribers keep their registrations.
func (s *Store) Close() {
	s.mu.Lock()
	stop := s.stopWatch
	s.stopWatch = nil
	s.mounted = false
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
}

func (s *Store) handleSignalChange() {
	s.mu.Lock()
	if !s.mounted || s.modeLocked() != System {
		s.mu.Unlock()
		return
	}
	Apply(s.env.Root, s.systemResolved())
	s.mu.Unlock()

	s.listeners.Notify()
}

func (s *Store) modeLocked() Mode {
	if !s.loaded {
		s.mode = s.loadMode()
		s.loaded = true
	}
	return s.mode
}

func (s *Store) loadMode() Mode {
	if s.env.Storage == nil {
		return DefaultMode
	}
	raw, err := s.env.Storage.Load()
	if err != nil {
		log.Printf("theme: load preference: %v", err)
		return DefaultMode
	}
	if m, ok := ParseMode(raw); ok {
		return m
	}
	return DefaultMode
}

func (s *Store) systemResolved() Resolved {
	if s.env.Signal == nil {
		return ResolvedDark
	}
	if light, ok := s.env.Signal.PrefersLight(); ok && light {
		return ResolvedLight
	}
	return ResolvedDark
}
