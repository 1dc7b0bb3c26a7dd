package theme

import (
	"sort"
	"sync"
)

// Storage persists the raw mode string under a single key.
type Storage interface {
	// Load returns the stored value, or "" when nothing has been saved yet.
	Load() (string, error)
	Save(value string) error
}

// Signal reports the OS-level light/dark preference.
type Signal interface {
	// PrefersLight reports the current preference. ok is false when the
	// platform cannot tell.
	PrefersLight() (light bool, ok bool)
	// Watch registers onChange for preference changes and returns a func
	// that stops watching.
	Watch(onChange func()) (stop func())
}

// Root receives the visual state as a pair of mutually exclusive classes.
type Root interface {
	AddClass(name string)
	RemoveClass(name string)
}

// Env carries the capabilities a Store works against. Nil fields fall back to
// defaults: no persistence, a dark OS preference, and no visual surface. The
// zero Env is a valid non-interactive environment.
type Env struct {
	Storage Storage
	Signal  Signal
	Root    Root
}

// ClassList is an in-memory Root. The zero value is ready to use.
type ClassList struct {
	mu      sync.RWMutex
	classes map[string]struct{}
}

// AddClass implements Root.
func (c *ClassList) AddClass(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.classes == nil {
		c.classes = make(map[string]struct{})
	}
	c.classes[name] = struct{}{}
}

// RemoveClass implements Root.
func (c *ClassList) RemoveClass(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.classes, name)
}

// Has reports whether name is currently set.
func (c *ClassList) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.classes[name]
	return ok
}

// Classes returns the set classes in sorted order.
func (c *ClassList) Classes() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.classes))
	for name := range c.classes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Apply sets r's class on root and removes the other one.
func Apply(root Root, r Resolved) {
	if root == nil {
		return
	}
	root.AddClass(r.Class())
	root.RemoveClass(r.Other().Class())
}
