package validate

import (
	"sync"
	"time"

	"github.com/five82/onboard/internal/state"
)

// ErrorDisplayDuration is how long errors from a failed check stay visible.
const ErrorDisplayDuration = 4000 * time.Millisecond

// State is the transient validation state shown to the user.
type State struct {
	Errors      []string
	FocusTarget string
}

// Valid reports whether there are no errors on display.
func (s State) Valid() bool {
	return len(s.Errors) == 0
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithDocument sets where focus selectors are resolved.
func WithDocument(doc Document) Option {
	return func(c *Coordinator) { c.doc = doc }
}

// WithScheduler replaces the wall clock used for expiry timers.
func WithScheduler(s Scheduler) Option {
	return func(c *Coordinator) {
		if s != nil {
			c.sched = s
		}
	}
}

// WithDisplayDuration overrides ErrorDisplayDuration.
func WithDisplayDuration(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.display = d
		}
	}
}

// Coordinator runs step checks and holds the resulting errors until they
// expire, the next check runs, or Clear is called.
//
// Every Validate and Clear bumps a generation counter. An expiry timer only
// clears state when the generation it captured is still current, so a stale
// timer can never wipe errors produced by a later call.
type Coordinator struct {
	steps   []Step
	doc     Document
	sched   Scheduler
	display time.Duration

	mu      sync.Mutex
	gen     uint64
	timer   Timer
	current State
	closed  bool

	listeners state.Listeners
}

// New builds a coordinator over the given steps.
func New(steps []Step, opts ...Option) *Coordinator {
	c := &Coordinator{
		steps:   append([]Step(nil), steps...),
		sched:   wallClock{},
		display: ErrorDisplayDuration,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Steps returns the registered steps in order.
func (c *Coordinator) Steps() []Step {
	return append([]Step(nil), c.steps...)
}

// Validate runs the check registered for id. Unknown ids and steps without a
// check pass and clear any errors on display.
func (c *Coordinator) Validate(id int) Result {
	step, ok := Lookup(c.steps, id)
	if !ok || step.Check == nil {
		c.reset()
		return Pass()
	}

	res := step.Check()
	if res.Valid {
		c.reset()
		return res
	}

	c.fail(res)
	c.focus(res.FocusSelector)
	return res
}

// Clear dismisses errors and disarms the pending expiry.
func (c *Coordinator) Clear() {
	c.reset()
}

// Errors returns a copy of the errors on display.
func (c *Coordinator) Errors() []string {
	return c.State().Errors
}

// State returns a copy of the current state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Errors:      cloneStrings(c.current.Errors),
		FocusTarget: c.current.FocusTarget,
	}
}

// Subscribe registers fn for every state change, expiry included.
func (c *Coordinator) Subscribe(fn func()) (unsubscribe func()) {
	return c.listeners.Add(fn)
}

// Close disarms the pending expiry. Later failures no longer arm timers.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.gen++
	c.stopTimerLocked()
}

func (c *Coordinator) reset() {
	c.mu.Lock()
	c.gen++
	c.stopTimerLocked()
	changed := !c.current.Valid() || c.current.FocusTarget != ""
	c.current = State{}
	c.mu.Unlock()

	if changed {
		c.listeners.Notify()
	}
}

func (c *Coordinator) fail(res Result) {
	c.mu.Lock()
	c.gen++
	c.stopTimerLocked()
	c.current = State{
		Errors:      cloneStrings(res.Errors),
		FocusTarget: res.FocusSelector,
	}
	if !c.closed {
		gen := c.gen
		c.timer = c.sched.AfterFunc(c.display, func() { c.expire(gen) })
	}
	c.mu.Unlock()

	c.listeners.Notify()
}

func (c *Coordinator) expire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.closed {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.current = State{}
	c.mu.Unlock()

	c.listeners.Notify()
}

func (c *Coordinator) focus(selector string) {
	if selector == "" || c.doc == nil {
		return
	}
	el := c.doc.QuerySelector(selector)
	if el == nil {
		return
	}
	el.ScrollIntoView(ScrollOptions{Behavior: ScrollSmooth, Block: BlockCenter})
	if f, ok := el.(Focusable); ok {
		f.Focus()
	}
}

func (c *Coordinator) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
