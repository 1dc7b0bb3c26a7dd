package validate

import "time"

// ScrollBehavior mirrors the scroll-into-view behaviour option.
type ScrollBehavior string

// ScrollBlock is the vertical alignment used when scrolling into view.
type ScrollBlock string

const (
	ScrollSmooth  ScrollBehavior = "smooth"
	ScrollInstant ScrollBehavior = "instant"

	BlockStart  ScrollBlock = "start"
	BlockCenter ScrollBlock = "center"
	BlockEnd    ScrollBlock = "end"
)

// ScrollOptions controls ScrollIntoView.
type ScrollOptions struct {
	Behavior ScrollBehavior
	Block    ScrollBlock
}

// Element is something a failing check can point at.
type Element interface {
	ScrollIntoView(opts ScrollOptions)
}

// Focusable elements also take input focus after being scrolled to.
type Focusable interface {
	Focus()
}

// Document resolves focus selectors against the live UI.
type Document interface {
	// QuerySelector returns the first element matching selector, or a nil
	// interface when nothing matches.
	QuerySelector(selector string) Element
}

// Timer is a pending expiry.
type Timer interface {
	Stop() bool
}

// Scheduler arms expiry timers.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
