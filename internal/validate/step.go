package validate

// Result is the outcome of a step check.
type Result struct {
	Valid  bool
	Errors []string
	// FocusSelector names the element to bring into view when the check
	// fails. Empty means no focus change.
	FocusSelector string
}

// Step is one registered wizard step. Steps without a Check always pass.
type Step struct {
	ID    int
	Title string
	Check func() Result
}

// Pass is the result reported for steps that have nothing to check.
func Pass() Result {
	return Result{Valid: true, Errors: []string{}}
}

// Fail builds a failing result with the given messages.
func Fail(focusSelector string, errs ...string) Result {
	return Result{Valid: false, Errors: errs, FocusSelector: focusSelector}
}

// Lookup returns the first step with the given ID.
func Lookup(steps []Step, id int) (Step, bool) {
	for _, s := range steps {
		if s.ID == id {
			return s, true
		}
	}
	return Step{}, false
}
