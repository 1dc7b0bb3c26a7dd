// Package ui provides the Bubble Tea wizard for Onboard.
//
// The UI owns no theme or validation state of its own. It renders from a
// theme.Store and a validate.Coordinator and subscribes to both, turning
// their notifications into Bubble Tea messages so the view re-renders when
// the OS appearance flips or error messages expire.
//
// Canvas plays the part of the document: its class list is the store's
// render root, and its fields answer the "#id" focus selectors that failing
// checks return.
//
// # Key Bindings
//
//   - enter: Validate the current step and advance
//   - shift+tab: Previous step
//   - tab: Next field
//   - esc: Dismiss errors
//   - ctrl+t: Cycle theme (dark → light → system)
//   - f1: Toggle help
//   - ctrl+c: Quit
package ui
