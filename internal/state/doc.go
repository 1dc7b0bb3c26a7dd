// Package state provides the subscription primitive shared by Onboard's
// reactive components.
//
// # Overview
//
// Both the theme store and the step-validation coordinator expose a
// Subscribe method with the same contract: register a callback, receive a
// func that deregisters it. Listeners implements that contract once.
//
//	Producer (theme.Store, validate.Coordinator):   Consumer (UI):
//	┌──────────────────────┐                      ┌──────────────────────┐
//	│ state changes        │                      │ Subscribe(refresh)   │
//	│      ↓               │                      │      ↓               │
//	│ listeners.Notify()   │─────────────────────→│ program.Send(msg)    │
//	└──────────────────────┘   (registration      └──────────────────────┘
//	                            order, no lock held)
//
// # Guarantees
//
//   - Notification is synchronous: Notify returns after every listener ran
//   - A listener removed before Notify starts is never called
//   - The deregistration func is idempotent
//   - Listeners run without the registry lock held, so they can re-enter
//
// # Usage Example
//
//	var ls state.Listeners
//	stop := ls.Add(func() { program.Send(refreshMsg{}) })
//	defer stop()
//	ls.Notify()
package state
