// Package app provides the orchestration layer for the Onboard application.
//
// # Overview
//
// This package is the composition root. It loads configuration, builds the
// environment the theme store runs against, and hands the stores to the UI.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()            Config file + ONBOARD_* env
//	       ├─────> setupLogging()           log → file, or discarded
//	       ├─────> ui.NewWizardCanvas()     Render root + focus targets
//	       ├─────> theme.NewStore(env)      prefs.File + appearance.Watcher + canvas
//	       ├─────> validate.New(steps)      Step checks over canvas fields
//	       └─────> ui.Run()                 Mount, subscribe, run TUI (blocks)
//
// # Overrides
//
// Command-line options win over environment variables, which win over the
// config file. An explicit theme is applied through the store, so it is
// persisted like any other choice.
package app
