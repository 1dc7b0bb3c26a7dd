// Package config handles loading Onboard's configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/onboard/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. Apply ONBOARD_* environment overrides on top
//
// # Default Values
//
//   - Config file: ~/.config/onboard/config.toml
//   - Preferences file: ~/.config/onboard/prefs.toml
//   - Appearance poll interval: 5s
//   - Theme override: none (the persisted preference wins)
//   - Log file: none (log output is discarded while the UI owns the terminal)
//
// # TOML Format
//
//	prefs_path = "~/.config/onboard/prefs.toml"
//	theme = "system"
//	signal_poll = "5s"
//	log_file = "~/.cache/onboard/onboard.log"
//
// # Environment
//
//   - ONBOARD_PREFS_PATH
//   - ONBOARD_THEME
//   - ONBOARD_SIGNAL_POLL (Go duration)
//   - ONBOARD_LOG_FILE
//
// # Error Handling
//
// Missing config files are NOT an error. Load returns errors for unreadable
// files, TOML syntax errors, bad durations and unknown theme names. Unknown
// theme names carry a "did you mean" hint when a valid mode is close.
package config
