package appearance

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// EnvVar forces the appearance ("light" or "dark") regardless of platform.
const EnvVar = "ONBOARD_APPEARANCE"

// Detector reports whether the platform prefers a light appearance.
type Detector interface {
	Name() string
	// Detect returns (light, true) on success and (_, false) when the
	// detector cannot tell.
	Detect() (light bool, ok bool)
}

// Chain tries detectors in order and returns the first answer.
type Chain []Detector

// Name implements Detector.
func (c Chain) Name() string {
	names := make([]string, 0, len(c))
	for _, d := range c {
		names = append(names, d.Name())
	}
	return strings.Join(names, ",")
}

// Detect implements Detector.
func (c Chain) Detect() (bool, bool) {
	for _, d := range c {
		if light, ok := d.Detect(); ok {
			return light, true
		}
	}
	return false, false
}

// Default returns the detector chain used at runtime: env override, macOS
// system setting, then the terminal background.
func Default() Chain {
	return Chain{
		EnvDetector{Var: EnvVar},
		MacOSDetector{},
		TerminalDetector{},
	}
}

// EnvDetector reads a forced appearance from an environment variable.
type EnvDetector struct {
	Var string
}

// Name implements Detector.
func (d EnvDetector) Name() string { return "env" }

// Detect implements Detector.
func (d EnvDetector) Detect() (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(d.Var))) {
	case "light":
		return true, true
	case "dark":
		return false, true
	}
	return false, false
}

const macOSTimeout = 2 * time.Second

// MacOSDetector checks AppleInterfaceStyle. It is live: each call re-reads the
// system setting.
type MacOSDetector struct{}

// Name implements Detector.
func (MacOSDetector) Name() string { return "macos" }

// Detect implements Detector.
func (MacOSDetector) Detect() (bool, bool) {
	if runtime.GOOS != "darwin" {
		return false, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), macOSTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		if ctx.Err() != nil {
			return false, false
		}
		// The key is absent in light mode.
		return true, true
	}
	return strings.TrimSpace(string(out)) != "Dark", true
}

// TerminalDetector asks the terminal for its background colour. lipgloss
// caches the answer for the process lifetime, so this never changes after
// the first call.
type TerminalDetector struct{}

// Name implements Detector.
func (TerminalDetector) Name() string { return "terminal" }

// Detect implements Detector.
func (TerminalDetector) Detect() (bool, bool) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return false, false
	}
	return !lipgloss.HasDarkBackground(), true
}
