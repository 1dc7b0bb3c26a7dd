package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/onboard/internal/theme"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	wantPrefs, err := expandPath(defaultPrefsPath)
	if err != nil {
		t.Fatalf("expandPath(defaultPrefsPath) returned error: %v", err)
	}
	if cfg.PrefsPath != wantPrefs {
		t.Fatalf("PrefsPath = %q, want %q", cfg.PrefsPath, wantPrefs)
	}
	if cfg.SignalPoll != defaultSignalPoll {
		t.Fatalf("SignalPoll = %v, want %v", cfg.SignalPoll, defaultSignalPoll)
	}
	if cfg.Theme != "" || cfg.LogFile != "" {
		t.Fatalf("Theme/LogFile = %q/%q, want empty", cfg.Theme, cfg.LogFile)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
prefs_path = "  ~/.onboard/prefs.toml  "
theme = " Light "
signal_poll = "750ms"
log_file = "~/onboard.log"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PrefsPath != filepath.Join(home, ".onboard/prefs.toml") {
		t.Fatalf("PrefsPath = %q, want it under HOME %q", cfg.PrefsPath, home)
	}
	if cfg.Theme != theme.Light {
		t.Fatalf("Theme = %q, want light", cfg.Theme)
	}
	if cfg.SignalPoll != 750*time.Millisecond {
		t.Fatalf("SignalPoll = %v, want 750ms", cfg.SignalPoll)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`theme = "light"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	prefsPath := filepath.Join(t.TempDir(), "env-prefs.toml")
	t.Setenv("ONBOARD_THEME", "system")
	t.Setenv("ONBOARD_PREFS_PATH", prefsPath)
	t.Setenv("ONBOARD_SIGNAL_POLL", "2s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != theme.System {
		t.Fatalf("Theme = %q, want system", cfg.Theme)
	}
	if cfg.PrefsPath != prefsPath {
		t.Fatalf("PrefsPath = %q, want %q", cfg.PrefsPath, prefsPath)
	}
	if cfg.SignalPoll != 2*time.Second {
		t.Fatalf("SignalPoll = %v, want 2s", cfg.SignalPoll)
	}
}

func TestLoad_InvalidEnvDurationFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ONBOARD_SIGNAL_POLL", "soon")

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatalf("Load returned nil error, want env parse error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("Load error = %q, want parse env prefix", err.Error())
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`theme = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_UnknownThemeSuggestsClosest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`theme = "drak"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want unknown theme error")
	}
	if !strings.Contains(err.Error(), `did you mean "dark"`) {
		t.Fatalf("Load error = %q, want a dark suggestion", err.Error())
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		raw     string
		want    theme.Mode
		wantErr string
	}{
		{"", "", ""},
		{"  ", "", ""},
		{"DARK", theme.Dark, ""},
		{" system ", theme.System, ""},
		{"ligth", "", `did you mean "light"`},
		{"neon", "", "want dark, light or system"},
	}

	for _, tt := range tests {
		got, err := ParseTheme(tt.raw)
		if tt.wantErr == "" {
			if err != nil || got != tt.want {
				t.Fatalf("ParseTheme(%q) = (%q, %v), want (%q, nil)", tt.raw, got, err, tt.want)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Fatalf("ParseTheme(%q) error = %v, want it to contain %q", tt.raw, err, tt.wantErr)
		}
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
