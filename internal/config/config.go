package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/onboard/internal/theme"
)

// Config captures Onboard's runtime settings.
type Config struct {
	PrefsPath  string
	Theme      theme.Mode // empty keeps the persisted preference
	SignalPoll time.Duration
	LogFile    string // empty discards log output
}

const (
	defaultConfigPath = "~/.config/onboard/config.toml"
	defaultPrefsPath  = "~/.config/onboard/prefs.toml"
	defaultSignalPoll = 5 * time.Second
)

type envOverrides struct {
	PrefsPath  string        `env:"ONBOARD_PREFS_PATH"`
	Theme      string        `env:"ONBOARD_THEME"`
	SignalPoll time.Duration `env:"ONBOARD_SIGNAL_POLL"`
	LogFile    string        `env:"ONBOARD_LOG_FILE"`
}

// Load reads the config file, falling back to defaults when missing, then
// applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{PrefsPath: mustExpand(defaultPrefsPath), SignalPoll: defaultSignalPoll}

	bytes, err := readFile(resolved)
	if err != nil {
		return Config{}, err
	}
	if bytes != nil {
		if err := cfg.applyFile(bytes); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return bytes, nil
}

func (c *Config) applyFile(bytes []byte) error {
	var raw struct {
		PrefsPath  string `toml:"prefs_path"`
		Theme      string `toml:"theme"`
		SignalPoll string `toml:"signal_poll"`
		LogFile    string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if p := strings.TrimSpace(raw.PrefsPath); p != "" {
		c.PrefsPath = mustExpand(p)
	}
	if p := strings.TrimSpace(raw.LogFile); p != "" {
		c.LogFile = mustExpand(p)
	}
	if poll := strings.TrimSpace(raw.SignalPoll); poll != "" {
		d, err := time.ParseDuration(poll)
		if err != nil {
			return fmt.Errorf("parse config: signal_poll: %w", err)
		}
		if d > 0 {
			c.SignalPoll = d
		}
	}
	mode, err := ParseTheme(raw.Theme)
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if mode != "" {
		c.Theme = mode
	}
	return nil
}

func (c *Config) applyEnv() error {
	var over envOverrides
	if err := env.Parse(&over); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if p := strings.TrimSpace(over.PrefsPath); p != "" {
		c.PrefsPath = mustExpand(p)
	}
	if p := strings.TrimSpace(over.LogFile); p != "" {
		c.LogFile = mustExpand(p)
	}
	if over.SignalPoll > 0 {
		c.SignalPoll = over.SignalPoll
	}
	mode, err := ParseTheme(over.Theme)
	if err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if mode != "" {
		c.Theme = mode
	}
	return nil
}

// ParseTheme normalises a user-supplied theme mode. Blank input yields "".
// Unknown values fail with the closest valid mode, when there is one.
func ParseTheme(raw string) (theme.Mode, error) {
	normalised := strings.ToLower(strings.TrimSpace(raw))
	if normalised == "" {
		return "", nil
	}
	if m, ok := theme.ParseMode(normalised); ok {
		return m, nil
	}
	if hint := theme.Suggest(normalised); hint != "" {
		return "", fmt.Errorf("unknown theme %q (did you mean %q?)", raw, hint)
	}
	return "", fmt.Errorf("unknown theme %q (want dark, light or system)", raw)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
