package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/five82/onboard/internal/appearance"
	"github.com/five82/onboard/internal/config"
	"github.com/five82/onboard/internal/prefs"
	"github.com/five82/onboard/internal/theme"
	"github.com/five82/onboard/internal/ui"
	"github.com/five82/onboard/internal/validate"
)

// Options configure the Onboard application. Non-zero fields override the
// config file and environment.
type Options struct {
	ConfigPath string
	PrefsPath  string
	Theme      string
	PollEvery  time.Duration
	LogFile    string
}

// Run boots the wizard until it finishes, the user quits, or ctx is cancelled.
func Run(ctx context.Context, opts Options) (ui.Result, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return ui.Result{}, fmt.Errorf("load config: %w", err)
	}
	if err := applyOptions(&cfg, opts); err != nil {
		return ui.Result{}, err
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return ui.Result{}, fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	canvas := ui.NewWizardCanvas()
	store := theme.NewStore(newEnv(cfg, appearance.Default(), canvas))
	if cfg.Theme != "" && store.Mode() != cfg.Theme {
		store.SetMode(cfg.Theme)
	}
	checks := validate.New(ui.Steps(canvas), validate.WithDocument(canvas))

	log.Printf("starting: prefs=%s mode=%s resolved=%s", cfg.PrefsPath, store.Mode(), store.Resolved())

	return ui.Run(ctx, ui.Options{
		Theme:  store,
		Checks: checks,
		Canvas: canvas,
	})
}

func applyOptions(cfg *config.Config, opts Options) error {
	if opts.PrefsPath != "" {
		cfg.PrefsPath = opts.PrefsPath
	}
	if opts.PollEvery > 0 {
		cfg.SignalPoll = opts.PollEvery
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	mode, err := config.ParseTheme(opts.Theme)
	if err != nil {
		return err
	}
	if mode != "" {
		cfg.Theme = mode
	}
	return nil
}

func newEnv(cfg config.Config, detector appearance.Detector, root theme.Root) theme.Env {
	return theme.Env{
		Storage: prefs.File{Path: cfg.PrefsPath},
		Signal:  appearance.NewWatcher(detector, cfg.SignalPoll),
		Root:    root,
	}
}
