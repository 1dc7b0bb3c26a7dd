package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/five82/onboard/internal/app"
	"github.com/five82/onboard/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	themeMode := flag.String("theme", "", "theme mode: dark, light or system (optional)")
	pollSeconds := flag.Int("poll", 0, "appearance poll interval in seconds (optional, defaults to 5s)")
	logFile := flag.String("log", "", "write logs to this file (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Theme:      *themeMode,
		LogFile:    *logFile,
	}
	if poll := *pollSeconds; poll > 0 {
		opts.PollEvery = time.Duration(poll) * time.Second
	}

	res, err := app.Run(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "onboard: %v\n", err)
		return 1
	}
	if !res.Completed {
		return 130
	}
	fmt.Printf("workspace %s ready at %s\n", res.Values[ui.FieldName], res.Values[ui.FieldDir])
	return 0
}
