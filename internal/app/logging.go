package app

import (
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

// setupLogging routes the standard logger to path. The UI owns the terminal,
// so with no path configured log output is discarded.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := tea.LogToFile(path, "onboard")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}
