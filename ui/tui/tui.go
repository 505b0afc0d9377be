// Copyright (c) 2026 Portmaster Team
// Portmaster - serial connection manager
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/portmaster/core"
	"github.com/toeirei/portmaster/internal/logging"
	"github.com/toeirei/portmaster/ui/tui/models/views/root"
)

const logFileName = "portmaster.log"

// Run loads the connections from p and shows the TUI until the user quits.
// Workflows still waiting on a popup are cancelled on exit.
func Run(ctx context.Context, p core.Persistence) error {
	restoreLog := redirectLog()
	defer restoreLog()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	it := NewInteractor()
	settings, err := core.NewSettings(ctx, p, it.Interactions())
	if err != nil {
		return err
	}

	program := tea.NewProgram(
		root.New(ctx, settings),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	it.Attach(program.Send)

	_, err = program.Run()
	return err
}

// redirectLog sends log output to a file in the user cache dir while the
// program owns the terminal. Without a usable file, output is dropped.
func redirectLog() (restore func()) {
	restore = func() { logging.SetOutput(os.Stderr) }

	f, err := openLogFile()
	if err != nil {
		logging.SetOutput(io.Discard)
		return restore
	}
	logging.SetOutput(f)
	return func() {
		logging.SetOutput(os.Stderr)
		_ = f.Close()
	}
}

func openLogFile() (*os.File, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("locate cache dir: %w", err)
	}
	dir = filepath.Join(dir, "portmaster")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}
