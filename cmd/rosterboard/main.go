// cmd/rosterboard/main.go
//
// This is the entry point for the rosterboard TUI.
//
// Flow:
// 1. Resolve the data directory (flag, ROSTERBOARD_HOME, or ~/.rosterboard)
// 2. Initialize it: records/, logs/, exports/, config.yaml
// 3. Launch the TUI

package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"rosterboard/internal/config"
	"rosterboard/internal/tui"
)

func main() {
	dataDir := flag.String("data", "", "data directory (default: $ROSTERBOARD_HOME or ~/.rosterboard)")
	flag.Parse()

	dir := *dataDir
	if dir == "" {
		resolved, err := config.ResolveDataDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving data directory: %v\n", err)
			os.Exit(1)
		}
		dir = resolved
	}

	if err := config.Init(dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing %s: %v\n", dir, err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	app, err := tui.NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		os.Exit(1)
	}

	// tea.NewProgram creates a new bubbletea application.
	// WithMouseAllMotion enables the drag selection on the grid.
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
