package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/erkinbekov/tomatea/internal/config"
	"github.com/erkinbekov/tomatea/internal/database"
	"github.com/erkinbekov/tomatea/internal/tui"
	"github.com/erkinbekov/tomatea/internal/util"
)

func main() {
	ctx := context.Background()

	dbPath, err := resolveDBPath()
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	cfg, err := config.LoadFile(config.AppName)
	if err != nil {
		// A broken config file should not keep the timer from starting.
		util.LogError("load config file", err)
	}

	model := tui.NewModel(ctx, db, cfg)
	p := tea.NewProgram(model, tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

// resolveDBPath places the database under the user data directory,
// creating it on first run.
func resolveDBPath() (string, error) {
	root := util.DataDir(config.AppName)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return filepath.Join(root, config.DBFileName), nil
}
