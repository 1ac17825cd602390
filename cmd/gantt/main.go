package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Chilos/project-gantt/internal/cli"
	"github.com/Chilos/project-gantt/internal/db"
	"github.com/Chilos/project-gantt/internal/repository"
	"github.com/Chilos/project-gantt/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.gantt/gantt.db
	dbPath := os.Getenv("GANTT_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".gantt", "gantt.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	blockRepo := repository.NewSQLiteBlockRepo(database)

	app := &cli.App{
		Timelines: service.NewTimelineService(blockRepo),
		Imports:   service.NewImportService(blockRepo),
	}

	// Detect interactive terminal for wizard and viewer entry points.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
