package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/stonebridgedev/clearview/internal/cli"
	"github.com/stonebridgedev/clearview/internal/db"
	"github.com/stonebridgedev/clearview/internal/repository"
	"github.com/stonebridgedev/clearview/internal/service"
	"github.com/stonebridgedev/clearview/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.clearview/clearview.db
	dbPath := os.Getenv("CLEARVIEW_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".clearview", "clearview.db")
	}

	// Determine snapshot store path: env var or default ~/.clearview/store
	storePath := os.Getenv("CLEARVIEW_STORE")
	if storePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		storePath = filepath.Join(home, ".clearview", "store")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	kv, err := store.Open(storePath)
	if err != nil {
		return fmt.Errorf("opening snapshot store: %w", err)
	}

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	memberRepo := repository.NewSQLiteMemberRepo(database)

	// Wire services
	projectSvc := service.NewProjectService(projectRepo, memberRepo, kv)
	taskSvc := service.NewTaskService(kv)

	app := &cli.App{
		Projects:  projectSvc,
		Documents: service.NewDocumentService(kv),
		Tasks:     taskSvc,
		Members:   service.NewMemberService(projectRepo, memberRepo),
	}

	// Detect interactive terminal for forms and the timeline TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// First run gets a demo project so the timeline is not empty.
	if err := service.SeedIfEmpty(context.Background(), projectSvc, taskSvc, time.Now()); err != nil {
		return fmt.Errorf("seeding demo data: %w", err)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
