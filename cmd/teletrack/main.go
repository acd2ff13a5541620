package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/teletrack/teletrack-cli/internal/api"
	"github.com/teletrack/teletrack-cli/internal/cli"
	"github.com/teletrack/teletrack-cli/internal/db"
	"github.com/teletrack/teletrack-cli/internal/repository"
	"github.com/teletrack/teletrack-cli/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.teletrack/teletrack.db
	dbPath := os.Getenv("TELETRACK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".teletrack", "teletrack.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	cache := repository.NewSQLiteSessionCache(database)
	creds := repository.NewSQLiteCredentialStore(database)

	cfg := api.LoadConfig()
	var observer api.Observer = api.NoopObserver{}
	if cfg.LogCalls {
		observer = api.NewLogObserver(os.Stderr)
	}
	client := api.NewClient(cfg, observer)

	// Resume the stored login, if any. Commands that need auth fail
	// with a clear message when none exists.
	if token, _, err := creds.Load(context.Background()); err == nil {
		client.SetToken(token)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("loading credentials: %w", err)
	}

	sessions := service.NewSessionService(client, cache)
	app := &cli.App{
		Auth:     service.NewAuthService(client, creds),
		Sessions: sessions,
		Reports:  service.NewReportService(sessions),
		Chat:     service.NewChatService(client),
		Settings: service.NewSettingsService(client),

		Interactive: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
