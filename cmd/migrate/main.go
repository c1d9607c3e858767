// Command migrate creates or inspects the dwitter schema. The server only
// migrates on start outside production, so production deploys run this first.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"dwitter/internal/config"
	"dwitter/internal/database"
	"dwitter/internal/observability"

	"gorm.io/gorm"
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		observability.Logger.Error("migrate failed", "error", err)
		os.Exit(1)
	}
}

func usage() error {
	return fmt.Errorf("usage: go run ./cmd/migrate <up|status>")
}

func run() error {
	if flag.NArg() < 1 {
		return usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Open(database.Dialector(cfg))
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	return execute(context.Background(), db, flag.Arg(0))
}

// execute runs one migrate subcommand against db.
func execute(ctx context.Context, db *gorm.DB, cmd string) error {
	switch strings.ToLower(strings.TrimSpace(cmd)) {
	case "up":
		if err := database.Migrate(db.WithContext(ctx)); err != nil {
			return err
		}
		observability.Logger.InfoContext(ctx, "schema migrated")
	case "status":
		status, err := database.GetSchemaStatus(ctx, db)
		if err != nil {
			return fmt.Errorf("schema status failed: %w", err)
		}
		observability.Logger.InfoContext(ctx, "schema status",
			"ready", status.Ready(), "present", status.Present, "missing", status.Missing)
		if !status.Ready() {
			return fmt.Errorf("missing tables: %s", strings.Join(status.Missing, ", "))
		}
	default:
		return usage()
	}
	return nil
}
