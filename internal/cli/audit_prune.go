package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/AFCVentura/Bookstore/internal/audit"
	"github.com/AFCVentura/Bookstore/internal/config"
	"github.com/AFCVentura/Bookstore/internal/database"
	auditRepo "github.com/AFCVentura/Bookstore/internal/database/audit"
)

// AuditPruneCommand deletes audit events older than a retention period.
type AuditPruneCommand struct {
	DatabasePath string
	OlderThan    time.Duration
}

func NewAuditPruneCommand() *AuditPruneCommand {
	return &AuditPruneCommand{}
}

func (cmd *AuditPruneCommand) ParseFlags(args []string) error {
	fs := pflag.NewFlagSet("audit-prune", pflag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.DurationVar(&cmd.OlderThan, "older-than", 90*24*time.Hour, "Delete events recorded before now minus this duration")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s audit-prune [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Delete old audit events.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.OlderThan <= 0 {
		return fmt.Errorf("--older-than must be positive")
	}
	return nil
}

func (cmd *AuditPruneCommand) Run(ctx context.Context) error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	deleted, err := audit.NewService(auditRepo.NewRepository(db.DB)).DeleteOldEvents(ctx, cmd.OlderThan)
	if err != nil {
		return fmt.Errorf("failed to prune audit events: %w", err)
	}
	fmt.Printf("Deleted %d audit events older than %v\n", deleted, cmd.OlderThan)
	return nil
}
