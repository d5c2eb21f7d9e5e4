package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gorm.io/gorm/logger"

	"github.com/AFCVentura/Bookstore/internal/audit"
	"github.com/AFCVentura/Bookstore/internal/config"
	"github.com/AFCVentura/Bookstore/internal/database"
	auditRepo "github.com/AFCVentura/Bookstore/internal/database/audit"
	"github.com/AFCVentura/Bookstore/internal/seeding"
)

// SeedCommand loads the demonstration data set into a database.
type SeedCommand struct {
	DatabasePath string
	Verbose      bool
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := pflag.NewFlagSet("seed", pflag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file to seed")
	fs.BoolVarP(&cmd.Verbose, "verbose", "v", false, "Log every SQL statement")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Insert demonstration genres, books, sellers and sales.\n")
		fmt.Fprintf(os.Stderr, "Nothing is inserted when the database already holds any of them.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run(ctx context.Context) error {
	level := logger.Warn
	if cmd.Verbose {
		level = logger.Info
	}

	db, err := database.Open(cmd.DatabasePath, database.Options{LogLevel: level})
	if err != nil {
		return err
	}
	defer db.Close()

	recorder := audit.NewService(auditRepo.NewRepository(db.DB))
	result, err := seeding.NewSeeder(db, recorder).Seed(ctx)
	if err != nil {
		return err
	}

	if result.Skipped {
		fmt.Printf("%s already holds data, nothing was inserted\n", cmd.DatabasePath)
		return nil
	}
	fmt.Printf("Seeded %s: %s\n", cmd.DatabasePath, result)
	return nil
}
