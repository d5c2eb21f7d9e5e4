package database

import (
	"context"
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AFCVentura/Bookstore/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

// Options tunes how the database is opened.
type Options struct {
	LogLevel logger.LogLevel
}

// DefaultOptions logs slow queries and errors only.
var DefaultOptions = Options{LogLevel: logger.Warn}

// ParseLogLevel maps a configuration value to a GORM log level.
func ParseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func NewDatabase(dbPath string) (*Database, error) {
	return Open(dbPath, DefaultOptions)
}

func Open(dbPath string, opts Options) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dsn(dbPath)), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

// Migrate creates or updates every bookstore table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Genre{},
		&entities.Book{},
		&entities.Seller{},
		&entities.Sale{},
		&entities.SaleBook{},
		&entities.AuditEvent{},
	)
}

// dsn turns foreign key enforcement on for every pooled connection.
func dsn(dbPath string) string {
	if strings.Contains(dbPath, "_foreign_keys") {
		return dbPath
	}
	separator := "?"
	if strings.Contains(dbPath, "?") {
		separator = "&"
	}
	return dbPath + separator + "_foreign_keys=on"
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks the underlying connection.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// NewSession opens a unit of work bound to ctx. The caller must Close it.
func (d *Database) NewSession(ctx context.Context) *Session {
	return newSession(ctx, d.DB)
}

// WithSession runs fn inside a session that is closed when fn returns.
func (d *Database) WithSession(ctx context.Context, fn func(*Session) error) error {
	s := d.NewSession(ctx)
	defer s.Close()
	return fn(s)
}

// IsEmpty reports whether no genre, book, seller or sale has been stored yet.
func (d *Database) IsEmpty(ctx context.Context) (bool, error) {
	for _, model := range []any{&entities.Genre{}, &entities.Book{}, &entities.Seller{}, &entities.Sale{}} {
		var count int64
		if err := d.DB.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return false, nil
		}
	}
	return true, nil
}
