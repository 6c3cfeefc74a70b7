// Package sqlite implements the bond store on an embedded SQLite file using
// modernc.org/sqlite, a pure Go driver that needs no CGO.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	_ "modernc.org/sqlite"
)

// Config holds SQLite connection settings.
type Config struct {
	// Path is the database file. In-memory databases are per connection, so use a file.
	Path string

	MaxOpenConns    int
	ConnMaxLifetime time.Duration

	// JournalMode sets the SQLite journal mode (WAL recommended for concurrency).
	JournalMode string

	// BusyTimeout is how long a writer waits for a lock, in milliseconds.
	BusyTimeout int
}

// DefaultConfig returns a default SQLite configuration.
func DefaultConfig(dbPath string) Config {
	return Config{
		Path:            dbPath,
		MaxOpenConns:    1, // SQLite works best with a single writer
		ConnMaxLifetime: time.Hour,
		JournalMode:     "WAL",
		BusyTimeout:     5000,
	}
}

// DSN renders the modernc connection string with its pragmas.
func (c Config) DSN() string {
	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", c.BusyTimeout))
	q.Add("_pragma", fmt.Sprintf("journal_mode(%s)", c.JournalMode))
	q.Add("_pragma", "foreign_keys(1)")
	return "file:" + c.Path + "?" + q.Encode()
}

// Open opens and pings the database.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	db, err := sql.Open("sqlite", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxOpenConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	slog.Info("Connected to SQLite database",
		slog.String("path", cfg.Path),
		slog.String("journal_mode", cfg.JournalMode))
	return db, nil
}
