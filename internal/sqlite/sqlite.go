// Package sqlite opens the game record database shared by the record and
// locale repositories
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

// Options configures how the database is opened
type Options struct {
	// ReadOnly opens an existing database without write access
	ReadOnly bool
	// MaxOpenConns bounds the connection pool; 0 keeps the driver default
	MaxOpenConns int
}

// Open opens the database at path. Unless ReadOnly is set, the parent
// directory is created and the schema is applied.
func Open(ctx context.Context, path string, opts *Options) (*sql.DB, error) {
	if path == "" {
		return nil, errors.InvalidArgument("database path is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	dsn := path
	if opts.ReadOnly {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeNotFound, "database not found")
		}
		dsn = "file:" + path + "?mode=ro"
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create directory for %s", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %s", path)
	}
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach database")
	}

	if !opts.ReadOnly {
		if err := Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates any missing tables and indexes
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "failed to apply schema")
		}
	}
	return nil
}
