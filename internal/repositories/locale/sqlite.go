package locale

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

// SQLiteConfig holds the dependencies for the SQLite repository
type SQLiteConfig struct {
	DB *sql.DB
}

// Validate ensures all required dependencies are provided
func (c *SQLiteConfig) Validate() error {
	if c.DB == nil {
		return errors.InvalidArgument("database is required")
	}
	return nil
}

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a locale repository over the locale_en table
func NewSQLiteRepository(cfg *SQLiteConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &sqliteRepository{db: cfg.DB}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	var text string
	// hashes are shifted right once so they always fit a signed INTEGER
	err := r.db.QueryRowContext(ctx, `SELECT data FROM locale_en WHERE id = ?`, int64(input.Hash)).Scan(&text)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("locale entry %d not found", input.Hash)
		}
		return nil, errors.Wrapf(err, "failed to load locale entry %d", input.Hash)
	}

	return &GetOutput{Entry: &Entry{Hash: input.Hash, Text: text}}, nil
}
