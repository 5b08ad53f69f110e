// Package builders provides fluent builders that write game records to a test database
package builders

import (
	"context"
	"database/sql"

	"github.com/KirkDiggler/rpg-codex/internal/engine/locale"
)

// InsertLocale stores text under the hash of key and returns the hash
func InsertLocale(ctx context.Context, db *sql.DB, key, text string) (uint64, error) {
	hash := locale.Hash(key)
	_, err := db.ExecContext(ctx,
		`INSERT OR REPLACE INTO locale_en (id, data) VALUES (?, ?)`, int64(hash), text)
	return hash, err
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return []byte(s)
}
