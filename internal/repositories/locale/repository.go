// Package locale provides access to the localized string table, keyed by the
// hash of each string's name
package locale

//go:generate mockgen -destination=mock/mock_repository.go -package=localemock github.com/KirkDiggler/rpg-codex/internal/repositories/locale Cache,Repository

import (
	"context"
)

// Entry is one localized string
type Entry struct {
	Hash uint64
	Text string
}

// GetInput identifies a localized string
type GetInput struct {
	Hash uint64
}

// GetOutput contains the localized string
type GetOutput struct {
	Entry *Entry
}

// PutInput contains entries to cache
type PutInput struct {
	Entries []Entry
}

// PutOutput is returned by Put
type PutOutput struct{}

// Repository reads localized strings. Get returns a NotFound error for unknown hashes.
type Repository interface {
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// Cache is a Repository that can also be filled
type Cache interface {
	Repository
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}
