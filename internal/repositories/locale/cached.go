package locale

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

// CachedConfig holds the dependencies for a read-through repository
type CachedConfig struct {
	Source Repository
	Cache  Cache
}

// Validate ensures all required dependencies are provided
func (c *CachedConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Source == nil {
		vb.RequiredField("Source")
	}
	if c.Cache == nil {
		vb.RequiredField("Cache")
	}
	return vb.Build()
}

type cachedRepository struct {
	source Repository
	cache  Cache
}

// NewCachedRepository serves reads from cache, falling back to source and
// filling the cache on a miss. Cache failures are logged and never fail a read.
func NewCachedRepository(cfg *CachedConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &cachedRepository{source: cfg.Source, cache: cfg.Cache}, nil
}

func (r *cachedRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	out, err := r.cache.Get(ctx, input)
	if err == nil {
		return out, nil
	}
	if !errors.IsNotFound(err) {
		slog.Warn("Locale cache read failed", "hash", input.Hash, "error", err)
	}

	out, err = r.source.Get(ctx, input)
	if err != nil {
		return nil, err
	}

	if _, err := r.cache.Put(ctx, PutInput{Entries: []Entry{*out.Entry}}); err != nil {
		slog.Warn("Locale cache write failed", "hash", input.Hash, "error", err)
	}

	return out, nil
}
