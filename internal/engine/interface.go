// Package engine expands power and talent description templates and
// evaluates unit stat curves
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-codex/internal/engine Engine

import (
	"context"
)

// Engine turns fetched game records into display text and stat values.
// Implementations perform no I/O beyond the lookups passed in each input.
type Engine interface {
	// Description templates
	ExpandPower(ctx context.Context, input *ExpandPowerInput) (*ExpandPowerOutput, error)
	ExpandTalentRank(ctx context.Context, input *ExpandTalentRankInput) (*ExpandTalentRankOutput, error)

	// Stat curves
	EvaluateCurve(ctx context.Context, input *EvaluateCurveInput) (*EvaluateCurveOutput, error)
}
