package engine

import (
	"github.com/KirkDiggler/rpg-codex/internal/engine/locale"
	"github.com/KirkDiggler/rpg-codex/internal/engine/placeholder"
	"github.com/KirkDiggler/rpg-codex/internal/entities"
)

// ExpandPowerInput contains a power template and the records it references
type ExpandPowerInput struct {
	Template    string
	OwnerID     int64
	Adjustments []entities.AdjustmentRecord
	Info        []entities.InfoRecord

	// Lookups; Locale nil resolves every name to ""
	Locale    locale.Resolver
	Summons   placeholder.SummonResolver
	Abilities placeholder.AbilityResolver
}

// ExpandPowerOutput contains the display text
type ExpandPowerOutput struct {
	Text string
	// Faults lists data problems that were replaced by the missing glyph
	Faults []error
}

// ExpandTalentRankInput contains a talent rank template and its stat
type ExpandTalentRankInput struct {
	Template string
	// Stat is nil for ranks that grant no stat
	Stat   *entities.TalentStatRecord
	Locale locale.Resolver
}

// ExpandTalentRankOutput contains the display text
type ExpandTalentRankOutput struct {
	Text   string
	Faults []error
}

// EvaluateCurveInput contains a unit curve and the level to evaluate it at
type EvaluateCurveInput struct {
	Points    []entities.CurveBreakpoint
	Modifiers []entities.ModifierRecord
	Level     int
}

// EvaluateCurveOutput contains one value per stat run
type EvaluateCurveOutput struct {
	Stats []entities.StatValue
}
