// Package records provides read access to the game record store: powers,
// talents, units and the records their descriptions and stats reference
package records

//go:generate mockgen -destination=mock/mock_repository.go -package=recordsmock github.com/KirkDiggler/rpg-codex/internal/repositories/records Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-codex/internal/entities"
)

// Kind names a record table searchable by name
type Kind string

// Searchable kinds
const (
	KindPower  Kind = "power"
	KindTalent Kind = "talent"
	KindUnit   Kind = "unit"
)

// Repository reads game records. Lists are returned in store order, which is
// significant: adjustment, info and breakpoint order drive rendering.
type Repository interface {
	// Powers
	GetPower(ctx context.Context, input GetPowerInput) (*GetPowerOutput, error)
	ListAdjustments(ctx context.Context, input ListAdjustmentsInput) (*ListAdjustmentsOutput, error)
	ListInfo(ctx context.Context, input ListInfoInput) (*ListInfoOutput, error)

	// Units
	GetUnit(ctx context.Context, input GetUnitInput) (*GetUnitOutput, error)
	ListCurvePoints(ctx context.Context, input ListCurvePointsInput) (*ListCurvePointsOutput, error)
	ListModifiers(ctx context.Context, input ListModifiersInput) (*ListModifiersOutput, error)

	// Talents
	GetTalent(ctx context.Context, input GetTalentInput) (*GetTalentOutput, error)
	ListTalentRanks(ctx context.Context, input ListTalentRanksInput) (*ListTalentRanksOutput, error)
	ListTalentStats(ctx context.Context, input ListTalentStatsInput) (*ListTalentStatsOutput, error)

	// FindIDs returns the ids of records whose localized or internal name
	// equals Name, ignoring case. With Closest set and no exact match, the
	// closest localized name is matched instead.
	FindIDs(ctx context.Context, input FindIDsInput) (*FindIDsOutput, error)

	// SearchNames lists records whose localized name contains Fragment
	SearchNames(ctx context.Context, input SearchNamesInput) (*SearchNamesOutput, error)
}

// GetPowerInput identifies a power
type GetPowerInput struct {
	ID int64
}

// GetPowerOutput contains the power header
type GetPowerOutput struct {
	Power *entities.Power
}

// ListAdjustmentsInput identifies the owning power
type ListAdjustmentsInput struct {
	PowerID int64
}

// ListAdjustmentsOutput contains the power's adjustments
type ListAdjustmentsOutput struct {
	Adjustments []entities.AdjustmentRecord
}

// ListInfoInput identifies the owning power
type ListInfoInput struct {
	PowerID int64
}

// ListInfoOutput contains the power's info rows
type ListInfoOutput struct {
	Info []entities.InfoRecord
}

// GetUnitInput identifies a unit
type GetUnitInput struct {
	ID int64
}

// GetUnitOutput contains the unit header
type GetUnitOutput struct {
	Unit *entities.Unit
}

// ListCurvePointsInput identifies a curve
type ListCurvePointsInput struct {
	CurveID int64
}

// ListCurvePointsOutput contains the curve's breakpoints
type ListCurvePointsOutput struct {
	Points []entities.CurveBreakpoint
}

// ListModifiersInput identifies the owning unit
type ListModifiersInput struct {
	UnitID int64
}

// ListModifiersOutput contains the unit's stat modifiers
type ListModifiersOutput struct {
	Modifiers []entities.ModifierRecord
}

// GetTalentInput identifies a talent
type GetTalentInput struct {
	ID int64
}

// GetTalentOutput contains the talent header
type GetTalentOutput struct {
	Talent *entities.Talent
}

// ListTalentRanksInput identifies the owning talent
type ListTalentRanksInput struct {
	TalentID int64
}

// ListTalentRanksOutput contains the talent's ranks in rank order
type ListTalentRanksOutput struct {
	Ranks []entities.TalentRank
}

// ListTalentStatsInput identifies the owning talent
type ListTalentStatsInput struct {
	TalentID int64
}

// ListTalentStatsOutput contains the stats granted per rank
type ListTalentStatsOutput struct {
	Stats []entities.TalentStatRecord
}

// FindIDsInput names the records to find
type FindIDsInput struct {
	Kind Kind
	Name string
	// Closest falls back to the nearest localized name when nothing matches exactly
	Closest bool
}

// FindIDsOutput contains the matching ids in ascending order
type FindIDsOutput struct {
	IDs []int64
	// Name is the name that matched; it differs from the input after a closest match
	Name string
}

// SearchNamesInput holds a case-insensitive name fragment
type SearchNamesInput struct {
	Kind     Kind
	Fragment string
}

// NameMatch is one record found by name
type NameMatch struct {
	ID   int64
	Name string
}

// SearchNamesOutput contains the matches ordered by name, then id
type SearchNamesOutput struct {
	Matches []NameMatch
}
