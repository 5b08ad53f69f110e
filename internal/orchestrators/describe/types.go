package describe

import (
	"github.com/KirkDiggler/rpg-codex/internal/entities"
	"github.com/KirkDiggler/rpg-codex/internal/repositories/records"
)

// DescribePowerInput identifies the power to describe
type DescribePowerInput struct {
	PowerID int64
}

// DescribePowerOutput contains the rendered power
type DescribePowerOutput struct {
	Power       *entities.Power
	Name        string
	Description string
	// Faults lists data problems rendered as the missing glyph
	Faults []error
}

// DescribeTalentInput identifies the talent to describe
type DescribeTalentInput struct {
	TalentID int64
}

// DescribeTalentOutput contains the rendered talent
type DescribeTalentOutput struct {
	Talent *entities.Talent
	Name   string
	Ranks  []RankDescription
}

// RankDescription is the rendered text of one talent rank, including its
// tooltip and level requirement lines
type RankDescription struct {
	Rank          int
	Text          string
	RequiredLevel *int
	Faults        []error
}

// EvaluateUnitStatsInput selects a unit and the levels to evaluate it at
type EvaluateUnitStatsInput struct {
	UnitID int64
	Levels []int
}

// EvaluateUnitStatsOutput contains the unit's stats per requested level
type EvaluateUnitStatsOutput struct {
	Unit *entities.Unit
	Name string
	// Levels is in request order
	Levels []LevelStats
	// Modifiers renders the unit's stat modifiers, one line each
	Modifiers []string
}

// LevelStats holds every stat of a unit at one level
type LevelStats struct {
	Level int
	Stats []entities.StatValue
}

// FindIDsInput searches records of one kind by display or internal name
type FindIDsInput struct {
	Kind records.Kind
	Name string
	// Closest matches the nearest display name when no name matches exactly
	Closest bool
}

// FindIDsOutput contains the matching ids and the name they matched
type FindIDsOutput struct {
	IDs  []int64
	Name string
}

// SearchNamesInput lists records of one kind whose display name contains Fragment
type SearchNamesInput struct {
	Kind     records.Kind
	Fragment string
}

// SearchNamesOutput contains the matches ordered by name
type SearchNamesOutput struct {
	Matches []records.NameMatch
}
