// Package entities holds the game records consumed by the description and curve engines
package entities

// AdjustmentRecord is one scaling term attached to a power.
// Records sharing an Index belong to the same value slot ($eValue1$, $eDamage2$, ...).
type AdjustmentRecord struct {
	OwnerID  int64
	Index    int
	Kind     string
	Operator Operator
	Stat     string
	Amount   float64
	// DivisorStat names the stat a Divide row divides by. The store keeps it
	// in the amount column in place of a number.
	DivisorStat string
}

// InfoRecord is one effect row attached to a power.
// Duration and Percent are nil when the source row carried no value.
type InfoRecord struct {
	OwnerID    int64
	Type       string
	DamageType string
	Duration   *float64
	Stat       string
	SummonRef  int64
	Percent    *float64
}

// Info record types that reference another object through SummonRef
const (
	InfoTypeTrap   = "Trap"
	InfoTypeSummon = "Summon"
)

// DamageTypeDebuff marks an info row whose percent is a penalty
const DamageTypeDebuff = "Debuff"

// DamageTypeInherit means the damage type follows the caster's weapon
const DamageTypeInherit = "Inherit"

// CurveBreakpoint is one (level, value) sample of a stat progression curve
type CurveBreakpoint struct {
	Stat    string
	Segment SegmentType
	Level   int
	Value   float64
}

// ModifierRecord adjusts a computed stat
type ModifierRecord struct {
	TargetStat string
	Operator   Operator
	Amount     float64
}

// StatValue is the evaluated value of one stat at a target level
type StatValue struct {
	Stat string
	// Raw is the curve value after modifiers, before rounding
	Raw   float64
	Value int64
}

// TalentStatRecord is the stat change granted by one talent rank
type TalentStatRecord struct {
	TalentID int64
	Rank     int
	Operator Operator
	Stat     string
	Value    float64
}

// Power is the header row of a power
type Power struct {
	ID            int64
	NameID        uint64
	RealName      string
	Image         string
	DescriptionID uint64
	PvPTag        int
}

// Talent is the header row of a talent
type Talent struct {
	ID       int64
	NameID   uint64
	RealName string
	Image    string
	Ranks    int
}

// TalentRank is one rank of a talent with its description template
type TalentRank struct {
	TalentID      int64
	Rank          int
	DescriptionID uint64
	// RequiredLevel is nil when the rank has no unit level requirement
	RequiredLevel *int
	Tooltips      []Tooltip
}

// Tooltip is an icon and localized caption shown under a talent rank
type Tooltip struct {
	Image  string
	TextID uint64
}

// Unit is the header row of a unit (companion, summon, enemy)
type Unit struct {
	ID       int64
	NameID   uint64
	RealName string
	TitleID  uint64
	CurveID  int64
}
