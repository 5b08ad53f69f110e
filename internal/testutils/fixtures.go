package testutils

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-codex/internal/entities"
	"github.com/KirkDiggler/rpg-codex/internal/testutils/builders"
)

// Fixture ids written by SeedCodex
const (
	TestPowerID  int64 = 1001
	TestSummonID int64 = 2001
	TestUnitID   int64 = 2001
	TestTalentID int64 = 3001

	TestPowerName  = "Venom Spit"
	TestUnitName   = "Swamp Crawler"
	TestTalentName = "Hardened Scales"
)

// TestRequiredLevel is the level requirement of the seeded talent's second rank
var TestRequiredLevel = 10

// SeedCodex writes a small consistent data set: a power that summons a unit,
// the unit with a stat curve, and a two-rank talent
func SeedCodex(t *testing.T, db *sql.DB) {
	t.Helper()
	ctx := context.Background()

	duration, percent := 6.0, 25.0

	_, err := builders.NewPowerBuilder(TestPowerID).
		WithName(TestPowerName).
		WithRealName("PWR_VenomSpit").
		WithDescription("Summons $eIcon$for $eDuration1$s.<br>Deals $eDamage1$ damage.").
		WithAdjustment(1, entities.OperatorMultiplyAdd, "Weapon Power", 1.5).
		WithAdjustment(1, entities.OperatorSet, "Level", 10).
		WithInfo(entities.InfoRecord{Type: "Damage", DamageType: "Poison", Duration: &duration, Percent: &percent}).
		WithInfo(entities.InfoRecord{Type: entities.InfoTypeSummon, SummonRef: TestSummonID}).
		Insert(ctx, db)
	require.NoError(t, err, "failed to seed power")

	_, err = builders.NewUnitBuilder(TestUnitID).
		WithName(TestUnitName).
		WithRealName("UNIT_SwampCrawler").
		WithPoint("Max Health", 1, 100).
		WithPoint("Max Health", 11, 200).
		WithBonusPoint("Armor", 1, 5).
		WithBonusPoint("Armor", 5, 5).
		WithModifier("Max Health", entities.OperatorMultiply, 1.5).
		Insert(ctx, db)
	require.NoError(t, err, "failed to seed unit")

	_, err = builders.NewTalentBuilder(TestTalentID).
		WithName(TestTalentName).
		WithRealName("TAL_HardenedScales").
		WithRank(builders.RankSpec{Description: "Gain $eBonus$ $eIcon$."}).
		WithRank(builders.RankSpec{
			Description:   "Gain $ePercent$% $eIcon$.",
			RequiredLevel: &TestRequiredLevel,
			Tooltips:      [][2]string{{"armor.png", "Tougher hide"}},
		}).
		WithStat(1, entities.OperatorAdd, "Armor", 5).
		WithStat(2, entities.OperatorMultiplyAdd, "Armor", 0.1).
		Insert(ctx, db)
	require.NoError(t, err, "failed to seed talent")
}
