package placeholder_test

import (
	"math/rand/v2"
	"strings"

	"github.com/KirkDiggler/rpg-codex/internal/engine/placeholder"
	"github.com/KirkDiggler/rpg-codex/internal/entities"
)

var balancedFragments = []string{
	"$eDuration1$", "$eDuration2$", "$ePercent1$", "$ePercent1.1$", "$eValue1$",
	"$eDamage1$", "$eDamage1eAbility$", "$eHeal$", "$eHeal1$", "$ePulseAmount2$",
	"$eStatValue1$", "$eSpongeAmount$", "$eModifyPercent$", "$eEffectIcon1$",
	"$eBonus1$", "$eTargetStatIcon$", "$eReqIcon$", "$eIcon$", "$eIcon1$",
	"$eIcon2$", "$eIcon1.1$", "$ARMOR_ICON$", "$eMystery$", "$$",
	"Deals ", "Ignores", " damage", "%% ", "<br>", "(", "] ", "",
}

// balancedTemplate joins n fragments; every '$' in the result is paired
func balancedTemplate(r *rand.Rand, n int) string {
	var b strings.Builder
	for range n {
		b.WriteString(balancedFragments[r.IntN(len(balancedFragments))])
	}
	return b.String()
}

func (s *EvaluatorTestSuite) TestBalancedTemplatesSettle() {
	r := rand.New(rand.NewPCG(1, 2))

	datasets := []*placeholder.Data{
		{},
		{
			Adjustments: []entities.AdjustmentRecord{
				{Index: 1, Operator: entities.OperatorSet, Stat: "Weapon Power", Amount: 1.5},
				{Index: 1, Operator: entities.OperatorDivide, Stat: "Current Health", DivisorStat: "Max Health"},
				{Index: 2, Operator: entities.OperatorMultiplyAdd, Stat: "Spell Power", Amount: 0.4},
			},
			Info: []entities.InfoRecord{
				{DamageType: "Physical Damage", Duration: num(3), Stat: "Armor", Percent: num(20)},
				{DamageType: entities.DamageTypeDebuff, Stat: "Dodge", Percent: num(300)},
				{Type: entities.InfoTypeSummon, SummonRef: 42},
			},
		},
		{
			OwnerID: 1251094,
			Info: []entities.InfoRecord{
				{Stat: "Dodge", Percent: num(10)},
				{Stat: "Accuracy", Percent: num(20)},
			},
		},
	}
	lookups := &placeholder.Lookups{Summons: fakeSummons{42: {"Skeleton", "Skeleton_Warrior"}}}

	for i := range 200 {
		template := balancedTemplate(r, 1+r.IntN(12))
		data := datasets[i%len(datasets)]

		result, err := s.ev.Expand(template, data, lookups)
		s.Require().NoError(err, "template %q", template)
		s.NotContains(result.Text, "$", "template %q", template)
	}
}
