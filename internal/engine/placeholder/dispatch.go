package placeholder

import (
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-codex/internal/engine/macro"
	"github.com/KirkDiggler/rpg-codex/internal/entities"
)

type handler func(st *state, body string) (string, error)

type kind struct {
	name   string
	match  func(body string) bool
	handle handler
}

func contains(keyword string) func(string) bool {
	return func(body string) bool {
		return strings.Contains(body, keyword)
	}
}

// kinds is the dispatch table in priority order. Containment matching means
// order matters: eDamage with eAbility must precede plain eDamage.
var kinds = []kind{
	{name: KindDuration, match: contains(KindDuration), handle: (*state).duration},
	{name: KindPercent, match: contains(KindPercent), handle: (*state).percent},
	{name: "eValue", match: contains("eValue"), handle: (*state).value},
	{name: "eDamage+eAbility", match: func(body string) bool {
		return strings.Contains(body, "eDamage") && strings.Contains(body, "eAbility")
	}, handle: (*state).abilityDamage},
	{name: "eDamage", match: contains("eDamage"), handle: (*state).damage},
	{name: "eModifyPercent", match: contains("eModifyPercent"), handle: (*state).modifyPercent},
	{name: "eSpongeAmount", match: contains("eSpongeAmount"), handle: (*state).spongeAmount},
	{name: "ePulseAmount", match: contains("ePulseAmount"), handle: (*state).pulseAmount},
	{name: "eEffectIcon", match: contains("eEffectIcon"), handle: (*state).effectIcon},
	{name: "eHeal", match: contains("eHeal"), handle: (*state).heal},
	{name: "eBonus", match: contains("eBonus"), handle: (*state).bonus},
	{name: "eStatValue", match: contains("eStatValue"), handle: (*state).statValue},
	{name: "eTargetStatIcon", match: contains("eTargetStatIcon"), handle: (*state).targetStatIcon},
	{name: "eReqIcon", match: contains("eReqIcon"), handle: (*state).requirementIcon},
	{name: KindIcon, match: contains(KindIcon), handle: (*state).icon},
}

// state is what earlier placeholders in one template leave behind for later ones
type state struct {
	ev      *Evaluator
	data    *Data
	lookups *Lookups
	before  string

	// slot is the last value slot addressed by a digit suffix
	slot    int
	hasSlot bool

	percentsSurfaced bool
	percents         []float64
	bonuses          []float64

	valueStats  bool
	damageStats bool
	healStats   bool

	abilityDamageType string
	hasAbility        bool

	// damageIcons counts damage type icons rendered since the last eDamage
	damageIcons int

	debuffs map[int]bool
	faults  []error
}

func (st *state) evaluate(m macro.Macro) (string, error) {
	st.before = m.Before

	if token, ok := st.ev.icons.StatKey(m.Body); ok {
		return token, nil
	}

	for _, k := range kinds {
		if k.match(m.Body) {
			return k.handle(st, m.Body)
		}
	}
	return m.Body, nil
}

// overriddenSlot returns the body's slot digit after owner overrides, or
// fallback when the body carries no digit
func (st *state) overriddenSlot(kind, body string, fallback int) int {
	n, ok := slotSuffix(body)
	if !ok {
		return fallback
	}
	if ov, found := st.ev.overrides.find(st.data.OwnerID, kind, body, n); found && ov.Stat == "" {
		n = ov.apply(body, n)
	}
	return n
}

func (st *state) valueSlot(body string) int {
	n := slotOr(body, 0)
	st.slot, st.hasSlot = n, true
	return n
}

func (st *state) adjustmentsAt(index int) []entities.AdjustmentRecord {
	var out []entities.AdjustmentRecord
	for _, adj := range st.data.Adjustments {
		if adj.Index == index {
			out = append(out, adj)
		}
	}
	return out
}

func (st *state) percentRows() []entities.InfoRecord {
	var out []entities.InfoRecord
	for _, info := range st.data.Info {
		if info.Percent != nil {
			out = append(out, info)
		}
	}
	return out
}

func (st *state) surfacePercents() {
	rows := st.percentRows()
	st.percents = make([]float64, len(rows))
	for i, row := range rows {
		st.percents[i] = *row.Percent
	}
	st.percentsSurfaced = true
}

func (st *state) duration(body string) (string, error) {
	n := st.overriddenSlot(KindDuration, body, 1)

	var durations []float64
	for _, info := range st.data.Info {
		if info.Duration != nil {
			durations = append(durations, *info.Duration)
		}
	}

	if n < 1 || n > len(durations) {
		return "", missing(body, "no duration at slot %d of %d", n, len(durations))
	}
	return FormatNumber(durations[n-1]), nil
}

func (st *state) percent(body string) (string, error) {
	n := st.overriddenSlot(KindPercent, body, 1)
	if strings.HasSuffix(body, subSlotSuffix) {
		n = 2
	}

	st.surfacePercents()
	rows := st.percentRows()
	if n < 1 || n > len(rows) {
		return "", missing(body, "no percent at slot %d of %d", n, len(rows))
	}

	row := rows[n-1]
	if row.DamageType == entities.DamageTypeDebuff {
		st.debuffs[n] = true
	}
	return FormatNumber(*row.Percent), nil
}

func (st *state) value(body string) (string, error) {
	adjs := st.adjustmentsAt(st.valueSlot(body))
	if len(adjs) > 0 {
		st.valueStats = true
	}
	return BonusText(adjs, st.ev.icons, "(", ")"), nil
}

func (st *state) damage(body string) (string, error) {
	adjs := st.adjustmentsAt(st.valueSlot(body))
	if len(adjs) > 0 {
		st.damageStats = true
	}
	st.damageIcons = 0
	return BonusText(adjs, st.ev.icons, "[", "]"), nil
}

func (st *state) abilityDamage(body string) (string, error) {
	st.valueSlot(body)

	if len(st.data.Info) == 0 {
		return "", missing(body, "no info row references an ability")
	}
	ref := st.data.Info[len(st.data.Info)-1].SummonRef

	if st.lookups.Abilities == nil {
		return "", missing(body, "no ability resolver for %d", ref)
	}
	text, damageType, ok := st.lookups.Abilities.ResolveAbilityDamage(ref)
	if !ok {
		return "", missing(body, "ability %d not found", ref)
	}

	st.abilityDamageType, st.hasAbility = damageType, true
	return text, nil
}

func (st *state) modifyPercent(body string) (string, error) {
	st.surfacePercents()
	if len(st.percents) == 0 {
		return "", missing(body, "no percent to modify")
	}
	return FormatNumber(100 - st.percents[0]), nil
}

func (st *state) spongeAmount(body string) (string, error) {
	if len(st.data.Adjustments) > 0 {
		adj := st.data.Adjustments[0]
		return "(x" + FormatNumber(adj.Amount) + " " + st.ev.icons.Stat(adj.Stat) + ")", nil
	}

	if len(st.data.Info) == 0 {
		return "", missing(body, "no adjustment or info rows")
	}
	raw := strings.TrimSpace(st.data.Info[0].Stat)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", missing(body, "info stat %q is not numeric", raw)
	}
	return FormatNumber(math.RoundToEven(v)), nil
}

func (st *state) pulseAmount(body string) (string, error) {
	adjs := st.adjustmentsAt(st.valueSlot(body))
	if len(adjs) > 0 {
		st.damageStats = true
	}
	return BonusText(adjs, st.ev.icons, "[", "]"), nil
}

func (st *state) effectIcon(body string) (string, error) {
	n := 0
	if digit, ok := slotSuffix(body); ok {
		n = digit
		st.slot, st.hasSlot = n, true
	} else if st.hasSlot {
		n = st.slot
	}

	if n >= len(st.data.Info) {
		return "", nil
	}
	return st.ev.icons.DamageOverTime(st.data.Info[n].DamageType), nil
}

func (st *state) heal(body string) (string, error) {
	adjs := st.adjustmentsAt(st.valueSlot(body))
	if len(adjs) > 0 {
		st.healStats = true
	}
	return healText(adjs, st.ev.icons), nil
}

func (st *state) bonus(body string) (string, error) {
	n := slotOr(body, 1)

	rows := st.percentRows()
	st.bonuses = make([]float64, len(rows))
	for i, row := range rows {
		st.bonuses[i] = math.Floor(*row.Percent / 100)
	}

	if n < 1 || n > len(rows) {
		return "", missing(body, "no bonus at slot %d of %d", n, len(rows))
	}
	if rows[n-1].DamageType == entities.DamageTypeDebuff {
		st.debuffs[n] = true
	}
	return FormatNumber(st.bonuses[n-1]), nil
}

func (st *state) statValue(body string) (string, error) {
	adjs := st.adjustmentsAt(st.valueSlot(body))
	if len(adjs) > 0 {
		st.damageStats = true
	}
	return BonusText(adjs, st.ev.icons, "(", ")"), nil
}

func (st *state) targetStatIcon(body string) (string, error) {
	n := st.slot
	if n >= len(st.data.Info) {
		return "", missing(body, "no info row at slot %d", n)
	}
	return st.ev.icons.Stat(st.data.Info[n].Stat), nil
}

func (st *state) requirementIcon(string) (string, error) {
	return st.ev.icons.RequirementLabel, nil
}
