package placeholder

import (
	"strings"

	"github.com/KirkDiggler/rpg-codex/internal/entities"
	"github.com/KirkDiggler/rpg-codex/internal/icons"
)

const ignoresPrefix = "Ignores"

// icon resolves $eIcon$ from whatever earlier placeholders in the template
// surfaced. The first candidate with data wins; with none the body is kept.
func (st *state) icon(body string) (string, error) {
	if n, ok := slotSuffix(body); ok {
		if ov, found := st.ev.overrides.find(st.data.OwnerID, KindIcon, body, n); found && ov.Stat != "" {
			return st.ev.icons.Stat(ov.Stat), nil
		}
	}

	if strings.HasSuffix(st.before, ignoresPrefix) {
		return st.ev.icons.Stat(icons.StatArmor), nil
	}

	for {
		n := st.iconIndex(body)
		if out, ok := st.iconFromSurfaced(n); ok {
			return out, nil
		}

		// percents were never asked for; surface them and try again
		if !st.percentsSurfaced && len(st.data.Info) > 0 {
			st.surfacePercents()
			continue
		}

		if out, ok := st.iconFromDamageTypes(n - 1); ok {
			return out, nil
		}
		return body, nil
	}
}

// iconIndex is the zero-based info index an $eIcon$ addresses. Without a
// digit it is 1, or 0 once earlier placeholders surfaced stats or percents.
func (st *state) iconIndex(body string) int {
	if _, ok := slotSuffix(body); ok {
		return st.overriddenSlot(KindIcon, body, 0)
	}
	if st.valueStats || st.damageStats || st.percentsSurfaced {
		return 0
	}
	return 1
}

func (st *state) iconFromSurfaced(n int) (string, bool) {
	set := st.ev.icons
	info := st.data.Info

	if len(st.percents) > 0 {
		statIcons := st.percentStatIcons()
		if n >= 0 && n < len(statIcons) {
			return statIcons[n], true
		}
		if n-1 >= 0 && n-1 < len(statIcons) {
			return statIcons[n-1], true
		}
	}

	if len(st.bonuses) > 0 {
		statIcons := st.percentStatIcons()
		if n-1 >= 0 && n-1 < len(statIcons) {
			return statIcons[n-1], true
		}
	}

	if st.valueStats && n >= 0 && n < len(info) {
		return set.Stat(info[n].Stat) + " ", true
	}

	if st.hasAbility {
		return set.DamageType(st.abilityDamageType) + " ", true
	}

	if st.damageStats && !(st.hasTrap() && st.damageIcons > 0) && n >= 0 && n < len(info) {
		st.damageIcons++
		return set.DamageType(info[n].DamageType) + " ", true
	}

	if name, ok := st.summonName(); ok {
		return name, true
	}

	if st.healStats {
		return set.Stat(icons.StatMaxHealth), true
	}

	return "", false
}

// iconFromDamageTypes renders the info damage type at n when no damage stats
// were gathered. An index of -1 addresses the last row.
func (st *state) iconFromDamageTypes(n int) (string, bool) {
	info := st.data.Info
	if st.damageStats || len(info) == 0 {
		return "", false
	}

	present := false
	for _, row := range info {
		if row.DamageType != "" {
			present = true
			break
		}
	}
	if !present {
		return "", false
	}

	if n == -1 {
		n = len(info) - 1
	}
	if n < 0 || n >= len(info) {
		return "", false
	}
	return st.ev.icons.DamageType(info[n].DamageType) + " ", true
}

func (st *state) percentStatIcons() []string {
	var out []string
	for _, row := range st.data.Info {
		if row.Stat != "" && row.Percent != nil {
			out = append(out, st.ev.icons.Stat(row.Stat))
		}
	}
	return out
}

func (st *state) hasTrap() bool {
	for _, row := range st.data.Info {
		if row.Type == entities.InfoTypeTrap {
			return true
		}
	}
	return false
}

// summonName names the object of the last Trap or Summon info row
func (st *state) summonName() (string, bool) {
	var display, internal string
	found := false

	for _, row := range st.data.Info {
		switch row.Type {
		case entities.InfoTypeTrap:
			if st.lookups.Locale == nil {
				continue
			}
			display, internal = st.lookups.Locale.ResolveLocale(uint64(row.SummonRef)), ""
			found = true
		case entities.InfoTypeSummon:
			if st.lookups.Summons == nil {
				continue
			}
			d, i, ok := st.lookups.Summons.ResolveSummonName(row.SummonRef)
			if !ok {
				continue
			}
			display, internal = d, i
			found = true
		}
	}

	if !found {
		return "", false
	}
	if internal != "" {
		return display + " (" + internal + ") ", true
	}
	if strings.HasSuffix(st.before, " ") {
		return display + " ", true
	}
	return " " + display + " ", true
}
