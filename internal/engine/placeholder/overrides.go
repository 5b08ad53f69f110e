package placeholder

import (
	"strings"

	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

// Placeholder kinds an Override may target
const (
	KindDuration = "eDuration"
	KindPercent  = "ePercent"
	KindIcon     = "eIcon"
)

// Override corrects the slot arithmetic for one owner whose stored template
// does not line up with its info rows.
type Override struct {
	OwnerID int64  `yaml:"owner_id"`
	Kind    string `yaml:"kind"`
	// Slot is the suffix digit the override applies to; 0 applies to any digit
	Slot int `yaml:"slot,omitempty"`
	// Body, when set, limits the override to a macro with exactly this body
	Body string `yaml:"body,omitempty"`
	// Remap replaces the slot when non-zero
	Remap int `yaml:"remap,omitempty"`
	// SubSlot makes a body ending in "1.1" select slot 2 before Shift
	SubSlot bool `yaml:"sub_slot,omitempty"`
	// Shift is added to the slot last
	Shift int `yaml:"shift,omitempty"`
	// Stat, when set, renders the icon of this stat instead of evaluating the macro
	Stat string `yaml:"stat,omitempty"`
}

// Overrides is an ordered override table; the first matching entry wins
type Overrides []Override

// DefaultOverrides returns the built-in owner corrections
func DefaultOverrides() Overrides {
	return Overrides{
		// Deadly Shadowdance
		{OwnerID: 1698747, Kind: KindDuration, Slot: 1, Remap: 2},
		{OwnerID: 1698747, Kind: KindPercent, Slot: 1, Remap: 2},
		// Novablast
		{OwnerID: 1291777, Kind: KindIcon, Body: "eIcon1", Stat: "Weapon Power"},
		// Sandstorm
		{OwnerID: 1251094, Kind: KindIcon, SubSlot: true, Shift: -1},
	}
}

// Validate checks every entry names a supported kind and an owner
func (o Overrides) Validate() error {
	vb := errors.NewValidationBuilder()
	for i, ov := range o {
		if ov.OwnerID == 0 {
			vb.Fieldf("overrides", "entry %d: owner_id is required", i)
		}
		switch ov.Kind {
		case KindDuration, KindPercent, KindIcon:
		default:
			vb.Fieldf("overrides", "entry %d: unsupported kind %q", i, ov.Kind)
		}
		if ov.Slot < 0 {
			vb.Fieldf("overrides", "entry %d: slot must not be negative", i)
		}
		if ov.Body != "" && !strings.HasPrefix(ov.Body, ov.Kind) {
			vb.Fieldf("overrides", "entry %d: body %q is not a %s macro", i, ov.Body, ov.Kind)
		}
	}
	return vb.Build()
}

func (o Overrides) find(ownerID int64, kind, body string, slot int) (Override, bool) {
	for _, ov := range o {
		if ov.OwnerID != ownerID || ov.Kind != kind {
			continue
		}
		if ov.Body != "" && ov.Body != body {
			continue
		}
		if ov.Slot != 0 && ov.Slot != slot {
			continue
		}
		return ov, true
	}
	return Override{}, false
}

func (ov Override) apply(body string, slot int) int {
	if ov.SubSlot && strings.HasSuffix(body, subSlotSuffix) {
		slot = 2
	}
	if ov.Remap != 0 {
		slot = ov.Remap
	}
	return slot + ov.Shift
}
