// Package placeholder resolves $name$ macros against a power's adjustment and
// info records.
//
// Macro bodies are matched against an ordered table of keywords by substring
// containment; the first entry that matches handles the macro. Bodies matching
// no keyword are written back without their delimiters.
package placeholder

import (
	"github.com/KirkDiggler/rpg-codex/internal/engine/locale"
	"github.com/KirkDiggler/rpg-codex/internal/engine/macro"
	"github.com/KirkDiggler/rpg-codex/internal/entities"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/icons"
)

const (
	// DefaultMissingGlyph replaces a placeholder whose data is missing
	DefaultMissingGlyph = "?"

	// DefaultMaxPasses bounds the number of macros rewritten in one template
	DefaultMaxPasses = 512
)

// SummonResolver names the unit a Summon info row points at
type SummonResolver interface {
	// ResolveSummonName returns the unit's display name and internal object name
	ResolveSummonName(id int64) (display, internal string, ok bool)
}

// AbilityResolver renders the damage of a nested ability
type AbilityResolver interface {
	// ResolveAbilityDamage returns the bracketed damage text of the ability and
	// the damage type of its last info row
	ResolveAbilityDamage(id int64) (text, damageType string, ok bool)
}

// Config configures an Evaluator
type Config struct {
	Icons     *icons.Set
	Overrides Overrides
	// MissingGlyph replaces placeholders whose data is missing when Strict is false
	MissingGlyph string
	// Strict returns missing data as an error instead of substituting MissingGlyph
	Strict    bool
	MaxPasses int
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Icons == nil {
		vb.RequiredField("Icons")
	}
	if c.MaxPasses <= 0 {
		vb.Field("MaxPasses", "must be positive")
	}
	if err := c.Overrides.Validate(); err != nil {
		vb.Field("Overrides", err.Error())
	}

	return vb.Build()
}

// Data is the record set a power template is evaluated against
type Data struct {
	OwnerID     int64
	Adjustments []entities.AdjustmentRecord
	Info        []entities.InfoRecord
}

// Lookups are the collaborators consulted while evaluating. Any may be nil.
type Lookups struct {
	Locale    locale.Resolver
	Summons   SummonResolver
	Abilities AbilityResolver
}

// Result is an expanded template
type Result struct {
	Text string
	// Debuffs holds the slots whose selected percent was a penalty
	Debuffs map[int]bool
	// Faults lists the placeholders replaced by the missing glyph
	Faults []error
}

// Evaluator expands $name$ macros. It is safe for concurrent use.
type Evaluator struct {
	icons        *icons.Set
	overrides    Overrides
	missingGlyph string
	strict       bool
	maxPasses    int
}

// New creates an Evaluator
func New(cfg *Config) (*Evaluator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid placeholder config")
	}

	return &Evaluator{
		icons:        cfg.Icons,
		overrides:    cfg.Overrides,
		missingGlyph: cfg.MissingGlyph,
		strict:       cfg.Strict,
		maxPasses:    cfg.MaxPasses,
	}, nil
}

// Expand resolves every $name$ macro in template against data
func (e *Evaluator) Expand(template string, data *Data, lookups *Lookups) (*Result, error) {
	if data == nil {
		data = &Data{}
	}
	if lookups == nil {
		lookups = &Lookups{}
	}

	st := &state{
		ev:      e,
		data:    data,
		lookups: lookups,
		debuffs: make(map[int]bool),
	}

	text, err := e.rewrite(template, st.evaluate, &st.faults)
	if err != nil {
		return nil, err
	}

	return &Result{Text: text, Debuffs: st.debuffs, Faults: st.faults}, nil
}

// rewrite runs eval over each $ macro in turn until none remain. Missing data
// becomes the missing glyph and is recorded in faults unless the evaluator is strict.
func (e *Evaluator) rewrite(template string, eval func(m macro.Macro) (string, error), faults *[]error) (string, error) {
	text := template
	for pass := 0; ; pass++ {
		m, ok := macro.Next(text, macro.Placeholder)
		if !ok {
			return text, nil
		}
		if pass >= e.maxPasses {
			return "", errors.FailedPreconditionf("placeholder expansion exceeded %d passes", e.maxPasses)
		}

		out, err := eval(m)
		if err != nil {
			if e.strict || !errors.IsPlaceholderDataMissing(err) {
				return "", err
			}
			*faults = append(*faults, err)
			out = e.missingGlyph
		}

		next := macro.Replace(text, m, out)
		if next == text {
			return "", errors.FailedPreconditionf("placeholder %q resolves to itself", m.Body)
		}
		text = next
	}
}

func missing(body, format string, args ...interface{}) error {
	args = append([]interface{}{body}, args...)
	return errors.PlaceholderDataMissingf("%s: "+format, args...).WithMeta("placeholder", body)
}
