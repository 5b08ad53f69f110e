package engine

import (
	"context"

	"github.com/KirkDiggler/rpg-codex/internal/engine/curve"
	"github.com/KirkDiggler/rpg-codex/internal/engine/locale"
	"github.com/KirkDiggler/rpg-codex/internal/engine/placeholder"
	"github.com/KirkDiggler/rpg-codex/internal/engine/postformat"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/icons"
)

// Config holds the engine's tables and render options
type Config struct {
	Icons        *icons.Set
	Overrides    placeholder.Overrides
	MissingGlyph string
	// Strict fails a render on missing data instead of substituting MissingGlyph
	Strict       bool
	MaxPasses    int
	RoundNearest []string
}

// Validate ensures the config is usable
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Icons == nil {
		vb.RequiredField("Icons")
	}
	if cfg.MaxPasses <= 0 {
		vb.Field("MaxPasses", "must be positive")
	}

	return vb.Build()
}

type engine struct {
	icons        *icons.Set
	placeholders *placeholder.Evaluator
	curves       *curve.Evaluator
	strict       bool
	maxPasses    int
}

// New creates an Engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	placeholders, err := placeholder.New(&placeholder.Config{
		Icons:        cfg.Icons,
		Overrides:    cfg.Overrides,
		MissingGlyph: cfg.MissingGlyph,
		Strict:       cfg.Strict,
		MaxPasses:    cfg.MaxPasses,
	})
	if err != nil {
		return nil, err
	}

	curves, err := curve.New(&curve.Config{RoundNearest: cfg.RoundNearest})
	if err != nil {
		return nil, err
	}

	return &engine{
		icons:        cfg.Icons,
		placeholders: placeholders,
		curves:       curves,
		strict:       cfg.Strict,
		maxPasses:    cfg.MaxPasses,
	}, nil
}

func (e *engine) ExpandPower(ctx context.Context, input *ExpandPowerInput) (*ExpandPowerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, faults, err := e.expandLocale(input.Template, input.Locale)
	if err != nil {
		return nil, err
	}

	result, err := e.placeholders.Expand(text, &placeholder.Data{
		OwnerID:     input.OwnerID,
		Adjustments: input.Adjustments,
		Info:        input.Info,
	}, &placeholder.Lookups{
		Locale:    input.Locale,
		Summons:   input.Summons,
		Abilities: input.Abilities,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to expand power %d", input.OwnerID)
	}

	return &ExpandPowerOutput{
		Text:   postformat.Format(result.Text, result.Debuffs),
		Faults: append(faults, result.Faults...),
	}, nil
}

func (e *engine) ExpandTalentRank(ctx context.Context, input *ExpandTalentRankInput) (*ExpandTalentRankOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, faults, err := e.expandLocale(input.Template, input.Locale)
	if err != nil {
		return nil, err
	}

	result, err := e.placeholders.ExpandTalent(text, input.Stat)
	if err != nil {
		return nil, errors.Wrap(err, "failed to expand talent rank")
	}

	return &ExpandTalentRankOutput{
		Text:   postformat.Format(result.Text, result.Debuffs),
		Faults: append(faults, result.Faults...),
	}, nil
}

func (e *engine) EvaluateCurve(ctx context.Context, input *EvaluateCurveInput) (*EvaluateCurveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats, err := e.curves.Evaluate(input.Points, input.Modifiers, input.Level)
	if err != nil {
		return nil, err
	}

	return &EvaluateCurveOutput{Stats: stats}, nil
}

// expandLocale resolves &name& macros. A runaway expansion is a fault in
// lenient mode and the partially expanded text is kept.
func (e *engine) expandLocale(template string, resolver locale.Resolver) (string, []error, error) {
	if resolver == nil {
		resolver = locale.Table{}
	}

	text, err := locale.Expand(template, resolver, e.icons, e.maxPasses)
	if err == nil {
		return text, nil, nil
	}
	if e.strict {
		return "", nil, err
	}
	return text, []error{err}, nil
}
