// Package describe fetches game records and drives the engines to produce
// power and talent descriptions and unit stat tables
package describe

//go:generate mockgen -destination=mock/mock_service.go -package=describemock github.com/KirkDiggler/rpg-codex/internal/orchestrators/describe Service

import (
	"context"
	"log/slog"
	"path"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-codex/internal/engine"
	"github.com/KirkDiggler/rpg-codex/internal/engine/curve"
	"github.com/KirkDiggler/rpg-codex/internal/entities"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/icons"
	"github.com/KirkDiggler/rpg-codex/internal/repositories/locale"
	"github.com/KirkDiggler/rpg-codex/internal/repositories/records"
)

// DefaultWorkers bounds concurrent curve evaluations when Config.Workers is 0
const DefaultWorkers = 4

// Service defines the interface for describing game records
type Service interface {
	DescribePower(ctx context.Context, input *DescribePowerInput) (*DescribePowerOutput, error)
	DescribeTalent(ctx context.Context, input *DescribeTalentInput) (*DescribeTalentOutput, error)
	EvaluateUnitStats(ctx context.Context, input *EvaluateUnitStatsInput) (*EvaluateUnitStatsOutput, error)

	// FindIDs resolves a name typed by a user to record ids
	FindIDs(ctx context.Context, input *FindIDsInput) (*FindIDsOutput, error)
	SearchNames(ctx context.Context, input *SearchNamesInput) (*SearchNamesOutput, error)
}

// Config holds the dependencies for the describe orchestrator
type Config struct {
	Records records.Repository
	Locale  locale.Repository
	Engine  engine.Engine
	// Icons renders tooltip images and referenced ability damage
	Icons   *icons.Set
	Workers int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Records == nil {
		vb.RequiredField("Records")
	}
	if c.Locale == nil {
		vb.RequiredField("Locale")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Icons == nil {
		vb.RequiredField("Icons")
	}
	if c.Workers < 0 {
		vb.Field("Workers", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	records records.Repository
	locale  locale.Repository
	engine  engine.Engine
	icons   *icons.Set
	workers int
}

// NewOrchestrator creates a new describe orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = DefaultWorkers
	}

	return &orchestrator{
		records: cfg.Records,
		locale:  cfg.Locale,
		engine:  cfg.Engine,
		icons:   cfg.Icons,
		workers: workers,
	}, nil
}

func (o *orchestrator) DescribePower(ctx context.Context, input *DescribePowerInput) (*DescribePowerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PowerID == 0 {
		return nil, errors.InvalidArgument("power id is required")
	}

	powerOut, err := o.records.GetPower(ctx, records.GetPowerInput{ID: input.PowerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get power %d", input.PowerID)
	}
	power := powerOut.Power

	var (
		adjustments []entities.AdjustmentRecord
		info        []entities.InfoRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := o.records.ListAdjustments(gctx, records.ListAdjustmentsInput{PowerID: power.ID})
		if err != nil {
			return err
		}
		adjustments = out.Adjustments
		return nil
	})
	g.Go(func() error {
		out, err := o.records.ListInfo(gctx, records.ListInfoInput{PowerID: power.ID})
		if err != nil {
			return err
		}
		info = out.Info
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "failed to load records for power %d", power.ID)
	}

	names := newLocaleResolver(ctx, o.locale)
	expanded, err := o.engine.ExpandPower(ctx, &engine.ExpandPowerInput{
		Template:    names.ResolveLocale(power.DescriptionID),
		OwnerID:     power.ID,
		Adjustments: adjustments,
		Info:        info,
		Locale:      names,
		Summons:     &summonResolver{ctx: ctx, records: o.records, names: names},
		Abilities:   &abilityResolver{ctx: ctx, records: o.records, icons: o.icons},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to describe power %d", power.ID)
	}

	for _, fault := range expanded.Faults {
		slog.Warn("Power description fault", "power_id", power.ID, "error", fault)
	}
	slog.Info("Power described", "power_id", power.ID, "faults", len(expanded.Faults))

	return &DescribePowerOutput{
		Power:       power,
		Name:        names.name(power.NameID, power.RealName),
		Description: expanded.Text,
		Faults:      expanded.Faults,
	}, nil
}

func (o *orchestrator) DescribeTalent(ctx context.Context, input *DescribeTalentInput) (*DescribeTalentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TalentID == 0 {
		return nil, errors.InvalidArgument("talent id is required")
	}

	talentOut, err := o.records.GetTalent(ctx, records.GetTalentInput{ID: input.TalentID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get talent %d", input.TalentID)
	}
	talent := talentOut.Talent

	var (
		ranks []entities.TalentRank
		stats []entities.TalentStatRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := o.records.ListTalentRanks(gctx, records.ListTalentRanksInput{TalentID: talent.ID})
		if err != nil {
			return err
		}
		ranks = out.Ranks
		return nil
	})
	g.Go(func() error {
		out, err := o.records.ListTalentStats(gctx, records.ListTalentStatsInput{TalentID: talent.ID})
		if err != nil {
			return err
		}
		stats = out.Stats
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "failed to load records for talent %d", talent.ID)
	}

	names := newLocaleResolver(ctx, o.locale)
	descriptions := make([]RankDescription, 0, len(ranks))
	for _, rank := range ranks {
		expanded, err := o.engine.ExpandTalentRank(ctx, &engine.ExpandTalentRankInput{
			Template: names.ResolveLocale(rank.DescriptionID),
			Stat:     statForRank(stats, rank.Rank),
			Locale:   names,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to describe talent %d rank %d", talent.ID, rank.Rank)
		}

		for _, fault := range expanded.Faults {
			slog.Warn("Talent description fault", "talent_id", talent.ID, "rank", rank.Rank, "error", fault)
		}

		var text strings.Builder
		text.WriteString(expanded.Text)
		o.writeTooltips(&text, names, rank.Tooltips)
		if rank.RequiredLevel != nil {
			text.WriteString("\n**Unit Lvl. Req: " + strconv.Itoa(*rank.RequiredLevel) + "**")
		}

		descriptions = append(descriptions, RankDescription{
			Rank:          rank.Rank,
			Text:          text.String(),
			RequiredLevel: rank.RequiredLevel,
			Faults:        expanded.Faults,
		})
	}

	slog.Info("Talent described", "talent_id", talent.ID, "ranks", len(descriptions))

	return &DescribeTalentOutput{
		Talent: talent,
		Name:   names.name(talent.NameID, talent.RealName),
		Ranks:  descriptions,
	}, nil
}

func (o *orchestrator) EvaluateUnitStats(ctx context.Context, input *EvaluateUnitStatsInput) (*EvaluateUnitStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.UnitID == 0 {
		vb.RequiredField("unit_id")
	}
	if len(input.Levels) == 0 {
		vb.Field("levels", "at least one level is required")
	}
	for _, level := range input.Levels {
		if level < 1 {
			vb.Fieldf("levels", "level %d must be at least 1", level)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	unitOut, err := o.records.GetUnit(ctx, records.GetUnitInput{ID: input.UnitID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get unit %d", input.UnitID)
	}
	unit := unitOut.Unit

	var (
		points    []entities.CurveBreakpoint
		modifiers []entities.ModifierRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := o.records.ListCurvePoints(gctx, records.ListCurvePointsInput{CurveID: unit.CurveID})
		if err != nil {
			return err
		}
		points = out.Points
		return nil
	})
	g.Go(func() error {
		out, err := o.records.ListModifiers(gctx, records.ListModifiersInput{UnitID: unit.ID})
		if err != nil {
			return err
		}
		modifiers = out.Modifiers
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "failed to load records for unit %d", unit.ID)
	}

	levels := make([]LevelStats, len(input.Levels))
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, level := range input.Levels {
		g.Go(func() error {
			out, err := o.engine.EvaluateCurve(gctx, &engine.EvaluateCurveInput{
				Points:    points,
				Modifiers: modifiers,
				Level:     level,
			})
			if err != nil {
				return errors.Wrapf(err, "failed to evaluate level %d", level)
			}
			levels[i] = LevelStats{Level: level, Stats: out.Stats}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "failed to evaluate unit %d", unit.ID)
	}

	lines := make([]string, 0, len(modifiers))
	for _, m := range modifiers {
		if line := curve.DescribeModifier(m); line != "" {
			lines = append(lines, line)
		}
	}

	names := newLocaleResolver(ctx, o.locale)

	slog.Info("Unit stats evaluated", "unit_id", unit.ID, "levels", len(levels))

	return &EvaluateUnitStatsOutput{
		Unit:      unit,
		Name:      names.name(unit.NameID, unit.RealName),
		Levels:    levels,
		Modifiers: lines,
	}, nil
}

func (o *orchestrator) FindIDs(ctx context.Context, input *FindIDsInput) (*FindIDsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.records.FindIDs(ctx, records.FindIDsInput{
		Kind:    input.Kind,
		Name:    input.Name,
		Closest: input.Closest,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find %s", input.Kind)
	}

	return &FindIDsOutput{IDs: out.IDs, Name: out.Name}, nil
}

func (o *orchestrator) SearchNames(ctx context.Context, input *SearchNamesInput) (*SearchNamesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.records.SearchNames(ctx, records.SearchNamesInput{Kind: input.Kind, Fragment: input.Fragment})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search %s names", input.Kind)
	}

	return &SearchNamesOutput{Matches: out.Matches}, nil
}

// writeTooltips appends one "{icon} **{caption}**" line per tooltip that has
// an icon or a caption
func (o *orchestrator) writeTooltips(b *strings.Builder, names *localeResolver, tooltips []entities.Tooltip) {
	for _, tip := range tooltips {
		icon := o.imageToken(tip.Image)

		var caption string
		if tip.TextID != 0 {
			caption = strings.ReplaceAll(names.ResolveLocale(tip.TextID), "%%", "%")
		}

		if icon == "" && caption == "" {
			continue
		}
		b.WriteString("\n" + icon + " **" + caption + "**")
	}
}

func (o *orchestrator) imageToken(image string) string {
	if image == "" {
		return ""
	}

	base := path.Base(image)
	if dot := strings.IndexByte(base, '.'); dot >= 0 {
		base = base[:dot]
	}

	token, _ := o.icons.Image(base)
	return token
}

// statForRank returns the first stat granted at rank, or nil
func statForRank(stats []entities.TalentStatRecord, rank int) *entities.TalentStatRecord {
	for i := range stats {
		if stats[i].Rank == rank {
			return &stats[i]
		}
	}
	return nil
}
