// Package curve computes unit stats at a level from sparse breakpoints and
// applies the unit's stat modifiers
package curve

import (
	"math"

	"github.com/KirkDiggler/rpg-codex/internal/entities"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

// DefaultRoundNearest lists the stats rounded to the nearest integer; every
// other stat is floored
func DefaultRoundNearest() []string {
	return []string{
		"Accuracy",
		"Dodge",
		"Armor",
		"Armor Penetration",
		"Talent Slots",
		"Power Slots",
	}
}

// Config configures an Evaluator
type Config struct {
	RoundNearest []string
}

// Evaluator evaluates stat curves. It is safe for concurrent use.
type Evaluator struct {
	roundNearest map[string]bool
}

// New creates an Evaluator
func New(cfg *Config) (*Evaluator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	roundNearest := make(map[string]bool, len(cfg.RoundNearest))
	for _, stat := range cfg.RoundNearest {
		if stat == "" {
			return nil, errors.InvalidArgument("round-nearest stat names must not be empty")
		}
		roundNearest[stat] = true
	}

	return &Evaluator{roundNearest: roundNearest}, nil
}

// Run is a contiguous sequence of breakpoints for one stat
type Run struct {
	Stat    string
	Segment entities.SegmentType
	Points  []entities.CurveBreakpoint
}

// Runs splits a breakpoint sequence into contiguous same-stat runs, in order.
// A run takes the segment type of its first breakpoint.
func Runs(points []entities.CurveBreakpoint) []Run {
	var runs []Run
	for _, p := range points {
		if n := len(runs); n > 0 && runs[n-1].Stat == p.Stat {
			runs[n-1].Points = append(runs[n-1].Points, p)
			continue
		}
		runs = append(runs, Run{
			Stat:    p.Stat,
			Segment: p.Segment,
			Points:  []entities.CurveBreakpoint{p},
		})
	}
	return runs
}

// Evaluate returns one value per run at level, in run order
func (e *Evaluator) Evaluate(points []entities.CurveBreakpoint, modifiers []entities.ModifierRecord, level int) ([]entities.StatValue, error) {
	runs := Runs(points)
	out := make([]entities.StatValue, 0, len(runs))

	for _, run := range runs {
		raw, err := run.Raw(level)
		if err != nil {
			return nil, err
		}

		final := run.applyModifiers(raw, modifiers)
		out = append(out, entities.StatValue{
			Stat:  run.Stat,
			Raw:   final,
			Value: e.round(run.Stat, final),
		})
	}

	return out, nil
}

// Raw returns the run's value at level before modifiers.
//
// Regular runs interpolate within the first segment whose upper level exceeds
// level and extrapolate from the nearest end segment outside the curve.
// Breakpoints are taken in stored order; only a repeated adjacent level is
// malformed. Bonus
// runs sum every breakpoint at or below level.
func (r Run) Raw(level int) (float64, error) {
	points := r.Points
	switch {
	case len(points) == 0:
		return 0, nil
	case len(points) == 1:
		return points[0].Value, nil
	case r.Segment == entities.SegmentBonus:
		var sum float64
		for _, p := range points {
			if p.Level <= level {
				sum += p.Value
			}
		}
		return sum, nil
	}

	for i := 1; i < len(points); i++ {
		if points[i].Level == points[i-1].Level {
			return 0, errors.MalformedCurvef("%s: adjacent breakpoints share level %d",
				r.Stat, points[i].Level).
				WithMeta("stat", r.Stat)
		}
	}

	lower := len(points) - 2
	for i := 0; i < len(points)-1; i++ {
		if level < points[i+1].Level {
			lower = i
			break
		}
	}

	a, b := points[lower], points[lower+1]
	slope := (b.Value - a.Value) / float64(b.Level-a.Level)
	return a.Value + slope*float64(level-a.Level), nil
}

// applyModifiers composes the modifiers targeting the run's stat in order,
// starting from raw. A zero raw value is never modified. Additive modifiers
// apply once to a bonus run.
func (r Run) applyModifiers(raw float64, modifiers []entities.ModifierRecord) float64 {
	if raw == 0 {
		return raw
	}

	final := raw
	added := false
	for _, m := range modifiers {
		if m.TargetStat != r.Stat {
			continue
		}

		switch m.Operator {
		case entities.OperatorSet:
			final = m.Amount
		case entities.OperatorAdd, entities.OperatorSetAdd:
			if r.Segment == entities.SegmentBonus && added {
				continue
			}
			final += m.Amount
			added = true
		case entities.OperatorMultiply:
			final *= m.Amount
		case entities.OperatorMultiplyAdd:
			final += final * m.Amount
		}
	}
	return final
}

func (e *Evaluator) round(stat string, v float64) int64 {
	if e.roundNearest[stat] {
		return int64(math.Round(v))
	}
	return int64(math.Floor(v))
}
