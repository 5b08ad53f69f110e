package builders

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/KirkDiggler/rpg-codex/internal/entities"
)

// UnitBuilder provides a fluent interface for building test units and their curves
type UnitBuilder struct {
	unit      entities.Unit
	name      string
	points    []entities.CurveBreakpoint
	modifiers []entities.ModifierRecord
}

// NewUnitBuilder creates a builder whose curve id matches the unit id
func NewUnitBuilder(id int64) *UnitBuilder {
	return &UnitBuilder{
		unit: entities.Unit{ID: id, CurveID: id},
		name: "Test Unit",
	}
}

// WithName sets the localized display name
func (b *UnitBuilder) WithName(name string) *UnitBuilder {
	b.name = name
	return b
}

// WithRealName sets the internal name
func (b *UnitBuilder) WithRealName(name string) *UnitBuilder {
	b.unit.RealName = name
	return b
}

// WithPoint adds a regular curve breakpoint
func (b *UnitBuilder) WithPoint(stat string, level int, value float64) *UnitBuilder {
	return b.withPoint(stat, entities.SegmentRegular, level, value)
}

// WithBonusPoint adds a bonus curve breakpoint
func (b *UnitBuilder) WithBonusPoint(stat string, level int, value float64) *UnitBuilder {
	return b.withPoint(stat, entities.SegmentBonus, level, value)
}

func (b *UnitBuilder) withPoint(stat string, seg entities.SegmentType, level int, value float64) *UnitBuilder {
	b.points = append(b.points, entities.CurveBreakpoint{Stat: stat, Segment: seg, Level: level, Value: value})
	return b
}

// WithModifier adds a stat modifier
func (b *UnitBuilder) WithModifier(stat string, op entities.Operator, amount float64) *UnitBuilder {
	b.modifiers = append(b.modifiers, entities.ModifierRecord{TargetStat: stat, Operator: op, Amount: amount})
	return b
}

// Build returns the unit and its rows without touching a database
func (b *UnitBuilder) Build() (*entities.Unit, []entities.CurveBreakpoint, []entities.ModifierRecord) {
	u := b.unit
	return &u, b.points, b.modifiers
}

// Insert writes the unit, its name, curve and modifiers to db
func (b *UnitBuilder) Insert(ctx context.Context, db *sql.DB) (*entities.Unit, error) {
	var err error
	if b.unit.NameID, err = InsertLocale(ctx, db, fmt.Sprintf("unit_%d_name", b.unit.ID), b.name); err != nil {
		return nil, err
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO units (id, name, real_name, title, curve) VALUES (?, ?, ?, ?, ?)`,
		b.unit.ID, int64(b.unit.NameID), nullable(b.unit.RealName), int64(b.unit.TitleID), b.unit.CurveID)
	if err != nil {
		return nil, err
	}

	for _, p := range b.points {
		_, err = db.ExecContext(ctx,
			`INSERT INTO curve_points (curve, stat, type, level, value) VALUES (?, ?, ?, ?, ?)`,
			b.unit.CurveID, p.Stat, p.Segment.String(), p.Level, p.Value)
		if err != nil {
			return nil, err
		}
	}

	for _, m := range b.modifiers {
		_, err = db.ExecContext(ctx,
			`INSERT INTO unit_stats (unit, stat, operator, amount) VALUES (?, ?, ?, ?)`,
			b.unit.ID, m.TargetStat, m.Operator.String(), m.Amount)
		if err != nil {
			return nil, err
		}
	}

	u := b.unit
	return &u, nil
}
