package builders

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/KirkDiggler/rpg-codex/internal/entities"
)

// PowerBuilder provides a fluent interface for building test powers
type PowerBuilder struct {
	power       entities.Power
	name        string
	description string
	adjustments []entities.AdjustmentRecord
	info        []entities.InfoRecord
}

// NewPowerBuilder creates a builder with minimal defaults
func NewPowerBuilder(id int64) *PowerBuilder {
	return &PowerBuilder{
		power: entities.Power{ID: id},
		name:  "Test Power",
	}
}

// WithName sets the localized display name
func (b *PowerBuilder) WithName(name string) *PowerBuilder {
	b.name = name
	return b
}

// WithRealName sets the internal name
func (b *PowerBuilder) WithRealName(name string) *PowerBuilder {
	b.power.RealName = name
	return b
}

// WithImage sets the power's image
func (b *PowerBuilder) WithImage(image string) *PowerBuilder {
	b.power.Image = image
	return b
}

// WithDescription sets the description template
func (b *PowerBuilder) WithDescription(template string) *PowerBuilder {
	b.description = template
	return b
}

// WithAdjustment adds a scaling term to value slot index
func (b *PowerBuilder) WithAdjustment(index int, op entities.Operator, stat string, amount float64) *PowerBuilder {
	b.adjustments = append(b.adjustments, entities.AdjustmentRecord{
		OwnerID:  b.power.ID,
		Index:    index,
		Operator: op,
		Stat:     stat,
		Amount:   amount,
	})
	return b
}

// WithDivide adds a Divide term to value slot index rendering stat over divisor
func (b *PowerBuilder) WithDivide(index int, stat, divisor string) *PowerBuilder {
	b.adjustments = append(b.adjustments, entities.AdjustmentRecord{
		OwnerID:     b.power.ID,
		Index:       index,
		Operator:    entities.OperatorDivide,
		Stat:        stat,
		DivisorStat: divisor,
	})
	return b
}

// WithInfo adds an effect row
func (b *PowerBuilder) WithInfo(info entities.InfoRecord) *PowerBuilder {
	info.OwnerID = b.power.ID
	b.info = append(b.info, info)
	return b
}

// Build returns the power and its rows without touching a database
func (b *PowerBuilder) Build() (*entities.Power, []entities.AdjustmentRecord, []entities.InfoRecord) {
	p := b.power
	return &p, b.adjustments, b.info
}

// Insert writes the power, its locale strings and its rows to db
func (b *PowerBuilder) Insert(ctx context.Context, db *sql.DB) (*entities.Power, error) {
	var err error
	if b.power.NameID, err = InsertLocale(ctx, db, fmt.Sprintf("power_%d_name", b.power.ID), b.name); err != nil {
		return nil, err
	}
	if b.power.DescriptionID, err = InsertLocale(ctx, db, fmt.Sprintf("power_%d_desc", b.power.ID), b.description); err != nil {
		return nil, err
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO powers (id, name, real_name, image, description, pvp_tag) VALUES (?, ?, ?, ?, ?, ?)`,
		b.power.ID, int64(b.power.NameID), nullable(b.power.RealName), nullable(b.power.Image),
		int64(b.power.DescriptionID), b.power.PvPTag)
	if err != nil {
		return nil, err
	}

	for _, a := range b.adjustments {
		_, err = db.ExecContext(ctx,
			`INSERT INTO power_adjustments (power, num, type, operator, stat, amount) VALUES (?, ?, ?, ?, ?, ?)`,
			a.OwnerID, a.Index, a.Kind, a.Operator.String(), a.Stat, storedAmount(a))
		if err != nil {
			return nil, err
		}
	}

	for _, i := range b.info {
		_, err = db.ExecContext(ctx,
			`INSERT INTO power_info (power, type, dmg_type, duration, stat, summon, percent) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i.OwnerID, i.Type, i.DamageType, orAbsent(i.Duration), i.Stat, i.SummonRef, orAbsent(i.Percent))
		if err != nil {
			return nil, err
		}
	}

	p := b.power
	return &p, nil
}

// storedAmount puts a divisor stat in the amount column the way the game data does
func storedAmount(a entities.AdjustmentRecord) any {
	if a.DivisorStat != "" {
		return a.DivisorStat
	}
	return a.Amount
}

func orAbsent(v *float64) float64 {
	if v == nil {
		return -1
	}
	return *v
}
