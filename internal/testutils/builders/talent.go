package builders

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/KirkDiggler/rpg-codex/internal/entities"
)

// RankSpec describes one talent rank for TalentBuilder
type RankSpec struct {
	Description   string
	RequiredLevel *int
	// Tooltips pairs an image with its caption text
	Tooltips [][2]string
}

// TalentBuilder provides a fluent interface for building test talents
type TalentBuilder struct {
	talent entities.Talent
	name   string
	ranks  []RankSpec
	stats  []entities.TalentStatRecord
}

// NewTalentBuilder creates a builder with minimal defaults
func NewTalentBuilder(id int64) *TalentBuilder {
	return &TalentBuilder{
		talent: entities.Talent{ID: id},
		name:   "Test Talent",
	}
}

// WithName sets the localized display name
func (b *TalentBuilder) WithName(name string) *TalentBuilder {
	b.name = name
	return b
}

// WithRealName sets the internal name
func (b *TalentBuilder) WithRealName(name string) *TalentBuilder {
	b.talent.RealName = name
	return b
}

// WithRank appends the next rank
func (b *TalentBuilder) WithRank(rank RankSpec) *TalentBuilder {
	b.ranks = append(b.ranks, rank)
	b.talent.Ranks = len(b.ranks)
	return b
}

// WithStat adds the stat granted at rank
func (b *TalentBuilder) WithStat(rank int, op entities.Operator, stat string, value float64) *TalentBuilder {
	b.stats = append(b.stats, entities.TalentStatRecord{
		TalentID: b.talent.ID,
		Rank:     rank,
		Operator: op,
		Stat:     stat,
		Value:    value,
	})
	return b
}

// Insert writes the talent, its ranks, stats and locale strings to db
func (b *TalentBuilder) Insert(ctx context.Context, db *sql.DB) (*entities.Talent, error) {
	var err error
	if b.talent.NameID, err = InsertLocale(ctx, db, fmt.Sprintf("talent_%d_name", b.talent.ID), b.name); err != nil {
		return nil, err
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO talents (id, name, real_name, ranks) VALUES (?, ?, ?, ?)`,
		b.talent.ID, int64(b.talent.NameID), nullable(b.talent.RealName), b.talent.Ranks)
	if err != nil {
		return nil, err
	}

	for i, r := range b.ranks {
		rank := i + 1
		desc, err := InsertLocale(ctx, db, fmt.Sprintf("talent_%d_rank_%d", b.talent.ID, rank), r.Description)
		if err != nil {
			return nil, err
		}

		var (
			icons    [3]any
			tooltips [3]int64
		)
		for j, tip := range r.Tooltips {
			if j >= len(icons) {
				break
			}
			icons[j] = nullable(tip[0])
			hash, err := InsertLocale(ctx, db, fmt.Sprintf("talent_%d_rank_%d_tip_%d", b.talent.ID, rank, j), tip[1])
			if err != nil {
				return nil, err
			}
			tooltips[j] = int64(hash)
		}

		var requirement any
		if r.RequiredLevel != nil {
			requirement = *r.RequiredLevel
		}

		_, err = db.ExecContext(ctx,
			`INSERT INTO talent_ranks (talent, rank, description, requirement,
				icon_1, icon_2, icon_3, tooltip_1, tooltip_2, tooltip_3)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			b.talent.ID, rank, int64(desc), requirement,
			icons[0], icons[1], icons[2], tooltips[0], tooltips[1], tooltips[2])
		if err != nil {
			return nil, err
		}
	}

	for _, s := range b.stats {
		_, err = db.ExecContext(ctx,
			`INSERT INTO talent_stats (talent, rank, operator, stat, value) VALUES (?, ?, ?, ?, ?)`,
			s.TalentID, s.Rank, s.Operator.String(), s.Stat, s.Value)
		if err != nil {
			return nil, err
		}
	}

	t := b.talent
	return &t, nil
}
