package records

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strconv"

	"github.com/KirkDiggler/rpg-codex/internal/entities"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/search"
)

// absent marks a missing duration or percent in power_info
const absent = -1

var searchTables = map[Kind]string{
	KindPower:  "powers",
	KindTalent: "talents",
	KindUnit:   "units",
}

// Config holds the dependencies for the SQLite repository
type Config struct {
	DB *sql.DB
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.DB == nil {
		return errors.InvalidArgument("database is required")
	}
	return nil
}

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a record repository over an open database
func NewSQLiteRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &sqliteRepository{db: cfg.DB}, nil
}

// Ensure sqliteRepository implements Repository
var _ Repository = (*sqliteRepository)(nil)

func (r *sqliteRepository) GetPower(ctx context.Context, input GetPowerInput) (*GetPowerOutput, error) {
	if input.ID == 0 {
		return nil, errors.InvalidArgument("power id is required")
	}

	var (
		p               entities.Power
		name, desc      int64
		realName, image []byte
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, real_name, image, description, pvp_tag FROM powers WHERE id = ?`, input.ID).
		Scan(&p.ID, &name, &realName, &image, &desc, &p.PvPTag)
	if err != nil {
		return nil, notFoundOr(err, "power %d", input.ID)
	}

	p.NameID, p.DescriptionID = uint64(name), uint64(desc)
	p.RealName, p.Image = string(realName), string(image)

	return &GetPowerOutput{Power: &p}, nil
}

func (r *sqliteRepository) ListAdjustments(ctx context.Context, input ListAdjustmentsInput) (*ListAdjustmentsOutput, error) {
	adjustments, err := queryAll(ctx, r.db,
		`SELECT power, num, type, operator, stat, amount FROM power_adjustments WHERE power = ? ORDER BY id`,
		func(rows *sql.Rows) (entities.AdjustmentRecord, error) {
			var (
				a      entities.AdjustmentRecord
				op     string
				amount any
				err    error
			)
			if err = rows.Scan(&a.OwnerID, &a.Index, &a.Kind, &op, &a.Stat, &amount); err != nil {
				return a, err
			}
			if a.Operator, err = parseOperator(op); err != nil {
				return a, err
			}
			return a, scanAmount(&a, amount)
		}, input.PowerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list adjustments for power %d", input.PowerID)
	}

	return &ListAdjustmentsOutput{Adjustments: adjustments}, nil
}

func (r *sqliteRepository) ListInfo(ctx context.Context, input ListInfoInput) (*ListInfoOutput, error) {
	info, err := queryAll(ctx, r.db,
		`SELECT power, type, dmg_type, duration, stat, summon, percent FROM power_info WHERE power = ? ORDER BY id`,
		func(rows *sql.Rows) (entities.InfoRecord, error) {
			var (
				i                 entities.InfoRecord
				duration, percent float64
			)
			err := rows.Scan(&i.OwnerID, &i.Type, &i.DamageType, &duration, &i.Stat, &i.SummonRef, &percent)
			i.Duration, i.Percent = present(duration), present(percent)
			return i, err
		}, input.PowerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list info for power %d", input.PowerID)
	}

	return &ListInfoOutput{Info: info}, nil
}

func (r *sqliteRepository) GetUnit(ctx context.Context, input GetUnitInput) (*GetUnitOutput, error) {
	if input.ID == 0 {
		return nil, errors.InvalidArgument("unit id is required")
	}

	var (
		u           entities.Unit
		name, title int64
		realName    []byte
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, real_name, title, curve FROM units WHERE id = ?`, input.ID).
		Scan(&u.ID, &name, &realName, &title, &u.CurveID)
	if err != nil {
		return nil, notFoundOr(err, "unit %d", input.ID)
	}

	u.NameID, u.TitleID = uint64(name), uint64(title)
	u.RealName = string(realName)

	return &GetUnitOutput{Unit: &u}, nil
}

func (r *sqliteRepository) ListCurvePoints(ctx context.Context, input ListCurvePointsInput) (*ListCurvePointsOutput, error) {
	points, err := queryAll(ctx, r.db,
		`SELECT stat, type, level, value FROM curve_points WHERE curve = ? ORDER BY id`,
		func(rows *sql.Rows) (entities.CurveBreakpoint, error) {
			var (
				p       entities.CurveBreakpoint
				segment string
			)
			if err := rows.Scan(&p.Stat, &segment, &p.Level, &p.Value); err != nil {
				return p, err
			}
			seg, err := entities.ParseSegmentType(segment)
			if err != nil {
				return p, errors.WrapWithCode(err, errors.CodeMalformedCurve, "bad curve segment")
			}
			p.Segment = seg
			return p, nil
		}, input.CurveID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list curve %d", input.CurveID)
	}

	return &ListCurvePointsOutput{Points: points}, nil
}

func (r *sqliteRepository) ListModifiers(ctx context.Context, input ListModifiersInput) (*ListModifiersOutput, error) {
	modifiers, err := queryAll(ctx, r.db,
		`SELECT stat, operator, amount FROM unit_stats WHERE unit = ? ORDER BY id`,
		func(rows *sql.Rows) (entities.ModifierRecord, error) {
			var (
				m   entities.ModifierRecord
				op  string
				err error
			)
			if err = rows.Scan(&m.TargetStat, &op, &m.Amount); err != nil {
				return m, err
			}
			m.Operator, err = parseOperator(op)
			return m, err
		}, input.UnitID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list modifiers for unit %d", input.UnitID)
	}

	return &ListModifiersOutput{Modifiers: modifiers}, nil
}

func (r *sqliteRepository) GetTalent(ctx context.Context, input GetTalentInput) (*GetTalentOutput, error) {
	if input.ID == 0 {
		return nil, errors.InvalidArgument("talent id is required")
	}

	var (
		t               entities.Talent
		name            int64
		realName, image []byte
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, real_name, image, ranks FROM talents WHERE id = ?`, input.ID).
		Scan(&t.ID, &name, &realName, &image, &t.Ranks)
	if err != nil {
		return nil, notFoundOr(err, "talent %d", input.ID)
	}

	t.NameID = uint64(name)
	t.RealName, t.Image = string(realName), string(image)

	return &GetTalentOutput{Talent: &t}, nil
}

func (r *sqliteRepository) ListTalentRanks(ctx context.Context, input ListTalentRanksInput) (*ListTalentRanksOutput, error) {
	ranks, err := queryAll(ctx, r.db,
		`SELECT talent, rank, description, requirement,
			icon_1, icon_2, icon_3, tooltip_1, tooltip_2, tooltip_3
		FROM talent_ranks WHERE talent = ? ORDER BY rank, id`,
		func(rows *sql.Rows) (entities.TalentRank, error) {
			var (
				tr          entities.TalentRank
				desc        int64
				requirement sql.NullInt64
				icons       [3][]byte
				tooltips    [3]int64
			)
			err := rows.Scan(&tr.TalentID, &tr.Rank, &desc, &requirement,
				&icons[0], &icons[1], &icons[2], &tooltips[0], &tooltips[1], &tooltips[2])
			if err != nil {
				return tr, err
			}

			tr.DescriptionID = uint64(desc)
			if requirement.Valid {
				level := int(requirement.Int64)
				tr.RequiredLevel = &level
			}
			for i := range icons {
				if len(icons[i]) == 0 && tooltips[i] == 0 {
					continue
				}
				tr.Tooltips = append(tr.Tooltips, entities.Tooltip{
					Image:  string(icons[i]),
					TextID: uint64(tooltips[i]),
				})
			}
			return tr, nil
		}, input.TalentID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list ranks for talent %d", input.TalentID)
	}

	return &ListTalentRanksOutput{Ranks: ranks}, nil
}

func (r *sqliteRepository) ListTalentStats(ctx context.Context, input ListTalentStatsInput) (*ListTalentStatsOutput, error) {
	stats, err := queryAll(ctx, r.db,
		`SELECT talent, rank, operator, stat, value FROM talent_stats WHERE talent = ? ORDER BY id`,
		func(rows *sql.Rows) (entities.TalentStatRecord, error) {
			var (
				s   entities.TalentStatRecord
				op  string
				err error
			)
			if err = rows.Scan(&s.TalentID, &s.Rank, &op, &s.Stat, &s.Value); err != nil {
				return s, err
			}
			s.Operator, err = parseOperator(op)
			return s, err
		}, input.TalentID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list stats for talent %d", input.TalentID)
	}

	return &ListTalentStatsOutput{Stats: stats}, nil
}

func (r *sqliteRepository) FindIDs(ctx context.Context, input FindIDsInput) (*FindIDsOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	table := searchTable(input.Kind, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	ids, err := r.exactIDs(ctx, table, input.Name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find %s %q", input.Kind, input.Name)
	}
	if len(ids) > 0 || !input.Closest {
		return &FindIDsOutput{IDs: ids, Name: input.Name}, nil
	}

	names, err := queryAll(ctx, r.db,
		`SELECT DISTINCT l.data FROM `+table+` t JOIN locale_en l ON l.id = t.name ORDER BY l.data`,
		func(rows *sql.Rows) (string, error) {
			var name string
			err := rows.Scan(&name)
			return name, err
		})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s names", input.Kind)
	}

	closest, ok := search.Closest(input.Name, names)
	if !ok {
		return &FindIDsOutput{Name: input.Name}, nil
	}

	ids, err = r.exactIDs(ctx, table, closest)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find %s %q", input.Kind, closest)
	}

	return &FindIDsOutput{IDs: ids, Name: closest}, nil
}

// exactIDs matches the localized or internal name of rows in table
func (r *sqliteRepository) exactIDs(ctx context.Context, table, name string) ([]int64, error) {
	// table comes from searchTables, never from input
	query := `SELECT DISTINCT t.id FROM ` + table + ` t
		LEFT JOIN locale_en l ON l.id = t.name
		WHERE l.data = ? COLLATE NOCASE OR CAST(t.real_name AS TEXT) = ? COLLATE NOCASE
		ORDER BY t.id`

	return queryAll(ctx, r.db, query, func(rows *sql.Rows) (int64, error) {
		var id int64
		err := rows.Scan(&id)
		return id, err
	}, name, name)
}

func (r *sqliteRepository) SearchNames(ctx context.Context, input SearchNamesInput) (*SearchNamesOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("fragment", input.Fragment, vb)
	table := searchTable(input.Kind, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	matches, err := queryAll(ctx, r.db,
		`SELECT t.id, l.data FROM `+table+` t
		JOIN locale_en l ON l.id = t.name
		WHERE INSTR(lower(l.data), lower(?)) > 0
		ORDER BY l.data, t.id`,
		func(rows *sql.Rows) (NameMatch, error) {
			var m NameMatch
			err := rows.Scan(&m.ID, &m.Name)
			return m, err
		}, input.Fragment)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search %s names for %q", input.Kind, input.Fragment)
	}

	return &SearchNamesOutput{Matches: matches}, nil
}

// searchTable names the table holding records of kind, recording an
// unsupported kind on vb
func searchTable(kind Kind, vb *errors.ValidationBuilder) string {
	errors.ValidateEnum("kind", string(kind), []string{string(KindPower), string(KindTalent), string(KindUnit)}, vb)
	return searchTables[kind]
}

func queryAll[T any](ctx context.Context, db *sql.DB, query string, scan func(*sql.Rows) (T, error), args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func present(v float64) *float64 {
	if v == absent {
		return nil
	}
	return &v
}

// scanAmount stores a numeric amount, or for Divide rows the name of the
// divisor stat the store keeps in the amount column
func scanAmount(a *entities.AdjustmentRecord, v any) error {
	var text string
	switch amount := v.(type) {
	case float64:
		a.Amount = amount
		return nil
	case int64:
		a.Amount = float64(amount)
		return nil
	case string:
		text = amount
	case []byte:
		text = string(amount)
	default:
		return errors.Internalf("unsupported amount %v in store", v)
	}

	if f, err := strconv.ParseFloat(text, 64); err == nil {
		a.Amount = f
		return nil
	}
	if a.Operator != entities.OperatorDivide {
		return errors.Internalf("non-numeric amount %q for %s adjustment", text, a.Operator)
	}
	a.DivisorStat = text
	return nil
}

func parseOperator(s string) (entities.Operator, error) {
	op, err := entities.ParseOperator(s)
	if err != nil {
		return op, errors.WrapWithCode(err, errors.CodeInternal, "bad operator in store")
	}
	return op, nil
}

func notFoundOr(err error, format string, args ...interface{}) error {
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.NotFoundf(format+" not found", args...)
	}
	return errors.Wrapf(err, "failed to load "+format, args...)
}
