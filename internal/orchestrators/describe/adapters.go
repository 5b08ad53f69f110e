package describe

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-codex/internal/engine/placeholder"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/icons"
	"github.com/KirkDiggler/rpg-codex/internal/repositories/locale"
	"github.com/KirkDiggler/rpg-codex/internal/repositories/records"
)

// localeResolver adapts the locale repository to the engine's synchronous
// lookup for the lifetime of one request. Lookups are memoized.
type localeResolver struct {
	ctx  context.Context
	repo locale.Repository
	seen map[uint64]string
}

func newLocaleResolver(ctx context.Context, repo locale.Repository) *localeResolver {
	return &localeResolver{ctx: ctx, repo: repo, seen: make(map[uint64]string)}
}

func (r *localeResolver) ResolveLocale(hash uint64) string {
	if text, ok := r.seen[hash]; ok {
		return text
	}

	var text string
	out, err := r.repo.Get(r.ctx, locale.GetInput{Hash: hash})
	switch {
	case err == nil:
		text = out.Entry.Text
	case !errors.IsNotFound(err):
		slog.Warn("Locale lookup failed", "hash", hash, "error", err)
	}

	r.seen[hash] = text
	return text
}

// name returns the localized name, or the internal name when it has no translation
func (r *localeResolver) name(hash uint64, internal string) string {
	if text := r.ResolveLocale(hash); text != "" {
		return text
	}
	return internal
}

// summonResolver names the units a power summons
type summonResolver struct {
	ctx     context.Context
	records records.Repository
	names   *localeResolver
}

func (r *summonResolver) ResolveSummonName(id int64) (string, string, bool) {
	out, err := r.records.GetUnit(r.ctx, records.GetUnitInput{ID: id})
	if err != nil {
		if !errors.IsNotFound(err) {
			slog.Warn("Summon lookup failed", "unit_id", id, "error", err)
		}
		return "", "", false
	}

	return r.names.ResolveLocale(out.Unit.NameID), out.Unit.RealName, true
}

// abilityResolver renders the damage of a power referenced by another power
type abilityResolver struct {
	ctx     context.Context
	records records.Repository
	icons   *icons.Set
}

func (r *abilityResolver) ResolveAbilityDamage(id int64) (string, string, bool) {
	adjustments, err := r.records.ListAdjustments(r.ctx, records.ListAdjustmentsInput{PowerID: id})
	if err != nil {
		slog.Warn("Ability adjustments lookup failed", "power_id", id, "error", err)
		return "", "", false
	}

	info, err := r.records.ListInfo(r.ctx, records.ListInfoInput{PowerID: id})
	if err != nil {
		slog.Warn("Ability info lookup failed", "power_id", id, "error", err)
		return "", "", false
	}

	var damageType string
	if n := len(info.Info); n > 0 {
		damageType = info.Info[n-1].DamageType
	}

	return placeholder.BonusText(adjustments.Adjustments, r.icons, "[", "]"), damageType, true
}
