package placeholder

import (
	"math"
	"strings"

	"github.com/KirkDiggler/rpg-codex/internal/engine/macro"
	"github.com/KirkDiggler/rpg-codex/internal/entities"
)

// ExpandTalent resolves the $name$ macros of a talent rank template against
// the stat granted at that rank. stat may be nil for ranks without one.
func (e *Evaluator) ExpandTalent(template string, stat *entities.TalentStatRecord) (*Result, error) {
	var faults []error

	eval := func(m macro.Macro) (string, error) {
		if token, ok := e.icons.StatKey(m.Body); ok {
			return token, nil
		}

		var apply func(s *entities.TalentStatRecord) string
		switch {
		case strings.Contains(m.Body, "eBonus"):
			apply = func(s *entities.TalentStatRecord) string {
				return FormatNumber(s.Value)
			}
		case strings.Contains(m.Body, KindPercent):
			apply = func(s *entities.TalentStatRecord) string {
				return FormatNumber(math.Trunc(s.Value * 100))
			}
		case strings.Contains(m.Body, KindIcon):
			apply = func(s *entities.TalentStatRecord) string {
				return e.icons.Stat(s.Stat)
			}
		default:
			return m.Body, nil
		}

		if stat == nil {
			return "", missing(m.Body, "rank has no stat")
		}
		return apply(stat), nil
	}

	text, err := e.rewrite(template, eval, &faults)
	if err != nil {
		return nil, err
	}
	return &Result{Text: text, Debuffs: map[int]bool{}, Faults: faults}, nil
}
