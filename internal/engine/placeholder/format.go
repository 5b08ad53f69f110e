package placeholder

import (
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-codex/internal/entities"
	"github.com/KirkDiggler/rpg-codex/internal/icons"
)

// a body ending in this suffix addresses the second percent slot
const subSlotSuffix = "1.1"

// FormatNumber renders integral values without a decimal point and everything
// else in the shortest form that round-trips
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BonusText renders the scaling terms of Set and Multiply Add adjustments as
// "x{amount}{icon} + x{amount}{icon}" wrapped in open and close. Adjustments
// with other operators are skipped.
func BonusText(adjustments []entities.AdjustmentRecord, set *icons.Set, open, close string) string {
	terms := make([]string, 0, len(adjustments))
	for _, adj := range adjustments {
		if !adj.Operator.Scales() {
			continue
		}
		terms = append(terms, "x"+FormatNumber(adj.Amount)+set.Stat(adj.Stat))
	}
	return open + strings.Join(terms, " + ") + close
}

// healText is BonusText for heals: every operator scales, and Divide renders
// as a labelled ratio of two stats, e.g. "(Current :health: ÷ Max :health:)"
func healText(adjustments []entities.AdjustmentRecord, set *icons.Set) string {
	terms := make([]string, 0, len(adjustments))
	for _, adj := range adjustments {
		if adj.Operator == entities.OperatorDivide {
			terms = append(terms, "("+set.Stat(adj.Stat+"1")+" ÷ "+divisor(adj, set)+")")
			continue
		}
		terms = append(terms, "x"+FormatNumber(adj.Amount)+set.Stat(adj.Stat))
	}
	return "[" + strings.Join(terms, " + ") + "]"
}

// divisor labels the right side of a Divide ratio. Rows without a divisor
// stat divide by their plain amount.
func divisor(adj entities.AdjustmentRecord, set *icons.Set) string {
	if adj.DivisorStat == "" {
		return FormatNumber(adj.Amount)
	}
	return set.Stat(adj.DivisorStat + "1")
}

// slotSuffix returns the trailing digit of a macro body
func slotSuffix(body string) (int, bool) {
	if body == "" {
		return 0, false
	}
	last := body[len(body)-1]
	if last < '0' || last > '9' {
		return 0, false
	}
	return int(last - '0'), true
}

func slotOr(body string, fallback int) int {
	if n, ok := slotSuffix(body); ok {
		return n
	}
	return fallback
}
