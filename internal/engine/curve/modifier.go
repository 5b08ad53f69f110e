package curve

import (
	"math"
	"strconv"

	"github.com/KirkDiggler/rpg-codex/internal/entities"
)

// DescribeModifier renders a modifier as a unit card line, e.g. "x1.5 Dodge"
// or "-3 Armor". Operators without a display form render as "".
func DescribeModifier(m entities.ModifierRecord) string {
	switch m.Operator {
	case entities.OperatorSet:
		return formatAmount(m.Amount) + " " + m.TargetStat
	case entities.OperatorMultiply:
		return "x" + formatAmount(m.Amount) + " " + m.TargetStat
	case entities.OperatorMultiplyAdd:
		return "x" + formatAmount(m.Amount+1) + " " + m.TargetStat
	case entities.OperatorAdd, entities.OperatorSetAdd:
		if m.Amount < 0 {
			return "-" + formatAmount(math.Abs(m.Amount)) + " " + m.TargetStat
		}
		return "+" + formatAmount(m.Amount) + " " + m.TargetStat
	default:
		return ""
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
