package entities

import "fmt"

// Operator describes how an amount combines with a base value
type Operator int

const (
	OperatorUnknown Operator = iota
	OperatorSet
	OperatorAdd
	OperatorSetAdd
	OperatorMultiply
	OperatorMultiplyAdd
	OperatorDivide
)

var operatorNames = map[Operator]string{
	OperatorSet:         "Set",
	OperatorAdd:         "Add",
	OperatorSetAdd:      "Set Add",
	OperatorMultiply:    "Multiply",
	OperatorMultiplyAdd: "Multiply Add",
	OperatorDivide:      "Divide",
}

// String returns the store's text form of the operator
func (o Operator) String() string {
	if name, ok := operatorNames[o]; ok {
		return name
	}
	return "Unknown"
}

// Scales reports whether an adjustment with this operator contributes a
// scaling term to a rendered value (Set and Multiply Add)
func (o Operator) Scales() bool {
	return o == OperatorSet || o == OperatorMultiplyAdd
}

// ParseOperator converts the store's text form to an Operator
func ParseOperator(s string) (Operator, error) {
	for op, name := range operatorNames {
		if name == s {
			return op, nil
		}
	}
	return OperatorUnknown, fmt.Errorf("unknown operator %q", s)
}

// SegmentType selects how a multi-breakpoint run is evaluated
type SegmentType int

const (
	// SegmentRegular interpolates between breakpoints
	SegmentRegular SegmentType = iota
	// SegmentBonus sums every breakpoint at or below the target level
	SegmentBonus
)

// String returns the store's text form of the segment type
func (t SegmentType) String() string {
	if t == SegmentBonus {
		return "Bonus"
	}
	return "Regular"
}

// ParseSegmentType converts the store's text form to a SegmentType
func ParseSegmentType(s string) (SegmentType, error) {
	switch s {
	case "Regular", "":
		return SegmentRegular, nil
	case "Bonus":
		return SegmentBonus, nil
	default:
		return SegmentRegular, fmt.Errorf("unknown segment type %q", s)
	}
}
