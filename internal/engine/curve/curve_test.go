package curve_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-codex/internal/engine/curve"
	"github.com/KirkDiggler/rpg-codex/internal/entities"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

func regular(stat string, levelValues ...float64) []entities.CurveBreakpoint {
	return breakpoints(stat, entities.SegmentRegular, levelValues...)
}

func bonus(stat string, levelValues ...float64) []entities.CurveBreakpoint {
	return breakpoints(stat, entities.SegmentBonus, levelValues...)
}

func breakpoints(stat string, segment entities.SegmentType, levelValues ...float64) []entities.CurveBreakpoint {
	var out []entities.CurveBreakpoint
	for i := 0; i+1 < len(levelValues); i += 2 {
		out = append(out, entities.CurveBreakpoint{
			Stat:    stat,
			Segment: segment,
			Level:   int(levelValues[i]),
			Value:   levelValues[i+1],
		})
	}
	return out
}

type CurveTestSuite struct {
	suite.Suite
	ev *curve.Evaluator
}

func TestCurveSuite(t *testing.T) {
	suite.Run(t, new(CurveTestSuite))
}

func (s *CurveTestSuite) SetupTest() {
	var err error
	s.ev, err = curve.New(&curve.Config{RoundNearest: curve.DefaultRoundNearest()})
	s.Require().NoError(err)
}

func (s *CurveTestSuite) TestRaw() {
	testCases := []struct {
		name     string
		points   []entities.CurveBreakpoint
		level    int
		expected float64
	}{
		{name: "interpolates", points: regular("Max Health", 1, 10, 10, 100), level: 5, expected: 50},
		{name: "exact lower breakpoint", points: regular("Max Health", 1, 10, 10, 100), level: 1, expected: 10},
		{name: "exact upper breakpoint", points: regular("Max Health", 1, 10, 10, 100), level: 10, expected: 100},
		{name: "extrapolates past the end", points: regular("Max Health", 1, 10, 10, 100), level: 20, expected: 200},
		{name: "extrapolates below the start", points: regular("Max Health", 1, 10, 10, 100), level: 0, expected: 0},
		{
			name:     "interior breakpoint selects the next segment",
			points:   regular("Max Health", 1, 10, 10, 100, 20, 120),
			level:    10,
			expected: 100,
		},
		{
			name:     "second segment",
			points:   regular("Max Health", 1, 10, 10, 100, 20, 120),
			level:    15,
			expected: 110,
		},
		{name: "single breakpoint", points: regular("Speed", 1, 4), level: 50, expected: 4},
		{
			name:     "levels out of order keep stored order",
			points:   regular("Armor", 1, 1, 10, 2, 8, 3),
			level:    6,
			expected: 1 + 5.0/9,
		},
		{
			name:     "descending end segment extrapolates",
			points:   regular("Armor", 1, 1, 10, 2, 8, 3),
			level:    12,
			expected: 1,
		},
		{name: "bonus sums reached breakpoints", points: bonus("Dodge", 1, 5, 10, 5), level: 15, expected: 10},
		{name: "bonus below second breakpoint", points: bonus("Dodge", 1, 5, 10, 5), level: 5, expected: 5},
		{name: "bonus below every breakpoint", points: bonus("Dodge", 3, 5, 10, 5), level: 1, expected: 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			runs := curve.Runs(tc.points)
			s.Require().Len(runs, 1)

			raw, err := runs[0].Raw(tc.level)
			s.Require().NoError(err)
			s.InDelta(tc.expected, raw, 1e-9)
		})
	}
}

func (s *CurveTestSuite) TestMalformedCurve() {
	testCases := []struct {
		name   string
		points []entities.CurveBreakpoint
	}{
		{name: "shared level", points: regular("Armor", 5, 1, 5, 2)},
		{name: "shared level after the first segment", points: regular("Armor", 1, 1, 5, 2, 5, 3)},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.ev.Evaluate(tc.points, nil, 6)
			s.Require().Error(err)
			s.True(errors.IsMalformedCurve(err))
			s.Equal("Armor", errors.GetMeta(err)["stat"])
		})
	}
}

func (s *CurveTestSuite) TestEvaluate() {
	testCases := []struct {
		name      string
		points    []entities.CurveBreakpoint
		modifiers []entities.ModifierRecord
		level     int
		expected  []entities.StatValue
	}{
		{
			name:     "floored without modifiers",
			points:   regular("Max Health", 1, 10, 10, 100),
			level:    5,
			expected: []entities.StatValue{{Stat: "Max Health", Raw: 50, Value: 50}},
		},
		{
			name:      "multiply",
			points:    regular("Max Health", 1, 10, 10, 100),
			modifiers: []entities.ModifierRecord{{TargetStat: "Max Health", Operator: entities.OperatorMultiply, Amount: 2}},
			level:     5,
			expected:  []entities.StatValue{{Stat: "Max Health", Raw: 100, Value: 100}},
		},
		{
			name:      "set overrides raw",
			points:    regular("Max Health", 1, 10, 10, 100),
			modifiers: []entities.ModifierRecord{{TargetStat: "Max Health", Operator: entities.OperatorSet, Amount: 7}},
			level:     5,
			expected:  []entities.StatValue{{Stat: "Max Health", Raw: 7, Value: 7}},
		},
		{
			name:      "multiply add",
			points:    regular("Max Health", 1, 10, 10, 100),
			modifiers: []entities.ModifierRecord{{TargetStat: "Max Health", Operator: entities.OperatorMultiplyAdd, Amount: 0.5}},
			level:     5,
			expected:  []entities.StatValue{{Stat: "Max Health", Raw: 75, Value: 75}},
		},
		{
			name:   "modifiers compose in order",
			points: regular("Max Health", 1, 10, 10, 100),
			modifiers: []entities.ModifierRecord{
				{TargetStat: "Max Health", Operator: entities.OperatorAdd, Amount: 10},
				{TargetStat: "Max Health", Operator: entities.OperatorMultiply, Amount: 2},
				{TargetStat: "Dodge", Operator: entities.OperatorSet, Amount: 1},
			},
			level:    5,
			expected: []entities.StatValue{{Stat: "Max Health", Raw: 120, Value: 120}},
		},
		{
			name:   "regular run adds every additive modifier",
			points: regular("Max Health", 1, 10, 10, 100),
			modifiers: []entities.ModifierRecord{
				{TargetStat: "Max Health", Operator: entities.OperatorAdd, Amount: 3},
				{TargetStat: "Max Health", Operator: entities.OperatorSetAdd, Amount: 3},
			},
			level:    5,
			expected: []entities.StatValue{{Stat: "Max Health", Raw: 56, Value: 56}},
		},
		{
			name:   "bonus run adds once",
			points: bonus("Speed", 1, 5, 10, 5),
			modifiers: []entities.ModifierRecord{
				{TargetStat: "Speed", Operator: entities.OperatorAdd, Amount: 3},
				{TargetStat: "Speed", Operator: entities.OperatorSetAdd, Amount: 3},
			},
			level:    15,
			expected: []entities.StatValue{{Stat: "Speed", Raw: 13, Value: 13}},
		},
		{
			name:      "zero raw is not modified",
			points:    bonus("Speed", 5, 5, 10, 5),
			modifiers: []entities.ModifierRecord{{TargetStat: "Speed", Operator: entities.OperatorSet, Amount: 7}},
			level:     1,
			expected:  []entities.StatValue{{Stat: "Speed", Raw: 0, Value: 0}},
		},
		{
			name:     "round nearest stat",
			points:   regular("Accuracy", 1, 49.6),
			level:    1,
			expected: []entities.StatValue{{Stat: "Accuracy", Raw: 49.6, Value: 50}},
		},
		{
			name:     "unlisted stat floors",
			points:   regular("Speed", 1, 49.6),
			level:    1,
			expected: []entities.StatValue{{Stat: "Speed", Raw: 49.6, Value: 49}},
		},
		{
			name: "one value per run in order",
			points: append(append(
				regular("Max Health", 1, 10, 10, 100),
				bonus("Dodge", 1, 2, 5, 3)...),
				regular("Armor", 1, 7.5)...),
			level: 5,
			expected: []entities.StatValue{
				{Stat: "Max Health", Raw: 50, Value: 50},
				{Stat: "Dodge", Raw: 5, Value: 5},
				{Stat: "Armor", Raw: 7.5, Value: 8},
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := s.ev.Evaluate(tc.points, tc.modifiers, tc.level)
			s.Require().NoError(err)
			if diff := cmp.Diff(tc.expected, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				s.Fail("unexpected stat values (-want +got)", diff)
			}
		})
	}
}

func (s *CurveTestSuite) TestRoundNearestIsConfigurable() {
	ev, err := curve.New(&curve.Config{RoundNearest: []string{"Speed"}})
	s.Require().NoError(err)

	got, err := ev.Evaluate(append(regular("Speed", 1, 49.6), regular("Accuracy", 1, 49.6)...), nil, 1)
	s.Require().NoError(err)
	s.Equal(int64(50), got[0].Value)
	s.Equal(int64(49), got[1].Value)

	_, err = curve.New(&curve.Config{RoundNearest: []string{""}})
	s.Error(err)
}

func (s *CurveTestSuite) TestRuns() {
	points := append(append(regular("Dodge", 1, 1, 5, 2), regular("Armor", 1, 3)...), regular("Dodge", 9, 4)...)

	runs := curve.Runs(points)
	s.Require().Len(runs, 3)
	s.Equal("Dodge", runs[0].Stat)
	s.Len(runs[0].Points, 2)
	s.Equal("Armor", runs[1].Stat)
	s.Equal("Dodge", runs[2].Stat)
	s.Empty(curve.Runs(nil))
}

func (s *CurveTestSuite) TestDescribeModifier() {
	testCases := []struct {
		modifier entities.ModifierRecord
		expected string
	}{
		{modifier: entities.ModifierRecord{TargetStat: "Armor", Operator: entities.OperatorSet, Amount: 12}, expected: "12 Armor"},
		{modifier: entities.ModifierRecord{TargetStat: "Dodge", Operator: entities.OperatorMultiply, Amount: 1.5}, expected: "x1.5 Dodge"},
		{modifier: entities.ModifierRecord{TargetStat: "Will", Operator: entities.OperatorMultiplyAdd, Amount: 0.25}, expected: "x1.25 Will"},
		{modifier: entities.ModifierRecord{TargetStat: "Speed", Operator: entities.OperatorAdd, Amount: 2}, expected: "+2 Speed"},
		{modifier: entities.ModifierRecord{TargetStat: "Speed", Operator: entities.OperatorSetAdd, Amount: -3}, expected: "-3 Speed"},
		{modifier: entities.ModifierRecord{TargetStat: "Speed", Operator: entities.OperatorDivide, Amount: 2}, expected: ""},
	}

	for _, tc := range testCases {
		s.Run(tc.expected, func() {
			s.Equal(tc.expected, curve.DescribeModifier(tc.modifier))
		})
	}
}
