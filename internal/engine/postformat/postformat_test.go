package postformat_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-codex/internal/engine/postformat"
)

type PostformatTestSuite struct {
	suite.Suite
}

func TestPostformatSuite(t *testing.T) {
	suite.Run(t, new(PostformatTestSuite))
}

func (s *PostformatTestSuite) TestFormat() {
	testCases := []struct {
		name     string
		input    string
		debuffs  map[int]bool
		expected string
	}{
		{
			name:     "line breaks",
			input:    `First<br>Second\nThird`,
			expected: "First\nSecond\nThird",
		},
		{
			name:     "doubled percent",
			input:    "50%% chance",
			expected: "50% chance",
		},
		{
			name:     "positive sign",
			input:    "#1:%+.05 Dodge",
			expected: "+5 Dodge",
		},
		{
			name:     "negative value keeps its own sign",
			input:    "#2:%+.0-5 Dodge",
			expected: "-5 Dodge",
		},
		{
			name:     "debuffed slot drops the sign",
			input:    "#1:%+.03 Dodge and #2:%+.04 Armor",
			debuffs:  map[int]bool{1: true},
			expected: "3 Dodge and +4 Armor",
		},
		{
			name:     "token at end of text",
			input:    "Gain #3:%+.0",
			expected: "Gain +",
		},
		{
			name:     "repeated tokens",
			input:    "#1:%+.01 #1:%+.0-2",
			expected: "+1 -2",
		},
		{
			name:     "zero decimal tokens removed",
			input:    "#1:%.010 and 20%.0%%",
			expected: "10 and 20%",
		},
		{
			name:     "markup removed",
			input:    `<font color="#FF0000">Bleeds</font> for <b>3</b> :bleed:`,
			expected: "Bleeds for 3 :bleed:",
		},
		{
			name:     "custom emoji kept",
			input:    "<:B_:1099490076670570526> Dodge",
			expected: "<:B_:1099490076670570526> Dodge",
		},
		{
			name:     "animated emoji kept",
			input:    "Deals <a:fire:123456> and <:armor:42> <b>x</b>",
			expected: "Deals <a:fire:123456> and <:armor:42> x",
		},
		{
			name:     "self-closing and attribute tags removed",
			input:    `a<i/>b <img src='Textures/UI/Icon.png'> <a href="x">link</a>`,
			expected: "ab  link",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, postformat.Format(tc.input, tc.debuffs))
		})
	}
}
