package locale_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-codex/internal/engine/locale"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/icons"
)

type ResolverTestSuite struct {
	suite.Suite
	icons *icons.Set
	table locale.Table
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	s.icons = icons.Default()
	s.table = locale.Table{
		locale.Hash("Bleed"):  "Bleed",
		locale.Hash("Timer"):  "<img src='Textures/UI/Icon_Timer_Med.png'>",
		locale.Hash("Rounds"): "&Timer& rounds",
		locale.Hash("Odd"):    `<img src="Textures/UI/Icon_Unknown.png">`,
		locale.Hash("Loop"):   "&Loop&",
	}
}

func (s *ResolverTestSuite) TestHash() {
	s.Equal(uint64(4677058060668544109), locale.Hash("Bleed"))
	s.Equal(uint64(4050636162517881016), locale.Hash("Poison"))
	s.Equal(uint64(7347990519673328018), locale.Hash(""))
	s.Less(locale.Hash("Timer"), uint64(1)<<63)
}

func (s *ResolverTestSuite) TestExpand() {
	testCases := []struct {
		name     string
		template string
		expected string
	}{
		{
			name:     "plain text",
			template: "Applies &Bleed& to the target",
			expected: "Applies Bleed to the target",
		},
		{
			name:     "repeated macro",
			template: "&Bleed& and &Bleed&",
			expected: "Bleed and Bleed",
		},
		{
			name:     "image reference becomes icon",
			template: "Lasts 2 &Timer&",
			expected: "Lasts 2 :timer:",
		},
		{
			name:     "nested macros",
			template: "For 3 &Rounds&",
			expected: "For 3 :timer: rounds",
		},
		{
			name:     "unknown image keeps markup",
			template: "&Odd&",
			expected: `<img src="Textures/UI/Icon_Unknown.png">`,
		},
		{
			name:     "unknown name is removed",
			template: "a &Missing& b",
			expected: "a  b",
		},
		{
			name:     "unpaired delimiter is kept",
			template: "Tom & Jerry",
			expected: "Tom & Jerry",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := locale.Expand(tc.template, s.table, s.icons, 512)
			s.Require().NoError(err)
			s.Equal(tc.expected, out)
		})
	}
}

func (s *ResolverTestSuite) TestExpandSelfReference() {
	out, err := locale.Expand("x &Loop& y", s.table, s.icons, 512)
	s.Require().Error(err)
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
	s.Equal("x &Loop& y", out)
}

func (s *ResolverTestSuite) TestExpandPassLimit() {
	_, err := locale.Expand("&Bleed& &Rounds&", s.table, s.icons, 1)
	s.Require().Error(err)
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
}

func (s *ResolverTestSuite) TestResolverFunc() {
	var calls int
	resolver := locale.ResolverFunc(func(hash uint64) string {
		calls++
		if hash == locale.Hash("Bleed") {
			return "Bleed"
		}
		return ""
	})

	out, err := locale.Expand("&Bleed&", resolver, s.icons, 512)
	s.Require().NoError(err)
	s.Equal("Bleed", out)
	s.Equal(1, calls)
}

func (s *ResolverTestSuite) TestBalancedTemplatesSettle() {
	fragments := []string{"&Bleed&", "&Timer&", "&Rounds&", "&Odd&", "&Unknown&", "&&", "Lasts ", " for ", "5", ""}
	r := rand.New(rand.NewPCG(3, 4))

	for range 200 {
		var b strings.Builder
		for range 1 + r.IntN(10) {
			b.WriteString(fragments[r.IntN(len(fragments))])
		}
		template := b.String()

		got, err := locale.Expand(template, s.table, s.icons, 64)
		s.Require().NoError(err, "template %q", template)
		s.NotContains(got, "&", "template %q", template)
	}
}
