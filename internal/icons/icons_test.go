package icons_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/icons"
)

type IconsTestSuite struct {
	suite.Suite
	set *icons.Set
}

func TestIconsSuite(t *testing.T) {
	suite.Run(t, new(IconsTestSuite))
}

func (s *IconsTestSuite) SetupTest() {
	s.set = icons.Default()
}

func (s *IconsTestSuite) TestLookups() {
	s.Equal(":dodge:", s.set.Stat("Dodge"))
	s.Equal("", s.set.Stat("Luck"))
	s.Equal("Current :health:", s.set.Stat("Current Health1"))

	token, ok := s.set.StatKey("ARMOR_ICON")
	s.True(ok)
	s.Equal(":armor:", token)

	_, ok = s.set.StatKey("LUCK_ICON")
	s.False(ok)

	token, ok = s.set.Image("Icon_Timer_Med")
	s.True(ok)
	s.Equal(":timer:", token)

	s.Equal(":bleed:", s.set.DamageOverTime("Bleed"))
	s.Equal("", s.set.DamageOverTime("Burn"))
}

func (s *IconsTestSuite) TestDamageType() {
	s.Equal(":physical_damage:/:magical_damage:", s.set.DamageType("Inherit"))
	s.Equal(":magical_damage:", s.set.DamageType("Magical Damage"))
	s.Equal("", s.set.DamageType(""))
}

func (s *IconsTestSuite) TestLoadOverlaysDefaults() {
	path := filepath.Join(s.T().TempDir(), "icons.yaml")
	content := `
stats:
  Dodge: "<:B_:1099490076670570526>"
images:
  Icon_Custom: ":custom:"
requirement_label: "Starfish Bomb"
`
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))

	set, err := icons.Load(path)
	s.Require().NoError(err)

	s.Equal("<:B_:1099490076670570526>", set.Stat("Dodge"))
	s.Equal(":accuracy:", set.Stat("Accuracy"))
	token, ok := set.Image("Icon_Custom")
	s.True(ok)
	s.Equal(":custom:", token)
	s.Equal("Starfish Bomb", set.RequirementLabel)
}

func (s *IconsTestSuite) TestLoadMissingFile() {
	set, err := icons.Load(filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.Require().NoError(err)
	s.Equal(icons.Default(), set)
}

func (s *IconsTestSuite) TestLoadInvalidYAML() {
	path := filepath.Join(s.T().TempDir(), "icons.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("stats: [unclosed"), 0o600))

	_, err := icons.Load(path)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "failed to parse icons")
}

func (s *IconsTestSuite) TestLoadUnreadable() {
	_, err := icons.Load(s.T().TempDir())
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "failed to read icons")
}
