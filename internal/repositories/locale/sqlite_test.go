package locale_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	enginelocale "github.com/KirkDiggler/rpg-codex/internal/engine/locale"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/repositories/locale"
	"github.com/KirkDiggler/rpg-codex/internal/testutils"
	"github.com/KirkDiggler/rpg-codex/internal/testutils/builders"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	repo locale.Repository
	ctx  context.Context
	hash uint64
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	db := testutils.CreateTestDB(s.T())

	hash, err := builders.InsertLocale(s.ctx, db, "Bleed", "Bleeding")
	s.Require().NoError(err)
	s.hash = hash

	repo, err := locale.NewSQLiteRepository(&locale.SQLiteConfig{DB: db})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *SQLiteRepositoryTestSuite) TestGet() {
	s.Run("found", func() {
		out, err := s.repo.Get(s.ctx, locale.GetInput{Hash: enginelocale.Hash("Bleed")})
		s.Require().NoError(err)
		s.Equal(&locale.Entry{Hash: s.hash, Text: "Bleeding"}, out.Entry)
	})

	s.Run("not found", func() {
		_, err := s.repo.Get(s.ctx, locale.GetInput{Hash: enginelocale.Hash("Poison")})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
	})
}

func (s *SQLiteRepositoryTestSuite) TestNewSQLiteRepository() {
	_, err := locale.NewSQLiteRepository(&locale.SQLiteConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}
