package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	mr *miniredis.Miniredis
}

func (s *ClientTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
}

func (s *ClientTestSuite) TestNewClient() {
	s.Run("requires an endpoint", func() {
		_, err := redis.NewClient("", nil)
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("connects with default options", func() {
		client, err := redis.NewClient(s.mr.Addr(), nil)
		s.Require().NoError(err)
		defer func() { _ = client.Close() }()

		s.NoError(redis.Ping(context.Background(), client))
	})

	s.Run("selects a database", func() {
		client, err := redis.NewClient(s.mr.Addr(), &redis.Options{DB: 2})
		s.Require().NoError(err)
		defer func() { _ = client.Close() }()

		s.Require().NoError(client.Set(context.Background(), "k", "v", 0).Err())
		s.mr.Select(2)
		s.True(s.mr.Exists("k"))
	})
}

func (s *ClientTestSuite) TestNewClusterClient() {
	_, err := redis.NewClusterClient(nil, nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestPingUnavailable() {
	client, err := redis.NewClient(s.mr.Addr(), &redis.Options{MaxRetries: -1})
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.mr.Close()

	err = redis.Ping(context.Background(), client)
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}
