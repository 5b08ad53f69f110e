package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("redis.endpoint", "is required")
	ve.AddFieldError("database.path", "is required")

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal(
		"validation failed: database.path: is required; redis.endpoint: is required",
		ve.Error(),
	)

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("render.missing_glyph", "must not contain $").
		Fieldf("curves.workers", "must be between %d and %d", 1, 64).
		RequiredField("database.path")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "codex.db", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			if tc.shouldErr {
				s.Assert().NotNil(vb.Build())
			} else {
				s.Assert().Nil(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("workers", 0, 1, 64, vb)
	s.Assert().NotNil(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateRange("workers", 8, 1, 64, vb)
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []string{"debug", "info", "warn", "error"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("log_level", "info", allowed, vb)
	s.Assert().Nil(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateEnum("log_level", "verbose", allowed, vb)
	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().Contains(err.Error(), "must be one of: debug, info, warn, error")
}
