package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-codex/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "power not found",
			expected: "NOT_FOUND: power not found",
		},
		{
			name:     "placeholder data missing",
			code:     errors.CodePlaceholderDataMissing,
			message:  "eDuration2 has no duration at slot 2",
			expected: "PLACEHOLDER_DATA_MISSING: eDuration2 has no duration at slot 2",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.MalformedCurvef("curve %d", 7).
		WithMeta("curve_id", 7).
		WithMeta("stat", "Accuracy")

	s.Assert().Equal(7, err.Meta["curve_id"])
	s.Assert().Equal("Accuracy", err.Meta["stat"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("database is locked")
	wrapped := errors.Wrap(baseErr, "failed to list power info")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to list power info", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("record not found")
	wrapped := errors.Wrap(baseErr, "power not found")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("power not found", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.NotFound("no breakpoints").WithMeta("curve_id", 3)
	wrapped := errors.WrapWithCode(baseErr, errors.CodeMalformedCurve, "curve is empty")

	s.Assert().Equal(errors.CodeMalformedCurve, wrapped.Code)
	s.Assert().Equal("curve is empty", wrapped.Message)
	s.Assert().Equal(3, wrapped.Meta["curve_id"])
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFound", func() *errors.Error { return errors.NotFound("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"Internal", func() *errors.Error { return errors.Internal("test") }, errors.CodeInternal},
		{"FailedPrecondition", func() *errors.Error { return errors.FailedPreconditionf("test") }, errors.CodeFailedPrecondition},
		{"PlaceholderDataMissing", func() *errors.Error { return errors.PlaceholderDataMissingf("test") }, errors.CodePlaceholderDataMissing},
		{"MalformedCurve", func() *errors.Error { return errors.MalformedCurvef("test") }, errors.CodeMalformedCurve},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.MalformedCurvef("a")
	err2 := errors.MalformedCurvef("b")
	err3 := errors.PlaceholderDataMissingf("a")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	missing := errors.PlaceholderDataMissingf("eBonus3")
	malformed := errors.MalformedCurvef("curve 1")
	wrapped := errors.Wrap(malformed, "failed to evaluate unit")

	s.Assert().True(errors.IsPlaceholderDataMissing(missing))
	s.Assert().False(errors.IsPlaceholderDataMissing(malformed))
	s.Assert().True(errors.IsMalformedCurve(wrapped))
	s.Assert().True(errors.GetCode(missing).IsDataFault())
	s.Assert().True(errors.GetCode(wrapped).IsDataFault())
	s.Assert().False(errors.CodeNotFound.IsDataFault())
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMeta() {
	err := errors.NotFound("test").WithMeta("key", "value")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal("value", errors.GetMeta(err)["key"])
	s.Assert().Equal("value", errors.GetMeta(wrapped)["key"])
	s.Assert().Nil(errors.GetMeta(fmt.Errorf("standard error")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.NotFound("user friendly message")
	wrapped := errors.Wrap(err, "wrapped message")
	stdErr := fmt.Errorf("standard error")

	s.Assert().Equal("user friendly message", errors.GetMessage(err))
	s.Assert().Equal("wrapped message", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(stdErr))
}

