package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/paladin/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("store", "is required")
	ve.AddFieldErrorf("difficulty", "must be at most %d", 5)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "store: is required")
	s.Assert().Contains(ve.Error(), "difficulty: must be at most 5")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("Terminal").
		InvalidField("Budget", "must be positive")

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "Terminal: is required")
	s.Assert().Contains(err.Error(), "Budget: is invalid: must be positive")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.Assert().NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateHelpers() {
	testCases := []struct {
		name    string
		apply   func(vb *errors.ValidationBuilder)
		wantErr bool
	}{
		{
			name:    "blank required value",
			apply:   func(vb *errors.ValidationBuilder) { errors.ValidateRequired("entity_dir", "  ", vb) },
			wantErr: true,
		},
		{
			name:    "present required value",
			apply:   func(vb *errors.ValidationBuilder) { errors.ValidateRequired("entity_dir", "./entities", vb) },
			wantErr: false,
		},
		{
			name:    "value above range",
			apply:   func(vb *errors.ValidationBuilder) { errors.ValidateRange("difficulty", 6, 0, 5, vb) },
			wantErr: true,
		},
		{
			name:    "value inside range",
			apply:   func(vb *errors.ValidationBuilder) { errors.ValidateRange("difficulty", 5, 0, 5, vb) },
			wantErr: false,
		},
		{
			name:    "unknown enum value",
			apply:   func(vb *errors.ValidationBuilder) { errors.ValidateEnum("store", "s3", []string{"file", "redis"}, vb) },
			wantErr: true,
		},
		{
			name: "known enum value",
			apply: func(vb *errors.ValidationBuilder) {
				errors.ValidateEnum("store", "redis", []string{"file", "redis"}, vb)
			},
			wantErr: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.apply(vb)
			if tc.wantErr {
				s.Assert().Error(vb.Build())
			} else {
				s.Assert().NoError(vb.Build())
			}
		})
	}
}
