package validation

import (
	"strings"
	"testing"

	dErrors "concursos/pkg/domain-errors"

	"github.com/stretchr/testify/suite"
)

// LimitsSuite tests the validation helper functions.
//
// Justification: these guard every request body before it reaches a lookup.
// The invariants "max+1 must fail" and "max must pass" are pinned here.
type LimitsSuite struct {
	suite.Suite
}

func TestLimitsSuite(t *testing.T) {
	suite.Run(t, new(LimitsSuite))
}

func (s *LimitsSuite) TestCheckSliceCount() {
	s.Run("passes at and below max", func() {
		s.NoError(CheckSliceCount("cpfs", MaxBatchCPFs, MaxBatchCPFs))
		s.NoError(CheckSliceCount("cpfs", 0, MaxBatchCPFs))
	})

	s.Run("fails when count exceeds max", func() {
		err := CheckSliceCount("cpfs", MaxBatchCPFs+1, MaxBatchCPFs)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal("too many cpfs: max 20 allowed", err.Error())
	})
}

func (s *LimitsSuite) TestCheckStringLength() {
	s.Run("passes at max and for empty strings", func() {
		s.NoError(CheckStringLength("cpf", strings.Repeat("1", MaxNationalIDLength), MaxNationalIDLength))
		s.NoError(CheckStringLength("cpf", "", MaxNationalIDLength))
	})

	s.Run("fails one past max", func() {
		err := CheckStringLength("cpf", strings.Repeat("1", MaxNationalIDLength+1), MaxNationalIDLength)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal("cpf exceeds max length of 32", err.Error())
	})
}

func (s *LimitsSuite) TestCheckEachStringLength() {
	s.Run("passes for nil and in-range slices", func() {
		s.NoError(CheckEachStringLength("code", nil, MaxOpeningCodeLength))
		s.NoError(CheckEachStringLength("code", []string{"61828450843", ""}, MaxOpeningCodeLength))
	})

	s.Run("fails when any element exceeds max", func() {
		values := []string{"61828450843", strings.Repeat("9", MaxOpeningCodeLength+1)}
		err := CheckEachStringLength("code", values, MaxOpeningCodeLength)
		s.Require().Error(err)
		s.Contains(err.Error(), "code exceeds max length of 64")
	})
}
