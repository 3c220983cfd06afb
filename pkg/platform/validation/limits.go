package validation

import (
	"fmt"

	dErrors "concursos/pkg/domain-errors"
)

// HTTP body limits
const (
	// MaxBodySize is the maximum allowed request body size (64 KB).
	MaxBodySize = 64 * 1024
)

// Slice element count limits
const (
	// MaxBatchCPFs is the maximum number of CPFs in one batch request.
	MaxBatchCPFs = 20

	// MaxBatchCodes is the maximum number of opening codes in one batch request.
	MaxBatchCodes = 20
)

// String element length limits
const (
	// MaxNationalIDLength bounds raw CPF input, punctuation included.
	MaxNationalIDLength = 32

	// MaxOpeningCodeLength is the maximum length of an opening code.
	MaxOpeningCodeLength = 64

	// MaxMaskInputLength bounds the free-form value accepted by the mask endpoint.
	MaxMaskInputLength = 64
)

// CheckSliceCount validates that a slice does not exceed the maximum count.
func CheckSliceCount(fieldName string, count, max int) error {
	if count > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("too many %s: max %d allowed", fieldName, max))
	}
	return nil
}

// CheckStringLength validates that a string does not exceed the maximum length.
func CheckStringLength(fieldName, value string, max int) error {
	if len(value) > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s exceeds max length of %d", fieldName, max))
	}
	return nil
}

// CheckEachStringLength validates that each string in a slice does not exceed the maximum length.
func CheckEachStringLength(fieldName string, values []string, max int) error {
	for _, v := range values {
		if err := CheckStringLength(fieldName, v, max); err != nil {
			return err
		}
	}
	return nil
}
