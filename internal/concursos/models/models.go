// Package models holds the catalog entities and the lookup result shape.
package models

import dErrors "concursos/pkg/domain-errors"

// Candidate is a person profile exposing the profession labels they hold.
// NationalID is always the 11 bare CPF digits.
type Candidate struct {
	Name        string
	BirthDate   string // display-formatted, never parsed
	NationalID  string
	Professions []string
}

// Opening is a public hiring process ("concurso") and the vacancy labels it
// offers. Code is an opaque token matched by exact string equality.
type Opening struct {
	IssuingBody  string
	NoticeNumber string
	Code         string
	Vacancies    []string
}

// Status is the outcome of a lookup.
type Status string

const (
	StatusSuccess         Status = "success"
	StatusNoMatches       Status = "no_matches"
	StatusNotFound        Status = "not_found"
	StatusValidationError Status = "validation_error"
)

// Lookup outcome messages.
const (
	MsgInvalidID             = "invalid id"
	MsgCandidateNotFound     = "candidate not found"
	MsgNoCompatibleOpening   = "no compatible opening for these professions"
	MsgCodeRequired          = "code is required"
	MsgOpeningNotFound       = "opening not found"
	MsgNoCompatibleCandidate = "no compatible candidate for this opening"
)

// LookupResult is the value returned by every lookup. Items is never nil.
// Criteria carries the labels the lookup matched against: the candidate's
// professions or the opening's vacancies. It is empty on failure paths.
type LookupResult[T any] struct {
	Items    []T
	Found    bool
	Message  string
	Status   Status
	Criteria []string
}

// IsError reports whether the outcome is a caller error rather than a
// legitimate (possibly empty) answer.
func (r LookupResult[T]) IsError() bool {
	return r.Status == StatusValidationError || r.Status == StatusNotFound
}

// Err maps the status to a domain error. No-match and success outcomes are
// not errors and return nil.
func (r LookupResult[T]) Err() error {
	switch r.Status {
	case StatusValidationError:
		return dErrors.New(dErrors.CodeValidation, r.Message)
	case StatusNotFound:
		return dErrors.New(dErrors.CodeNotFound, r.Message)
	default:
		return nil
	}
}

// Success builds a found result.
func Success[T any](items []T, criteria []string) LookupResult[T] {
	return LookupResult[T]{Items: items, Found: true, Status: StatusSuccess, Criteria: criteria}
}

// Empty builds a not-found-shaped result with the given status and message.
func Empty[T any](status Status, msg string, criteria []string) LookupResult[T] {
	if criteria == nil {
		criteria = []string{}
	}
	return LookupResult[T]{Items: []T{}, Status: status, Message: msg, Criteria: criteria}
}
