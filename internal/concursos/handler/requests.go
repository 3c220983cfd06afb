package handler

import (
	"strings"

	"concursos/internal/concursos/service"
	"concursos/pkg/cpf"
	strutil "concursos/pkg/platform/strings"
	"concursos/pkg/platform/validation"
	structvalidation "concursos/pkg/validation"
)

// HTTP Request DTOs - contain JSON tags for API serialization.
// Emptiness and CPF validity are left to the lookups so that every surface
// reports them with the same status and message.

type OpeningsLookupRequest struct {
	CPF string `json:"cpf"`
}

func (r *OpeningsLookupRequest) Normalize() {
	r.CPF = strings.TrimSpace(r.CPF)
}

func (r *OpeningsLookupRequest) Validate() error {
	return validation.CheckStringLength("cpf", r.CPF, validation.MaxNationalIDLength)
}

type CandidatesLookupRequest struct {
	Code string `json:"code"`
}

func (r *CandidatesLookupRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
}

func (r *CandidatesLookupRequest) Validate() error {
	return validation.CheckStringLength("code", r.Code, validation.MaxOpeningCodeLength)
}

type BatchLookupRequest struct {
	CPFs  []string `json:"cpfs" validate:"max=20,dive,max=32"`
	Codes []string `json:"codes" validate:"max=20,dive,max=64"`
}

// Normalize trims every key and drops repeats. CPFs compare by their digits,
// so "182.845.084-34" and "18284508434" count once. A blank key is kept once
// per list and answered with its validation outcome.
func (r *BatchLookupRequest) Normalize() {
	r.CPFs = strutil.DedupeBy(r.CPFs, cpf.Key)
	r.Codes = strutil.DedupeAndTrim(r.Codes)
}

func (r *BatchLookupRequest) Validate() error {
	return structvalidation.Validate(r)
}

// ToBatchRequest converts the DTO to the service request.
func (r *BatchLookupRequest) ToBatchRequest() service.BatchRequest {
	return service.BatchRequest{CPFs: r.CPFs, Codes: r.Codes}
}

type CPFRequest struct {
	CPF string `json:"cpf"`
}

func (r *CPFRequest) Validate() error {
	return validation.CheckStringLength("cpf", r.CPF, validation.MaxNationalIDLength)
}

type MaskRequest struct {
	Value string `json:"value"`
}

func (r *MaskRequest) Validate() error {
	return validation.CheckStringLength("value", r.Value, validation.MaxMaskInputLength)
}
