package handler

import (
	"concursos/internal/concursos/models"
	"concursos/internal/concursos/service"
	"concursos/pkg/cpf"
	dErrors "concursos/pkg/domain-errors"
	"concursos/pkg/platform/httputil"
	"concursos/pkg/textmatch"
)

type OpeningResponse struct {
	IssuingBody      string   `json:"issuing_body"`
	NoticeNumber     string   `json:"notice_number"`
	Code             string   `json:"code"`
	Vacancies        []string `json:"vacancies"`
	MatchedVacancies []string `json:"matched_vacancies"`
}

type CandidateResponse struct {
	Name               string   `json:"name"`
	BirthDate          string   `json:"birth_date"`
	CPF                string   `json:"cpf"`
	Professions        []string `json:"professions"`
	MatchedProfessions []string `json:"matched_professions"`
}

// OpeningsResponse answers a lookup by CPF. Professions are the candidate's
// labels the openings were matched against.
type OpeningsResponse struct {
	Status      models.Status     `json:"status"`
	Found       bool              `json:"found"`
	Message     string            `json:"message,omitempty"`
	Professions []string          `json:"professions"`
	Openings    []OpeningResponse `json:"openings"`
}

// CandidatesResponse answers a lookup by opening code. Vacancies are the
// opening's labels the candidates were matched against.
type CandidatesResponse struct {
	Status     models.Status       `json:"status"`
	Found      bool                `json:"found"`
	Message    string              `json:"message,omitempty"`
	Vacancies  []string            `json:"vacancies"`
	Candidates []CandidateResponse `json:"candidates"`
}

type BatchOpeningsEntry struct {
	CPF   string                  `json:"cpf"`
	Error *httputil.ErrorResponse `json:"error,omitempty"`
	OpeningsResponse
}

type BatchCandidatesEntry struct {
	Code  string                  `json:"code"`
	Error *httputil.ErrorResponse `json:"error,omitempty"`
	CandidatesResponse
}

type BatchResponse struct {
	Openings   []BatchOpeningsEntry   `json:"openings"`
	Candidates []BatchCandidatesEntry `json:"candidates"`
}

type CPFValidationResponse struct {
	Clean         string `json:"clean"`
	Formatted     string `json:"formatted"`
	Valid         bool   `json:"valid"`
	ChecksumValid bool   `json:"checksum_valid"`
}

type MaskResponse struct {
	Masked string `json:"masked"`
}

// Response mapping functions - convert domain objects to HTTP DTOs.
// They are exported so the CLI prints the same JSON shapes.

func NewOpeningsResponse(res models.LookupResult[models.Opening]) OpeningsResponse {
	openings := make([]OpeningResponse, 0, len(res.Items))
	for _, o := range res.Items {
		openings = append(openings, OpeningResponse{
			IssuingBody:      o.IssuingBody,
			NoticeNumber:     o.NoticeNumber,
			Code:             o.Code,
			Vacancies:        o.Vacancies,
			MatchedVacancies: textmatch.Intersection(o.Vacancies, res.Criteria),
		})
	}
	return OpeningsResponse{
		Status:      res.Status,
		Found:       res.Found,
		Message:     res.Message,
		Professions: nonNil(res.Criteria),
		Openings:    openings,
	}
}

func NewCandidatesResponse(res models.LookupResult[models.Candidate]) CandidatesResponse {
	candidates := make([]CandidateResponse, 0, len(res.Items))
	for _, c := range res.Items {
		candidates = append(candidates, CandidateResponse{
			Name:               c.Name,
			BirthDate:          c.BirthDate,
			CPF:                cpf.Format(c.NationalID),
			Professions:        c.Professions,
			MatchedProfessions: textmatch.Intersection(c.Professions, res.Criteria),
		})
	}
	return CandidatesResponse{
		Status:     res.Status,
		Found:      res.Found,
		Message:    res.Message,
		Vacancies:  nonNil(res.Criteria),
		Candidates: candidates,
	}
}

func NewBatchResponse(res *service.BatchResult) BatchResponse {
	out := BatchResponse{
		Openings:   make([]BatchOpeningsEntry, 0, len(res.Openings)),
		Candidates: make([]BatchCandidatesEntry, 0, len(res.Candidates)),
	}
	for _, o := range res.Openings {
		out.Openings = append(out.Openings, BatchOpeningsEntry{
			CPF:              o.CPF,
			Error:            toErrorResponse(o.Err),
			OpeningsResponse: NewOpeningsResponse(o.Result),
		})
	}
	for _, c := range res.Candidates {
		out.Candidates = append(out.Candidates, BatchCandidatesEntry{
			Code:               c.Code,
			Error:              toErrorResponse(c.Err),
			CandidatesResponse: NewCandidatesResponse(c.Result),
		})
	}
	return out
}

func toErrorResponse(err error) *httputil.ErrorResponse {
	if err == nil {
		return nil
	}
	return &httputil.ErrorResponse{
		Error:            httputil.DomainCodeToHTTPCode(dErrors.CodeOf(err)),
		ErrorDescription: err.Error(),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
