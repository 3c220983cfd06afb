// Package catalog holds the read-only candidate and opening collections the
// lookup service queries. A Catalog is built once at startup and never
// mutated afterwards, so it is safe for concurrent readers without locks.
package catalog

import (
	"fmt"
	"slices"

	"concursos/internal/concursos/models"
	"concursos/pkg/cpf"
	dErrors "concursos/pkg/domain-errors"
)

// Catalog is an immutable, ordered set of candidates and openings.
type Catalog struct {
	candidates []models.Candidate
	openings   []models.Opening

	byNationalID map[string]int
	byCode       map[string]int // first opening in seed order wins
}

// Stats summarizes catalog contents for readiness checks and logs.
type Stats struct {
	Candidates     int `json:"candidates"`
	Openings       int `json:"openings"`
	DuplicateCodes int `json:"duplicate_codes"`
}

// New builds a catalog from already-validated records. Candidate national IDs
// are stored cleaned and a candidate whose ID does not clean to 11 digits is
// rejected. When keys repeat, lookups resolve to the first record in seed order.
func New(candidates []models.Candidate, openings []models.Opening) (*Catalog, error) {
	c := &Catalog{
		candidates:   make([]models.Candidate, 0, len(candidates)),
		openings:     make([]models.Opening, 0, len(openings)),
		byNationalID: make(map[string]int, len(candidates)),
		byCode:       make(map[string]int, len(openings)),
	}

	for i, cand := range candidates {
		id := cpf.Clean(cand.NationalID)
		if len(id) != cpf.Length {
			return nil, dErrors.New(dErrors.CodeValidation,
				fmt.Sprintf("candidates[%d]: national id must contain %d digits", i, cpf.Length))
		}
		cand.NationalID = id
		cand.Professions = slices.Clone(cand.Professions)
		if _, seen := c.byNationalID[id]; !seen {
			c.byNationalID[id] = len(c.candidates)
		}
		c.candidates = append(c.candidates, cand)
	}

	for _, o := range openings {
		o.Vacancies = slices.Clone(o.Vacancies)
		if _, seen := c.byCode[o.Code]; !seen {
			c.byCode[o.Code] = len(c.openings)
		}
		c.openings = append(c.openings, o)
	}

	return c, nil
}

// Candidates returns a copy of the candidates in seed order.
func (c *Catalog) Candidates() []models.Candidate {
	out := make([]models.Candidate, len(c.candidates))
	for i, cand := range c.candidates {
		cand.Professions = slices.Clone(cand.Professions)
		out[i] = cand
	}
	return out
}

// Openings returns a copy of the openings in seed order.
func (c *Catalog) Openings() []models.Opening {
	out := make([]models.Opening, len(c.openings))
	for i, o := range c.openings {
		o.Vacancies = slices.Clone(o.Vacancies)
		out[i] = o
	}
	return out
}

// FindCandidate returns the candidate whose national ID equals the cleaned form
// of nationalID.
func (c *Catalog) FindCandidate(nationalID string) (models.Candidate, bool) {
	i, ok := c.byNationalID[cpf.Clean(nationalID)]
	if !ok {
		return models.Candidate{}, false
	}
	cand := c.candidates[i]
	cand.Professions = slices.Clone(cand.Professions)
	return cand, true
}

// FindOpening returns the first opening, in seed order, whose code equals code
// exactly.
func (c *Catalog) FindOpening(code string) (models.Opening, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return models.Opening{}, false
	}
	o := c.openings[i]
	o.Vacancies = slices.Clone(o.Vacancies)
	return o, true
}

// Stats reports collection sizes.
func (c *Catalog) Stats() Stats {
	return Stats{
		Candidates:     len(c.candidates),
		Openings:       len(c.openings),
		DuplicateCodes: len(c.openings) - len(c.byCode),
	}
}

// Ready reports an error when the catalog has nothing to serve.
func (c *Catalog) Ready() error {
	if len(c.candidates) == 0 || len(c.openings) == 0 {
		return fmt.Errorf("catalog is empty: %d candidates, %d openings", len(c.candidates), len(c.openings))
	}
	return nil
}
