package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"concursos/internal/concursos/models"
	dErrors "concursos/pkg/domain-errors"
	"concursos/pkg/validation"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Candidates []seedCandidate `yaml:"candidates" validate:"dive"`
	Openings   []seedOpening   `yaml:"openings" validate:"dive"`
}

type seedCandidate struct {
	Name        string   `yaml:"name" validate:"required,notblank"`
	BirthDate   string   `yaml:"birth_date"`
	CPF         string   `yaml:"cpf" validate:"required,cpfdigits"`
	Professions []string `yaml:"professions" validate:"required,min=1,dive,notblank"`
}

type seedOpening struct {
	IssuingBody  string   `yaml:"issuing_body" validate:"required,notblank"`
	NoticeNumber string   `yaml:"notice_number" validate:"required,notblank"`
	Code         string   `yaml:"code" validate:"required,notblank"`
	Vacancies    []string `yaml:"vacancies" validate:"required,min=1,dive,notblank"`
}

// Load decodes a YAML seed document, validates every record and builds a
// Catalog. Unknown keys are rejected so typos in seed files surface early.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f seedFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, dErrors.New(dErrors.CodeValidation, "seed document is empty")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, fmt.Sprintf("decode seed: %v", err))
	}

	for i, c := range f.Candidates {
		if err := validation.Validate(c); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, fmt.Sprintf("candidates[%d]: %v", i, err))
		}
	}
	for i, o := range f.Openings {
		if err := validation.Validate(o); err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, fmt.Sprintf("openings[%d]: %v", i, err))
		}
	}

	candidates := make([]models.Candidate, 0, len(f.Candidates))
	for _, c := range f.Candidates {
		candidates = append(candidates, models.Candidate{
			Name:        c.Name,
			BirthDate:   c.BirthDate,
			NationalID:  c.CPF,
			Professions: c.Professions,
		})
	}
	openings := make([]models.Opening, 0, len(f.Openings))
	for _, o := range f.Openings {
		openings = append(openings, models.Opening{
			IssuingBody:  o.IssuingBody,
			NoticeNumber: o.NoticeNumber,
			Code:         o.Code,
			Vacancies:    o.Vacancies,
		})
	}

	return New(candidates, openings)
}

// LoadFile reads a seed document from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load seed file %s: %w", path, err)
	}
	return c, nil
}

// Default returns the catalog built from the embedded seed document.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultSeed))
}

// Open loads path when set and falls back to the embedded seed otherwise.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}
