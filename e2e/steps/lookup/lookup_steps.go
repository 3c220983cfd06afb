package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	POST(path string, body any) error
	GetLastResponseBody() []byte
}

// RegisterSteps registers lookup and CPF utility step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &lookupSteps{tc: tc}

	// Lookup steps
	ctx.Step(`^I look up openings for CPF "([^"]*)"$`, steps.lookupOpenings)
	ctx.Step(`^I look up candidates for code "([^"]*)"$`, steps.lookupCandidates)
	ctx.Step(`^I look up in batch the CPFs "([^"]*)" and codes "([^"]*)"$`, steps.lookupBatch)

	// CPF utility steps
	ctx.Step(`^I validate CPF "([^"]*)"$`, steps.validateCPF)
	ctx.Step(`^I mask the input "([^"]*)"$`, steps.mask)

	// Result assertion steps
	ctx.Step(`^the openings should be:$`, steps.openingsShouldBe)
	ctx.Step(`^the candidates should be:$`, steps.candidatesShouldBe)
	ctx.Step(`^the opening "([^"]*)" should match vacancies "([^"]*)"$`, steps.openingShouldMatch)
	ctx.Step(`^the batch should answer (\d+) CPF queries and (\d+) code queries$`, steps.batchShouldAnswer)
	ctx.Step(`^the batch entry for CPF "([^"]*)" should have status "([^"]*)"$`, steps.batchCPFStatus)
}

type lookupSteps struct {
	tc TestContext
}

type openingEntry struct {
	IssuingBody      string   `json:"issuing_body"`
	NoticeNumber     string   `json:"notice_number"`
	Code             string   `json:"code"`
	MatchedVacancies []string `json:"matched_vacancies"`
}

type candidateEntry struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	CPF       string `json:"cpf"`
}

type openingsBody struct {
	Status   string         `json:"status"`
	Openings []openingEntry `json:"openings"`
}

type candidatesBody struct {
	Status     string           `json:"status"`
	Candidates []candidateEntry `json:"candidates"`
}

type batchBody struct {
	Openings []struct {
		CPF    string `json:"cpf"`
		Status string `json:"status"`
	} `json:"openings"`
	Candidates []struct {
		Code   string `json:"code"`
		Status string `json:"status"`
	} `json:"candidates"`
}

func (s *lookupSteps) lookupOpenings(ctx context.Context, id string) error {
	return s.tc.POST("/lookup/openings", map[string]string{"cpf": id})
}

func (s *lookupSteps) lookupCandidates(ctx context.Context, code string) error {
	return s.tc.POST("/lookup/candidates", map[string]string{"code": code})
}

func (s *lookupSteps) lookupBatch(ctx context.Context, cpfs, codes string) error {
	return s.tc.POST("/lookup/batch", map[string][]string{
		"cpfs":  splitList(cpfs),
		"codes": splitList(codes),
	})
}

func (s *lookupSteps) validateCPF(ctx context.Context, id string) error {
	return s.tc.POST("/cpf/validate", map[string]string{"cpf": id})
}

func (s *lookupSteps) mask(ctx context.Context, value string) error {
	return s.tc.POST("/cpf/mask", map[string]string{"value": value})
}

func (s *lookupSteps) openingsShouldBe(ctx context.Context, table *godog.Table) error {
	var body openingsBody
	if err := s.decode(&body); err != nil {
		return err
	}
	got := make([]string, 0, len(body.Openings))
	for _, o := range body.Openings {
		got = append(got, o.IssuingBody+" "+o.NoticeNumber)
	}
	return compareRows(table, got, func(cells []string) string { return cells[0] + " " + cells[1] })
}

func (s *lookupSteps) candidatesShouldBe(ctx context.Context, table *godog.Table) error {
	var body candidatesBody
	if err := s.decode(&body); err != nil {
		return err
	}
	got := make([]string, 0, len(body.Candidates))
	for _, c := range body.Candidates {
		got = append(got, c.Name+" "+c.CPF)
	}
	return compareRows(table, got, func(cells []string) string { return cells[0] + " " + cells[1] })
}

func (s *lookupSteps) openingShouldMatch(ctx context.Context, notice, vacancies string) error {
	var body openingsBody
	if err := s.decode(&body); err != nil {
		return err
	}
	for _, o := range body.Openings {
		if o.NoticeNumber != notice {
			continue
		}
		if got, want := strings.Join(o.MatchedVacancies, ", "), vacancies; got != want {
			return fmt.Errorf("opening %s: expected matched vacancies %q but got %q", notice, want, got)
		}
		return nil
	}
	return fmt.Errorf("opening %s not in response", notice)
}

func (s *lookupSteps) batchShouldAnswer(ctx context.Context, cpfs, codes int) error {
	var body batchBody
	if err := s.decode(&body); err != nil {
		return err
	}
	if len(body.Openings) != cpfs || len(body.Candidates) != codes {
		return fmt.Errorf("expected %d/%d entries but got %d/%d", cpfs, codes, len(body.Openings), len(body.Candidates))
	}
	return nil
}

func (s *lookupSteps) batchCPFStatus(ctx context.Context, id, status string) error {
	var body batchBody
	if err := s.decode(&body); err != nil {
		return err
	}
	for _, o := range body.Openings {
		if o.CPF == id {
			if o.Status != status {
				return fmt.Errorf("cpf %s: expected status %s but got %s", id, status, o.Status)
			}
			return nil
		}
	}
	return fmt.Errorf("cpf %s not in batch response", id)
}

func (s *lookupSteps) decode(v any) error {
	if err := json.Unmarshal(s.tc.GetLastResponseBody(), v); err != nil {
		return fmt.Errorf("failed to parse response: %w\nResponse: %s", err, s.tc.GetLastResponseBody())
	}
	return nil
}

// compareRows checks got against the table body (header row skipped), in order.
func compareRows(table *godog.Table, got []string, key func([]string) string) error {
	want := make([]string, 0, len(table.Rows))
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		cells := make([]string, 0, len(row.Cells))
		for _, c := range row.Cells {
			cells = append(cells, c.Value)
		}
		want = append(want, key(cells))
	}
	if strings.Join(want, "|") != strings.Join(got, "|") {
		return fmt.Errorf("expected %v but got %v", want, got)
	}
	return nil
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
