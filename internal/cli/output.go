package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"concursos/internal/concursos/handler"
	"concursos/internal/concursos/models"
	"concursos/internal/concursos/service"
	"concursos/pkg/cpf"
	"concursos/pkg/textmatch"
)

type printer struct {
	w      io.Writer
	format string
	theme  Theme
}

func (p *printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) openings(id string, res models.LookupResult[models.Opening]) error {
	if p.format == formatJSON {
		return p.json(handler.NewOpeningsResponse(res))
	}
	p.printOpenings(id, res)
	return nil
}

func (p *printer) candidates(code string, res models.LookupResult[models.Candidate]) error {
	if p.format == formatJSON {
		return p.json(handler.NewCandidatesResponse(res))
	}
	p.printCandidates(code, res)
	return nil
}

func (p *printer) batch(res *service.BatchResult) error {
	if p.format == formatJSON {
		return p.json(handler.NewBatchResponse(res))
	}
	for _, o := range res.Openings {
		p.printOpenings(o.CPF, o.Result)
	}
	for _, c := range res.Candidates {
		p.printCandidates(c.Code, c.Result)
	}
	return nil
}

func (p *printer) validation(resp handler.CPFValidationResponse) error {
	if p.format == formatJSON {
		return p.json(resp)
	}
	verdict := p.theme.Match.Render("valid")
	if !resp.Valid {
		verdict = p.theme.Error.Render("invalid")
	}
	fmt.Fprintf(p.w, "%s %s\n", p.theme.Title.Render(resp.Formatted), verdict)
	fmt.Fprintf(p.w, "  digits:   %s\n", resp.Clean)
	fmt.Fprintf(p.w, "  checksum: %t\n", resp.ChecksumValid)
	return nil
}

func (p *printer) printOpenings(id string, res models.LookupResult[models.Opening]) {
	fmt.Fprintln(p.w, p.theme.Title.Render("Openings for "+cpf.Format(id)))
	if !p.printStatus(res.Status, res.Message, res.Criteria, "professions") {
		return
	}
	for _, o := range res.Items {
		fmt.Fprintf(p.w, "- %s %s (code %s)\n", o.IssuingBody, o.NoticeNumber, o.Code)
		fmt.Fprintf(p.w, "  vacancies: %s\n", strings.Join(o.Vacancies, ", "))
		fmt.Fprintf(p.w, "  matched:   %s\n", p.theme.Match.Render(strings.Join(textmatch.Intersection(o.Vacancies, res.Criteria), ", ")))
	}
	fmt.Fprintln(p.w)
}

func (p *printer) printCandidates(code string, res models.LookupResult[models.Candidate]) {
	fmt.Fprintln(p.w, p.theme.Title.Render("Candidates for opening "+code))
	if !p.printStatus(res.Status, res.Message, res.Criteria, "vacancies") {
		return
	}
	for _, c := range res.Items {
		fmt.Fprintf(p.w, "- %s, born %s, CPF %s\n", c.Name, c.BirthDate, cpf.Format(c.NationalID))
		fmt.Fprintf(p.w, "  professions: %s\n", strings.Join(c.Professions, ", "))
		fmt.Fprintf(p.w, "  matched:     %s\n", p.theme.Match.Render(strings.Join(textmatch.Intersection(c.Professions, res.Criteria), ", ")))
	}
	fmt.Fprintln(p.w)
}

// printStatus writes the criteria line and, for anything but success, the
// outcome message. It reports whether items follow.
func (p *printer) printStatus(status models.Status, msg string, criteria []string, label string) bool {
	if len(criteria) > 0 {
		fmt.Fprintln(p.w, p.theme.Subtitle.Render(label+": "+strings.Join(criteria, ", ")))
	}
	switch status {
	case models.StatusSuccess:
		return true
	case models.StatusNoMatches:
		fmt.Fprintln(p.w, p.theme.Subtitle.Render(msg))
	default:
		fmt.Fprintln(p.w, p.theme.Error.Render(msg))
	}
	fmt.Fprintln(p.w)
	return false
}
