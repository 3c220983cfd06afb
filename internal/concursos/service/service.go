// Package service answers the two catalog lookups: openings compatible with a
// candidate (by CPF) and candidates compatible with an opening (by code).
//
// Lookups never fail with a Go error. Every outcome, including malformed
// keys and unknown records, is reported through models.LookupResult so that
// callers can tell "bad input" apart from "nothing matches".
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"concursos/internal/concursos/metrics"
	"concursos/internal/concursos/models"
	"concursos/internal/concursos/tracer"
	"concursos/pkg/cpf"
	"concursos/pkg/textmatch"
)

// DefaultLatency is the simulated retrieval delay applied before each lookup.
const DefaultLatency = 500 * time.Millisecond

// Catalog is the read-only seed source the service queries.
type Catalog interface {
	Candidates() []models.Candidate
	Openings() []models.Opening
	FindCandidate(nationalID string) (models.Candidate, bool)
	FindOpening(code string) (models.Opening, bool)
}

// Service runs lookups against a Catalog. It holds no per-call state and is
// safe for concurrent use.
type Service struct {
	catalog Catalog
	latency time.Duration
	sleep   func(time.Duration)
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  tracer.Tracer
}

// Option configures the Service.
type Option func(*Service)

// WithLatency sets the simulated delay applied before every lookup. Zero
// disables it.
func WithLatency(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.latency = d
		}
	}
}

// WithSleeper replaces time.Sleep as the suspension primitive, letting tests
// observe the in-progress state deterministically.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(s *Service) {
		if sleep != nil {
			s.sleep = sleep
		}
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer sets the tracer used for lookup spans.
func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New creates a lookup service over catalog.
func New(catalog Catalog, opts ...Option) *Service {
	s := &Service{
		catalog: catalog,
		latency: DefaultLatency,
		sleep:   time.Sleep,
		logger:  slog.Default(),
		tracer:  tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LookupOpeningsByNationalID returns the openings whose vacancies intersect
// the professions of the candidate identified by id. The id may be formatted
// or bare digits.
func (s *Service) LookupOpeningsByNationalID(ctx context.Context, id string) models.LookupResult[models.Opening] {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanLookupOpenings,
		tracer.String(tracer.AttrCPFHash, tracer.HashCPF(id)),
	)
	s.simulateLatency(span)

	res := s.openingsFor(id)
	finish(ctx, s, span, metrics.KindOpenings, res, start, slog.String("cpf", cpf.Redact(id)))
	return res
}

func (s *Service) openingsFor(id string) models.LookupResult[models.Opening] {
	if !cpf.IsValid(id) {
		return models.Empty[models.Opening](models.StatusValidationError, models.MsgInvalidID, nil)
	}
	candidate, ok := s.catalog.FindCandidate(cpf.Clean(id))
	if !ok {
		return models.Empty[models.Opening](models.StatusNotFound, models.MsgCandidateNotFound, nil)
	}

	matches := make([]models.Opening, 0)
	for _, o := range s.catalog.Openings() {
		if textmatch.HasIntersection(candidate.Professions, o.Vacancies) {
			matches = append(matches, o)
		}
	}
	if len(matches) == 0 {
		return models.Empty[models.Opening](models.StatusNoMatches, models.MsgNoCompatibleOpening, candidate.Professions)
	}
	return models.Success(matches, candidate.Professions)
}

// LookupCandidatesByCode returns the candidates whose professions intersect
// the vacancies of the opening identified by code. Surrounding whitespace is
// trimmed; the code itself is compared exactly.
func (s *Service) LookupCandidatesByCode(ctx context.Context, code string) models.LookupResult[models.Candidate] {
	start := time.Now()
	code = strings.TrimSpace(code)
	ctx, span := s.tracer.Start(ctx, tracer.SpanLookupCandidates,
		tracer.String(tracer.AttrOpeningCode, code),
	)
	s.simulateLatency(span)

	res := s.candidatesFor(code)
	finish(ctx, s, span, metrics.KindCandidates, res, start, slog.String("code", code))
	return res
}

func (s *Service) candidatesFor(code string) models.LookupResult[models.Candidate] {
	if code == "" {
		return models.Empty[models.Candidate](models.StatusValidationError, models.MsgCodeRequired, nil)
	}
	opening, ok := s.catalog.FindOpening(code)
	if !ok {
		return models.Empty[models.Candidate](models.StatusNotFound, models.MsgOpeningNotFound, nil)
	}

	matches := make([]models.Candidate, 0)
	for _, c := range s.catalog.Candidates() {
		if textmatch.HasIntersection(c.Professions, opening.Vacancies) {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return models.Empty[models.Candidate](models.StatusNoMatches, models.MsgNoCompatibleCandidate, opening.Vacancies)
	}
	return models.Success(matches, opening.Vacancies)
}

// simulateLatency suspends the calling goroutine for the configured delay.
// It deliberately ignores context cancellation: a started lookup always runs
// to completion.
func (s *Service) simulateLatency(span tracer.Span) {
	if s.latency <= 0 {
		return
	}
	span.SetAttributes(tracer.Duration(tracer.AttrSimulatedLatency, s.latency))
	s.sleep(s.latency)
}

func finish[T any](ctx context.Context, s *Service, span tracer.Span, kind string, res models.LookupResult[T], start time.Time, key slog.Attr) {
	elapsed := time.Since(start)
	err := res.Err()

	span.SetAttributes(
		tracer.String(tracer.AttrStatus, string(res.Status)),
		tracer.Int(tracer.AttrMatches, len(res.Items)),
	)
	if res.Status == models.StatusValidationError {
		span.AddEvent(tracer.EventKeyRejected)
	}
	span.End(err)

	if s.metrics != nil {
		s.metrics.RecordLookup(kind, string(res.Status), elapsed.Seconds(), len(res.Items))
	}

	s.logger.DebugContext(ctx, "lookup completed",
		"kind", kind,
		key,
		"status", res.Status,
		"matches", len(res.Items),
		"duration_ms", elapsed.Milliseconds(),
	)
}
