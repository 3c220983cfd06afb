package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"concursos/internal/concursos/models"
	"concursos/internal/concursos/tracer"
	dErrors "concursos/pkg/domain-errors"
)

const (
	// MaxBatchQueries caps the CPFs plus codes accepted by one Batch call.
	MaxBatchQueries = 20
	// MaxBatchConcurrency bounds the lookups a Batch runs at once.
	MaxBatchConcurrency = 4
)

// BatchRequest lists the keys to look up in one call.
type BatchRequest struct {
	CPFs  []string
	Codes []string
}

// Len returns the total number of queries.
func (r BatchRequest) Len() int {
	return len(r.CPFs) + len(r.Codes)
}

// OpeningsOutcome is the result of one CPF query in a batch.
type OpeningsOutcome struct {
	CPF    string
	Result models.LookupResult[models.Opening]
	Err    error
}

// CandidatesOutcome is the result of one code query in a batch.
type CandidatesOutcome struct {
	Code   string
	Result models.LookupResult[models.Candidate]
	Err    error
}

// BatchResult holds one outcome per query, in request order.
type BatchResult struct {
	Openings   []OpeningsOutcome
	Candidates []CandidatesOutcome
}

// Batch runs every query concurrently, each in its own Session, and returns
// the outcomes in request order. Individual lookup failures are reported in
// the outcomes; Batch itself fails only for an empty or oversized request.
func (s *Service) Batch(ctx context.Context, req BatchRequest) (*BatchResult, error) {
	n := req.Len()
	if n == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "batch must contain at least one cpf or code")
	}
	if n > MaxBatchQueries {
		return nil, dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("batch must contain at most %d queries", MaxBatchQueries))
	}

	ctx, span := s.tracer.Start(ctx, tracer.SpanLookupBatch, tracer.Int(tracer.AttrBatchSize, n))
	defer span.End(nil)
	if s.metrics != nil {
		s.metrics.ObserveBatch(n)
	}

	// Each goroutine writes only its own slot.
	result := &BatchResult{
		Openings:   make([]OpeningsOutcome, len(req.CPFs)),
		Candidates: make([]CandidatesOutcome, len(req.Codes)),
	}

	var g errgroup.Group
	g.SetLimit(MaxBatchConcurrency)

	for i, id := range req.CPFs {
		g.Go(func() error {
			sess := s.NewSession()
			res := sess.LookupOpeningsByNationalID(ctx, id)
			result.Openings[i] = OpeningsOutcome{CPF: id, Result: res, Err: sess.Err()}
			return nil
		})
	}
	for i, code := range req.Codes {
		g.Go(func() error {
			sess := s.NewSession()
			res := sess.LookupCandidatesByCode(ctx, code)
			result.Candidates[i] = CandidatesOutcome{Code: code, Result: res, Err: sess.Err()}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
