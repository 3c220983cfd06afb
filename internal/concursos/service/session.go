package service

import (
	"context"
	"sync"
	"sync/atomic"

	"concursos/internal/concursos/models"
)

// Session is a query context owning a busy flag and the last reported error,
// for callers that present a loading state. Keep one Session per in-flight
// call when per-call isolation matters: overlapping calls on one Session
// interleave their error reports in completion order.
type Session struct {
	svc      *Service
	inFlight atomic.Int32

	mu  sync.Mutex
	err error
}

// NewSession returns an idle session bound to the service.
func (s *Service) NewSession() *Session {
	return &Session{svc: s}
}

// Busy reports whether a lookup is in progress on this session.
func (sess *Session) Busy() bool {
	return sess.inFlight.Load() > 0
}

// Err returns the error reported by the most recently completed lookup.
// Validation and not-found outcomes set it; no-match and success outcomes
// leave it nil.
func (sess *Session) Err() error {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.err
}

// LookupOpeningsByNationalID runs the service lookup while tracking state.
func (sess *Session) LookupOpeningsByNationalID(ctx context.Context, id string) models.LookupResult[models.Opening] {
	sess.begin()
	defer sess.end()

	res := sess.svc.LookupOpeningsByNationalID(ctx, id)
	sess.report(res.Err())
	return res
}

// LookupCandidatesByCode runs the service lookup while tracking state.
func (sess *Session) LookupCandidatesByCode(ctx context.Context, code string) models.LookupResult[models.Candidate] {
	sess.begin()
	defer sess.end()

	res := sess.svc.LookupCandidatesByCode(ctx, code)
	sess.report(res.Err())
	return res
}

func (sess *Session) begin() {
	sess.report(nil)
	sess.inFlight.Add(1)
	if m := sess.svc.metrics; m != nil {
		m.SessionStarted()
	}
}

func (sess *Session) end() {
	sess.inFlight.Add(-1)
	if m := sess.svc.metrics; m != nil {
		m.SessionFinished()
	}
}

func (sess *Session) report(err error) {
	sess.mu.Lock()
	sess.err = err
	sess.mu.Unlock()
}
