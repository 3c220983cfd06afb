package handler

import (
	"context"

	"concursos/internal/concursos/models"
	"concursos/internal/concursos/service"
)

// Sessions adapts a service.Service to the handler's Service port. Every
// call runs in a fresh Session, so concurrent requests never share a busy
// flag or an error slot.
type Sessions struct {
	svc *service.Service
}

// NewSessions wraps svc.
func NewSessions(svc *service.Service) *Sessions {
	return &Sessions{svc: svc}
}

func (a *Sessions) LookupOpenings(ctx context.Context, nationalID string) (models.LookupResult[models.Opening], error) {
	sess := a.svc.NewSession()
	res := sess.LookupOpeningsByNationalID(ctx, nationalID)
	return res, sess.Err()
}

func (a *Sessions) LookupCandidates(ctx context.Context, code string) (models.LookupResult[models.Candidate], error) {
	sess := a.svc.NewSession()
	res := sess.LookupCandidatesByCode(ctx, code)
	return res, sess.Err()
}

func (a *Sessions) Batch(ctx context.Context, req service.BatchRequest) (*service.BatchResult, error) {
	return a.svc.Batch(ctx, req)
}
