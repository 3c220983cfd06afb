package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"concursos/internal/concursos/models"
	"concursos/internal/concursos/service"
	"concursos/pkg/cpf"
	dErrors "concursos/pkg/domain-errors"
	"concursos/pkg/platform/httputil"
	"concursos/pkg/requestcontext"
)

// Service defines the lookup operations the handler needs.
// The error is the one the call's Session reported: nil for success and
// no-match outcomes, a validation or not-found domain error otherwise.
type Service interface {
	LookupOpenings(ctx context.Context, nationalID string) (models.LookupResult[models.Opening], error)
	LookupCandidates(ctx context.Context, code string) (models.LookupResult[models.Candidate], error)
	Batch(ctx context.Context, req service.BatchRequest) (*service.BatchResult, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/lookup/openings", h.HandleLookupOpenings)
	r.Post("/lookup/candidates", h.HandleLookupCandidates)
	r.Post("/lookup/batch", h.HandleLookupBatch)
	r.Post("/cpf/validate", h.HandleValidateCPF)
	r.Post("/cpf/mask", h.HandleMaskCPF)
}

// HandleLookupOpenings lists the openings compatible with a candidate's
// professions. No-match outcomes answer 200 with an empty list.
func (h *Handler) HandleLookupOpenings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.DecodeAndPrepare[OpeningsLookupRequest](w, r, h.logger)
	if !ok {
		return
	}

	res, err := h.service.LookupOpenings(ctx, req.CPF)
	if err != nil {
		h.logFailure(ctx, "openings lookup failed", err, "cpf", cpf.Redact(req.CPF))
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, NewOpeningsResponse(res))
}

// HandleLookupCandidates lists the candidates compatible with an opening.
func (h *Handler) HandleLookupCandidates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.DecodeAndPrepare[CandidatesLookupRequest](w, r, h.logger)
	if !ok {
		return
	}

	res, err := h.service.LookupCandidates(ctx, req.Code)
	if err != nil {
		h.logFailure(ctx, "candidates lookup failed", err, "code", req.Code)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, NewCandidatesResponse(res))
}

// HandleLookupBatch runs several lookups at once. Per-query failures are
// reported inside the response entries; only a malformed batch fails the
// whole request.
func (h *Handler) HandleLookupBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := httputil.DecodeAndPrepare[BatchLookupRequest](w, r, h.logger)
	if !ok {
		return
	}

	res, err := h.service.Batch(ctx, req.ToBatchRequest())
	if err != nil {
		h.logFailure(ctx, "batch lookup failed", err, "queries", len(req.CPFs)+len(req.Codes))
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, NewBatchResponse(res))
}

// HandleValidateCPF reports how a raw value cleans, formats and validates.
func (h *Handler) HandleValidateCPF(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[CPFRequest](w, r, h.logger)
	if !ok {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &CPFValidationResponse{
		Clean:         cpf.Clean(req.CPF),
		Formatted:     cpf.Format(req.CPF),
		Valid:         cpf.IsValid(req.CPF),
		ChecksumValid: cpf.ValidChecksum(req.CPF),
	})
}

// HandleMaskCPF applies the display layout to partially typed input.
func (h *Handler) HandleMaskCPF(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndPrepare[MaskRequest](w, r, h.logger)
	if !ok {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &MaskResponse{Masked: cpf.Mask(req.Value)})
}

// logFailure logs caller errors at info and anything else at error level.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err, "request_id", requestcontext.RequestID(ctx))
	switch dErrors.CodeOf(err) {
	case dErrors.CodeValidation, dErrors.CodeNotFound:
		h.logger.InfoContext(ctx, msg, args...)
	default:
		h.logger.ErrorContext(ctx, msg, args...)
	}
}
