package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"concursos/internal/concursos/handler"
	"concursos/internal/platform/health"
	dErrors "concursos/pkg/domain-errors"
	"concursos/pkg/platform/httputil"
	"concursos/pkg/platform/middleware/device"
	"concursos/pkg/platform/middleware/metadata"
	request "concursos/pkg/platform/middleware/request"
	"concursos/pkg/platform/validation"
)

// Dependencies is everything the router mounts. Metadata, HTTPMetrics and
// MetricsHandler are optional.
type Dependencies struct {
	Logger         *slog.Logger
	Lookups        *handler.Handler
	Health         *health.Handler
	Metadata       *metadata.Middleware
	HTTPMetrics    *request.Metrics
	MetricsHandler http.Handler
	RequestTimeout time.Duration
}

// NewRouter wires all public endpoints with middleware. Probes and /metrics
// skip the body-related middleware; the lookup API gets the full stack.
func NewRouter(d Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(request.Recovery(d.Logger))
	r.Use(request.RequestID)
	if d.Metadata != nil {
		r.Use(d.Metadata.Handler)
	}
	r.Use(device.Device)
	r.Use(request.Logger(d.Logger))
	r.Use(request.LatencyMiddleware(d.HTTPMetrics))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusMethodNotAllowed, httputil.ErrorResponse{
			Error:            "method_not_allowed",
			ErrorDescription: "method not allowed",
		})
	})

	d.Health.Register(r)
	if d.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", d.MetricsHandler)
	}

	r.Group(func(api chi.Router) {
		api.Use(request.Timeout(d.RequestTimeout))
		api.Use(request.BodyLimit(validation.MaxBodySize))
		api.Use(request.ContentTypeJSON)
		d.Lookups.Register(api)
	})

	return r
}
