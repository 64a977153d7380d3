// Package api exposes the physics core over a thin HTTP JSON binding.
// Handlers accept primitive numbers, wrap them into typed quantities,
// call the core, and translate validation failures into 422 responses
// carrying the reason string unchanged. The core itself stays free of
// transport concerns.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/signalsfoundry/skyhook/catalog"
	"github.com/signalsfoundry/skyhook/internal/logging"
	"github.com/signalsfoundry/skyhook/internal/observability"
	"github.com/signalsfoundry/skyhook/unit"
)

const tracerName = "github.com/signalsfoundry/skyhook/internal/api"

// Server binds the calculation endpoints to a catalog and observability
// stack.
type Server struct {
	log     logging.Logger
	catalog *catalog.Catalog
	metrics *observability.Collector
	tracer  trace.Tracer
}

// NewServer constructs a Server. A nil logger is replaced with a noop
// logger and a nil catalog with the built-in defaults; metrics may be nil
// when instrumentation is not wanted.
func NewServer(log logging.Logger, cat *catalog.Catalog, metrics *observability.Collector) *Server {
	if log == nil {
		log = logging.Noop()
	}
	if cat == nil {
		cat = catalog.NewWithDefaults()
	}
	return &Server{
		log:     log,
		catalog: cat,
		metrics: metrics,
		tracer:  otel.Tracer(tracerName),
	}
}

// Routes returns a mux with every calculation and catalog endpoint
// registered.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("/v1/tether/characteristic-velocity",
		s.endpoint("characteristic-velocity", http.MethodPost, s.handleCharacteristicVelocity))
	mux.Handle("/v1/tether/efficiency",
		s.endpoint("efficiency", http.MethodPost, s.handleEfficiency))
	mux.Handle("/v1/tether/spin-rate",
		s.endpoint("spin-rate", http.MethodPost, s.handleSpinRate))
	mux.Handle("/v1/tether/impulse",
		s.endpoint("impulse", http.MethodPost, s.handleImpulse))
	mux.Handle("/v1/orbit/velocity",
		s.endpoint("orbital-velocity", http.MethodPost, s.handleOrbitalVelocity))
	mux.Handle("/v1/orbit/period",
		s.endpoint("orbital-period", http.MethodPost, s.handleOrbitalPeriod))
	mux.Handle("/v1/orbit/angular-velocity",
		s.endpoint("angular-velocity", http.MethodPost, s.handleAngularVelocity))
	mux.Handle("/v1/ellipse",
		s.endpoint("ellipse", http.MethodPost, s.handleEllipse))
	mux.Handle("/v1/catalog/materials",
		s.endpoint("list-materials", http.MethodGet, s.handleListMaterials))
	mux.Handle("/v1/catalog/bodies",
		s.endpoint("list-bodies", http.MethodGet, s.handleListBodies))
	mux.Handle("/healthz", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))

	return mux
}

type handlerFunc func(r *http.Request) (any, error)

// endpoint wraps a handler with request-ID propagation, a server span,
// metrics instrumentation, and uniform error translation.
func (s *Server) endpoint(name, method string, h handlerFunc) http.Handler {
	base := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
			return
		}

		ctx, log := logging.WithRequestLogger(r.Context(), s.log)
		ctx, span := s.tracer.Start(ctx, "API/"+name,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("endpoint", name),
				attribute.String("request_id", logging.RequestIDFromContext(ctx)),
			),
		)
		defer span.End()

		resp, err := h(r.WithContext(ctx))
		if err != nil {
			status := statusFor(err)
			span.RecordError(err)
			log.Warn(ctx, "request failed",
				logging.String("endpoint", name),
				logging.Int("status", status),
				logging.String("error", err.Error()),
			)
			writeJSON(w, status, errorResponse{Error: err.Error()})
			return
		}

		log.Debug(ctx, "request handled", logging.String("endpoint", name))
		writeJSON(w, http.StatusOK, resp)
	})

	if s.metrics != nil {
		return s.metrics.Middleware(name, base)
	}
	return base
}

type errorResponse struct {
	Error string `json:"error"`
}

// httpError carries an explicit HTTP status through the handler return
// path; anything else maps via statusFor.
type httpError struct {
	status int
	msg    string
}

func (e *httpError) Error() string { return e.msg }

func badRequest(msg string) error { return &httpError{status: http.StatusBadRequest, msg: msg} }
func notFound(msg string) error   { return &httpError{status: http.StatusNotFound, msg: msg} }

func statusFor(err error) int {
	var he *httpError
	if errors.As(err, &he) {
		return he.status
	}
	var inv *unit.InvalidInputError
	if errors.As(err, &inv) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return badRequest("invalid request body: " + err.Error())
	}
	return nil
}
