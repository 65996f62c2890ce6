package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	api "corengine/internal/api"
	"corengine/internal/domain"
	"corengine/internal/ports"
)

// Server implements the generated StrictServerInterface on top of the
// engine's services.
type Server struct {
	audits       ports.Audits
	certificates ports.Certificates
	auditors     ports.Auditors
	deficiencies ports.Deficiencies
	cycle        ports.Cycle
	log          logrus.FieldLogger
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(audits ports.Audits, certificates ports.Certificates, auditors ports.Auditors, deficiencies ports.Deficiencies, cycle ports.Cycle, log logrus.FieldLogger) *Server {
	return &Server{audits: audits, certificates: certificates, auditors: auditors, deficiencies: deficiencies, cycle: cycle, log: log}
}

// Routes returns a chi.Router with every handler mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer, s.requestLogger)

	handler := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.writeBadRequest,
		ResponseErrorHandlerFunc: s.writeError,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.writeBadRequest,
	})
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      ww.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  middleware.GetReqID(r.Context()),
		}).Debug("request")
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeBadRequest answers parameter binding and body decoding failures.
func (s *Server) writeBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, api.Error{Error: err.Error()})
}

// writeError maps engine errors onto status codes. Messages are passed
// through verbatim.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		rt *runtimeError
		pe *domain.PreconditionError
	)
	switch {
	case errors.As(err, &rt):
		writeJSON(w, rt.code, api.Error{Error: rt.msg})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, api.Error{Error: err.Error()})
	case errors.As(err, &pe):
		writeJSON(w, http.StatusUnprocessableEntity, api.Error{Error: pe.Error(), Minimum: pe.Minimum})
	default:
		s.log.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": middleware.GetReqID(r.Context()),
		}).WithError(err).Error("request failed")
		writeJSON(w, http.StatusInternalServerError, api.Error{Error: err.Error()})
	}
}

type runtimeError struct {
	code int
	msg  string
}

func (e *runtimeError) Error() string { return e.msg }

func badRequest(msg string) error { return &runtimeError{code: http.StatusBadRequest, msg: msg} }
