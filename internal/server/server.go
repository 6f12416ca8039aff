// Package server exposes the chart calculator as an HTTP JSON API.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dturkuler/humandesign-1/internal/chartstore"
	"github.com/dturkuler/humandesign-1/internal/logging"
)

// #region server
// Server routes chart calculation requests. A nil store disables
// persistence and request logging.
type Server struct {
	log         *zap.Logger
	store       *chartstore.Store
	defaultZone string
	mux         *http.ServeMux
}

// New builds the server and registers all routes.
func New(log *zap.Logger, store *chartstore.Store, defaultZone string) *Server {
	s := &Server{
		log:         log,
		store:       store,
		defaultZone: defaultZone,
		mux:         http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/calculate", s.handleCalculate)
	s.mux.HandleFunc("/available-features", s.handleAvailableFeatures)
	s.mux.HandleFunc("/energy-type", s.featureHandler(featureEnergyType))
	s.mux.HandleFunc("/authority", s.featureHandler(featureAuthority))
	s.mux.HandleFunc("/profile", s.featureHandler(featureProfile))
	s.mux.HandleFunc("/centers", s.featureHandler(featureCenters))
	s.mux.HandleFunc("/split", s.featureHandler(featureSplit))
	s.mux.HandleFunc("/cross", s.featureHandler(featureCross))
	s.mux.HandleFunc("/channels", s.featureHandler(featureChannels))
	s.mux.HandleFunc("/gates", s.featureHandler(featureGates))
	s.mux.HandleFunc("/variables", s.featureHandler(featureVariables))
}

// Handler wraps the mux with request-ID and logging middleware.
func (s *Server) Handler() http.Handler {
	return s.withRequestID(s.withLogging(s.mux))
}

// #endregion server

// #region middleware

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", rec.Header().Get("X-Request-ID")),
		)
	})
}

// #endregion middleware

// #region responses

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// #endregion responses

// #region audit

// audit writes a request_log row when a store is configured.
func (s *Server) audit(entry logging.RequestEntry) {
	if s.store == nil {
		return
	}
	if err := logging.LogRequest(s.store.DB(), entry); err != nil {
		s.log.Warn("request log failed", zap.Error(err))
	}
}

// #endregion audit
