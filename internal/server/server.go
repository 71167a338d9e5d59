// Package server implements the reference conversion service: the two
// request/response endpoints the TUI talks to, with a health check and
// Prometheus metrics on the side.
package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server is the reference conversion service.
type Server struct {
	router      http.Handler
	registry    *prometheus.Registry
	conversions *prometheus.CounterVec
}

// New creates a server with its own metrics registry, so multiple
// instances can coexist in one process.
func New() *Server {
	registry := prometheus.NewRegistry()

	s := &Server{
		registry: registry,
		conversions: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "transmute_conversions_total",
			Help: "Conversion requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(logRequests)

	r.Get("/health", handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Post("/api/convert", s.handleConvert)
	r.Post("/api/currency", s.handleCurrency)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// flexNumber accepts a JSON number or a numeric string; the client
// transmits values as given by the user.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(data []byte) error {
	trimmed := string(bytes.Trim(data, `"`))
	if trimmed == "" || trimmed == "null" {
		return fmt.Errorf("value is empty")
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return fmt.Errorf("value must be numeric: %w", err)
	}

	*n = flexNumber(f)
	return nil
}

type convertRequest struct {
	Category string     `json:"category"`
	Value    flexNumber `json:"value"`
	FromUnit string     `json:"from_unit"`
	ToUnit   string     `json:"to_unit"`
}

type currencyRequest struct {
	Amount       flexNumber `json:"amount"`
	FromCurrency string     `json:"from_currency"`
	ToCurrency   string     `json:"to_currency"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeDetail(w, "convert", http.StatusBadRequest, "invalid request body")
		return
	}

	if !supportedCategory(req.Category) {
		s.writeDetail(w, "convert", http.StatusBadRequest,
			fmt.Sprintf("unknown category: %s", req.Category))
		return
	}

	result, err := convertUnits(req.Category, float64(req.Value), req.FromUnit, req.ToUnit)
	if err != nil {
		s.writeDetail(w, "convert", http.StatusBadRequest, err.Error())
		return
	}

	s.writeResult(w, "convert", result)
}

func (s *Server) handleCurrency(w http.ResponseWriter, r *http.Request) {
	var req currencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeDetail(w, "currency", http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := convertCurrency(float64(req.Amount), req.FromCurrency, req.ToCurrency)
	if err != nil {
		s.writeDetail(w, "currency", http.StatusBadRequest, err.Error())
		return
	}

	s.writeResult(w, "currency", result)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) writeResult(w http.ResponseWriter, endpoint string, result float64) {
	s.conversions.WithLabelValues(endpoint, "ok").Inc()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]float64{"result": result})
}

func (s *Server) writeDetail(w http.ResponseWriter, endpoint string, status int, detail string) {
	s.conversions.WithLabelValues(endpoint, "error").Inc()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

// logRequests logs each request through the default slog logger.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.Info("request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
