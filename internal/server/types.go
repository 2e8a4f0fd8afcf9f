// Package server exposes Non-Maximum Suppression over a small JSON HTTP API.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	corsOrigin          string
	maxBodyMB           int64
	defaultIoUThreshold float64
	defaultScoreThresh  float64
}

// Config holds server configuration.
type Config struct {
	Host                  string
	Port                  int
	CORSOrigin            string
	MaxBodyMB             int64
	TimeoutSec            int
	DefaultIoUThreshold   float64
	DefaultScoreThreshold float64
}

// SuppressRequest is the JSON body of POST /suppress. Thresholds are
// optional; absent values fall back to the server defaults.
type SuppressRequest struct {
	Boxes          [][]float64 `json:"boxes"`
	Scores         []float64   `json:"scores"`
	IoUThreshold   *float64    `json:"iou_threshold,omitempty"`
	ScoreThreshold *float64    `json:"score_threshold,omitempty"`
	Naive          bool        `json:"naive,omitempty"`
}

// SuppressResult holds the outcome of one suppression run.
type SuppressResult struct {
	Keep             []int `json:"keep"`
	BoxesIn          int   `json:"boxes_in"`
	BoxesKept        int   `json:"boxes_kept"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

// SuppressResponse is the JSON response of POST /suppress.
type SuppressResponse struct {
	Success bool           `json:"success"`
	Result  SuppressResult `json:"result,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// HealthResponse is the JSON response of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// NewServer creates a new suppression server instance.
func NewServer(config Config) *Server {
	return &Server{
		corsOrigin:          config.CORSOrigin,
		maxBodyMB:           config.MaxBodyMB,
		defaultIoUThreshold: config.DefaultIoUThreshold,
		defaultScoreThresh:  config.DefaultScoreThreshold,
	}
}

// SetupRoutes configures the HTTP routes.
func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", s.corsMiddleware(s.healthHandler))
	mux.HandleFunc("/suppress", s.corsMiddleware(s.suppressHandler))
	mux.Handle("/metrics", promhttp.Handler())
}
