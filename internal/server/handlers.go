package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/MeKo-Tech/sparsenms"
	"github.com/MeKo-Tech/sparsenms/internal/common"
)

// healthHandler returns server health status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := HealthResponse{
		Status: "healthy",
		Time:   time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding health response: %v\n", err)
	}
}

// suppressHandler runs Non-Maximum Suppression on a posted detection set.
func (s *Server) suppressHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyMB*1024*1024)

	var req SuppressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorResponse(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	cfg := sparsenms.Config{
		IoUThreshold:   s.defaultIoUThreshold,
		ScoreThreshold: s.defaultScoreThresh,
	}
	if req.IoUThreshold != nil {
		cfg.IoUThreshold = *req.IoUThreshold
	}
	if req.ScoreThreshold != nil {
		cfg.ScoreThreshold = *req.ScoreThreshold
	}

	algorithm := "sparse"
	run := sparsenms.Suppress
	if req.Naive {
		algorithm = "naive"
		run = sparsenms.SuppressNaive
	}

	timer := common.NewTimer()
	keep, err := run(req.Boxes, req.Scores, cfg)
	elapsed := timer.Stop()
	if err != nil {
		recordSuppression(algorithm, "error", 0, 0, 0)
		s.writeErrorResponse(w, err.Error(), suppressionStatusCode(err))
		return
	}
	recordSuppression(algorithm, "success", elapsed.Seconds(), len(req.Scores), len(keep))

	response := SuppressResponse{
		Success: true,
		Result: SuppressResult{
			Keep:             keep,
			BoxesIn:          len(req.Scores),
			BoxesKept:        len(keep),
			ProcessingTimeMs: elapsed.Milliseconds(),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding suppress response: %v\n", err)
	}
}

// suppressionStatusCode maps validation failures to 400; anything else is a
// server fault.
func suppressionStatusCode(err error) int {
	switch {
	case errors.Is(err, sparsenms.ErrInvalidShape),
		errors.Is(err, sparsenms.ErrInvalidGeometry),
		errors.Is(err, sparsenms.ErrInvalidThreshold):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeErrorResponse writes a JSON error response.
func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := SuppressResponse{
		Success: false,
		Error:   message,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding error response: %v\n", err)
	}
}
