package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"time"

	"commentscope/internal/youtube"
	"commentscope/shared/monitoring"
	"commentscope/shared/storage"
)

// videoIDPattern matches the 11-character video identifier in the URL forms
// YouTube hands out (watch?v=, youtu.be/, /embed/).
var videoIDPattern = regexp.MustCompile(`(?:v=|/|embed/|youtu\.be/)([0-9A-Za-z_-]{11})`)

// ExtractVideoID pulls the video identifier out of a YouTube URL.
func ExtractVideoID(url string) (string, bool) {
	match := videoIDPattern.FindStringSubmatch(url)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// Analyzer runs one full analysis pass and returns the artifact name.
type Analyzer interface {
	Run(ctx context.Context, videoID string) (string, error)
}

// Server is the web front end: a landing page listing every generated report,
// an endpoint that triggers a new analysis, and static serving of the report
// artifacts themselves.
type Server struct {
	analyzer  Analyzer
	registry  *storage.ReportRegistry
	monitor   *monitoring.Monitor
	reportDir string
	port      int
}

func NewServer(analyzer Analyzer, registry *storage.ReportRegistry, monitor *monitoring.Monitor, reportDir string, port int) *Server {
	return &Server{
		analyzer:  analyzer,
		registry:  registry,
		monitor:   monitor,
		reportDir: reportDir,
		port:      port,
	}
}

// Handler builds the route table. Exposed separately from Start so tests can
// drive it with httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.Handle("GET /reports/", http.StripPrefix("/reports/", http.FileServer(http.Dir(s.reportDir))))
	mux.HandleFunc("GET /health", monitoring.HealthHandler(s.monitor))
	mux.HandleFunc("GET /status", monitoring.StatusHandler(s.monitor))
	return mux
}

// Start serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Web server listening on port %d", s.port)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if err := renderLanding(w, s.registry.List()); err != nil {
		log.Printf("Failed to render landing page: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

type analyzeRequest struct {
	URL string `json:"url"`
}

type analyzeResponse struct {
	ReportURL string `json:"report_url,omitempty"`
	Error     string `json:"error,omitempty"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeJSON(w, http.StatusBadRequest, analyzeResponse{Error: "url is required"})
		return
	}

	videoID, ok := ExtractVideoID(req.URL)
	if !ok {
		writeJSON(w, http.StatusBadRequest, analyzeResponse{Error: "invalid YouTube URL"})
		return
	}

	artifact, err := s.analyzer.Run(r.Context(), videoID)
	if err != nil {
		log.Printf("Analysis failed for video %s: %v", videoID, err)
		switch {
		case errors.Is(err, youtube.ErrVideoNotFound):
			writeJSON(w, http.StatusNotFound, analyzeResponse{
				Error: "could not fetch video details; check the video ID and your API key",
			})
		case errors.Is(err, youtube.ErrCommentsUnavailable):
			writeJSON(w, http.StatusBadGateway, analyzeResponse{
				Error: "could not fetch comments; they may be disabled or the API quota is exhausted",
			})
		default:
			writeJSON(w, http.StatusInternalServerError, analyzeResponse{Error: "internal server error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{ReportURL: "/reports/" + artifact})
}

func writeJSON(w http.ResponseWriter, status int, body analyzeResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
