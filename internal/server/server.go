// Package server exposes the analyzer as a JSON HTTP API.
//
// Endpoints:
//
//	POST /api/analyze            body: {"text":"...","save":false}
//	POST /api/analyze/morphemes  body: {"morphemes":[...],"text":"..."}
//	GET  /api/analyses?limit=<n>&q=<substring>
//	GET  /api/analyses/{id}
//	GET  /live
//	GET  /ready
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/cors"

	"github.com/kakari-nlp/kakari"
	"github.com/kakari-nlp/kakari/internal/config"
	"github.com/kakari-nlp/kakari/internal/store"
)

// archive is the subset of store.Store used by the handlers.
type archive interface {
	Save(ctx context.Context, a *kakari.Analysis) (*store.Record, error)
	Get(ctx context.Context, id string) (*store.Record, error)
	List(ctx context.Context, p store.ListParams) ([]store.Record, error)
}

// Server serves the analysis API. The analyzer may be installed after the
// listener starts; until then text analysis answers 503.
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	archive  archive
	analyzer atomic.Pointer[kakari.Analyzer]
}

// New creates a Server. archive may be nil to disable history endpoints.
func New(cfg *config.Config, logger *slog.Logger, archive archive) *Server {
	return &Server{cfg: cfg, logger: logger, archive: archive}
}

// SetAnalyzer installs the analyzer used for text requests.
func (s *Server) SetAnalyzer(a *kakari.Analyzer) {
	s.analyzer.Store(a)
}

func (s *Server) ready() bool {
	a := s.analyzer.Load()
	return a != nil && a.Ready()
}

// Handler returns the routed handler wrapped in CORS and middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/analyze", s.handleAnalyzeText)
	mux.HandleFunc("POST /api/analyze/morphemes", s.handleAnalyzeMorphemes)
	mux.HandleFunc("GET /api/analyses", s.handleListAnalyses)
	mux.HandleFunc("GET /api/analyses/{id}", s.handleGetAnalysis)
	mux.HandleFunc("GET /live", s.handleLive)
	mux.HandleFunc("GET /ready", s.handleReady)

	c := cors.New(cors.Options{
		AllowedOrigins:   s.cfg.CORS.Origins(),
		AllowedMethods:   s.cfg.CORS.Methods(),
		AllowedHeaders:   s.cfg.CORS.Headers(),
		AllowCredentials: s.cfg.CORS.AllowCredentials,
		MaxAge:           s.cfg.CORS.MaxAge,
	})

	return Chain(
		RequestID,
		AccessLog(s.logger),
		Recovery(s.logger),
		c.Handler,
	)(mux)
}

// HTTPServer returns an *http.Server configured from cfg.Server.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
}

// ---- JSON types ---------------------------------------------------------

type analyzeTextRequest struct {
	Text string `json:"text"`
	Save bool   `json:"save"`
}

type analyzeMorphemesRequest struct {
	Text      string            `json:"text"`
	Morphemes []kakari.Morpheme `json:"morphemes"`
	Save      bool              `json:"save"`
}

type analyzeResponse struct {
	ID string `json:"id,omitempty"`
	*kakari.Analysis
}

type listResponse struct {
	Analyses []store.Record `json:"analyses"`
}

type statusResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, int64(s.cfg.Analyzer.MaxInputBytes))
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	var body analyzeTextRequest
	if !s.decode(w, r, &body) {
		return
	}
	res, err := s.analyzer.Load().AnalyzeText(body.Text)
	switch {
	case errors.Is(err, kakari.ErrNotReady):
		writeError(w, http.StatusServiceUnavailable, "tokenizer is not ready")
		return
	case errors.Is(err, kakari.ErrEmptyText):
		writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respond(w, r, res, body.Save)
}

func (s *Server) handleAnalyzeMorphemes(w http.ResponseWriter, r *http.Request) {
	var body analyzeMorphemesRequest
	if !s.decode(w, r, &body) {
		return
	}
	res := kakari.Analyze(body.Morphemes)
	res.Text = body.Text
	s.respond(w, r, res, body.Save)
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, res *kakari.Analysis, save bool) {
	out := analyzeResponse{Analysis: res}
	if save {
		if s.archive == nil {
			writeError(w, http.StatusNotImplemented, "history store is disabled")
			return
		}
		rec, err := s.archive.Save(r.Context(), res)
		if err != nil {
			s.logger.ErrorContext(r.Context(), "save analysis", slog.Any("error", err))
			writeError(w, http.StatusInternalServerError, "could not save analysis")
			return
		}
		out.ID = rec.ID
	}
	s.logger.DebugContext(r.Context(), "analyzed",
		slog.Int("morphemes", len(res.Morphemes)),
		slog.Int("edges", len(res.Edges)),
	)
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		writeError(w, http.StatusNotFound, "history store is disabled")
		return
	}
	p := store.ListParams{Contains: r.URL.Query().Get("q"), Summary: true}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid limit %q", v))
			return
		}
		p.Limit = n
	}
	recs, err := s.archive.List(r.Context(), p)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "list analyses", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "could not list analyses")
		return
	}
	if recs == nil {
		recs = []store.Record{}
	}
	writeJSON(w, http.StatusOK, listResponse{Analyses: recs})
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.archive == nil {
		writeError(w, http.StatusNotFound, "history store is disabled")
		return
	}
	id := r.PathValue("id")
	rec, err := s.archive.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("analysis %q not found", id))
		return
	}
	if err != nil {
		s.logger.ErrorContext(r.Context(), "get analysis", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "could not load analysis")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleLive(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok", Timestamp: time.Now()})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if !s.ready() {
		writeJSON(w, http.StatusServiceUnavailable, statusResponse{Status: "loading", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok", Timestamp: time.Now()})
}
