// Package api exposes the solve pipeline over HTTP.
//
// The server wraps a [pipeline.Runner] with a small JSON API:
//
//	POST /api/v1/solve   solve an instance, optionally with a page plan
//	GET  /healthz        liveness probe
//	GET  /version        build information
//
// Infeasible instances are valid results, not errors: the solve endpoint
// responds 200 with feasible=false. Malformed or invalid instances respond
// 400 with a structured error body.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/pagestack/pkg/album"
	"github.com/matzehuels/pagestack/pkg/buildinfo"
	perrors "github.com/matzehuels/pagestack/pkg/errors"
	"github.com/matzehuels/pagestack/pkg/observability"
	"github.com/matzehuels/pagestack/pkg/pipeline"
)

// DefaultAddr is the default listen address for the API server.
const DefaultAddr = ":8487"

// Server serves the solve API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// NewServer creates an API server around the given runner.
func NewServer(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(s.instrument)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully with a short drain window.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("api server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// =============================================================================
// Request / Response Types
// =============================================================================

// SolveRequest is the request body for POST /api/v1/solve.
type SolveRequest struct {
	Instance *album.Instance `json:"instance"`
	Capacity int             `json:"capacity,omitempty"`
	WithPlan bool            `json:"with_plan,omitempty"`
	NoCache  bool            `json:"no_cache,omitempty"`
	Refresh  bool            `json:"refresh,omitempty"`
}

// SolveResponse is the response body for POST /api/v1/solve.
type SolveResponse struct {
	RunID        string     `json:"run_id"`
	Pages        int        `json:"pages"`
	Feasible     bool       `json:"feasible"`
	Plan         [][]int    `json:"plan,omitempty"`
	InstanceHash string     `json:"instance_hash"`
	Cached       bool       `json:"cached"`
	Stats        SolveStats `json:"stats"`
}

// SolveStats summarizes a solve run for API consumers.
type SolveStats struct {
	Photos      int     `json:"photos"`
	Constraints int     `json:"constraints"`
	SolveMillis float64 `json:"solve_ms"`
}

// ErrorResponse is the body for error responses.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
		"built":   buildinfo.Date,
	})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, perrors.New(perrors.ErrCodeInvalidFormat, "malformed request body"))
		return
	}
	if req.Instance == nil {
		s.writeError(w, r, http.StatusBadRequest, perrors.New(perrors.ErrCodeInvalidInput, "instance is required"))
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Instance: req.Instance,
		Capacity: req.Capacity,
		WithPlan: req.WithPlan,
		NoCache:  req.NoCache,
		Refresh:  req.Refresh,
		Logger:   s.logger,
	})
	if err != nil {
		s.writeError(w, r, statusForError(err), err)
		return
	}

	writeJSON(w, http.StatusOK, SolveResponse{
		RunID:        result.RunID,
		Pages:        result.Pages,
		Feasible:     result.Feasible,
		Plan:         result.Plan,
		InstanceHash: result.InstanceHash,
		Cached:       result.CacheInfo.SolveHit,
		Stats: SolveStats{
			Photos:      result.Stats.PhotoCount,
			Constraints: result.Stats.ConstraintCount,
			SolveMillis: float64(result.Stats.SolveTime.Microseconds()) / 1000.0,
		},
	})
}

// =============================================================================
// Helpers
// =============================================================================

// statusForError maps structured error codes to HTTP status codes.
func statusForError(err error) int {
	switch perrors.GetCode(err) {
	case perrors.ErrCodeInvalidInput, perrors.ErrCodeInvalidCapacity, perrors.ErrCodeInvalidPhoto,
		perrors.ErrCodeInvalidFormat, perrors.ErrCodeInvalidPath, perrors.ErrCodeUnsupported:
		return http.StatusBadRequest
	case perrors.ErrCodeNotFound, perrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	observability.API().OnError(r.Context(), r.Method, r.URL.Path, err)
	s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)

	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{
		Code:    string(perrors.GetCode(err)),
		Message: perrors.UserMessage(err),
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// instrument records request events via observability hooks and logs timing.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.API().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		observability.API().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), elapsed)
		s.logger.Debug("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", elapsed)
	})
}
