// Package server exposes the voice pipeline over HTTP for the hosting UI.
package server

import (
	"io"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/citro-voice-kernel/internal/jsonx"
	"github.com/citro-voice-kernel/internal/pipeline"
	"github.com/citro-voice-kernel/internal/resolver"
)

// commandRequest is the body of POST /api/command.
type commandRequest struct {
	Transcript    string `json:"transcript"`
	CurrentPage   string `json:"currentPage"`
	UserID        string `json:"userId"`
	Role          string `json:"role"`
	Authenticated bool   `json:"isAuthenticated"`
}

// Server wires the pipeline into HTTP handlers.
type Server struct {
	pipeline       *pipeline.Pipeline
	logger         *zap.Logger
	allowedOrigins []string
}

// New creates a server around a pipeline.
func New(p *pipeline.Pipeline, allowedOrigins []string, logger *zap.Logger) *Server {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return &Server{
		pipeline:       p,
		logger:         logger.Named("server"),
		allowedOrigins: allowedOrigins,
	}
}

// Handler builds the routed handler with CORS and request logging applied.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/command", s.handleCommand).Methods("POST")
	r.HandleFunc("/api/stats", s.handleStats).Methods("GET")
	r.HandleFunc("/health", s.handleHealth).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins(s.allowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	return cors(s.requestLogger(r))
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp := s.pipeline.Process(r.Context(), req.Transcript, resolver.Context{
		Page:          req.CurrentPage,
		UserID:        req.UserID,
		Role:          req.Role,
		Authenticated: req.Authenticated,
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    resp,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.pipeline.Stats())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	data, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return err
	}
	return jsonx.Unmarshal(data, v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = jsonx.Write(w, v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"success": false, "error": msg})
}
