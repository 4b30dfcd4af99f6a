// Package server exposes a single game session over HTTP: commands in,
// narration out. It is the non-interactive boundary, so quit takes
// effect immediately with no confirmation step.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/nathoo/shmoopland/engine"
)

// Server serializes access to one Game. The engine is single-writer;
// the mutex makes concurrent HTTP requests take turns.
type Server struct {
	game   *engine.Game
	logger *slog.Logger
	mu     sync.Mutex
}

// New creates a server around a game session.
func New(g *engine.Game, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{game: g, logger: logger}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/command", s.handleCommand)
	mux.HandleFunc("GET /api/state", s.handleState)
	return s.logged(mux)
}

// ListenAndServe runs the server until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("listening", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

type commandRequest struct {
	Command string `json:"command"`
}

// commandResponse carries the narration plus the post-command state,
// so stateless clients can render a view from a single round trip.
type commandResponse struct {
	Message   string   `json:"message"`
	Output    []string `json:"output"`
	Location  string   `json:"location"`
	Inventory []string `json:"inventory"`
	GameOver  bool     `json:"game_over"`
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Command == "" {
		http.Error(w, "command must not be empty", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	result := s.game.Submit(req.Command)
	world := s.game.World()
	resp := commandResponse{
		Message:   strings.Join(result.Output, "\n"),
		Output:    result.Output,
		Location:  world.Location,
		Inventory: append([]string{}, world.Inventory...),
		GameOver:  result.GameOver,
	}
	s.mu.Unlock()

	writeJSON(w, resp)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.game.GetState()
	s.mu.Unlock()

	writeJSON(w, snap)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encoding response", http.StatusInternalServerError)
	}
}

// logged wraps a handler with per-request logging.
func (s *Server) logged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}
