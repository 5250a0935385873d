// Package server exposes read-only aggregate queries over the persisted
// activity and mention data for dashboards. It computes nothing itself;
// the store guarantees the underlying rows.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/ccmoon/moonpulse/internal/store"
)

// Server provides the HTTP API.
type Server struct {
	store store.Store
	port  int
	log   *logrus.Logger
}

// New creates an HTTP server.
func New(s store.Store, port int, log *logrus.Logger) *Server {
	if port == 0 {
		port = 8080
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{store: s, port: port, log: log}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/v1/leaderboard", s.handleLeaderboard)
	mux.HandleFunc("/api/v1/users", s.handleUsers)
	mux.HandleFunc("/api/v1/sentiment/daily", s.handleDailySentiment)
	mux.HandleFunc("/api/v1/activity", s.handleActivity)

	addr := fmt.Sprintf(":%d", s.port)
	s.log.WithField("addr", addr).Info("server listening")
	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	epoch := r.URL.Query().Get("epoch")
	rows, err := s.store.ProjectLeaderboard(r.Context(), epoch)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"epoch": epoch,
		"data":  rows,
		"count": len(rows),
	})
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	rows, err := s.store.UserSummary(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":  rows,
		"count": len(rows),
	})
}

func (s *Server) handleDailySentiment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	rows, err := s.store.DailySentiment(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":  rows,
		"count": len(rows),
	})
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	opts := store.ListOpts{Limit: 100}
	if epoch := r.URL.Query().Get("epoch"); epoch != "" {
		opts.Epoch = epoch
	}
	if since := r.URL.Query().Get("since"); since != "" {
		opts.Since = since
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			opts.Limit = n
		}
	}

	rows, err := s.store.ListActivity(r.Context(), opts)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":  rows,
		"count": len(rows),
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
