// Package api exposes the assistant over HTTP: one command endpoint plus
// health and version probes.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/hal9000y/gmail-voice/internal/assistant"
)

// CommandRunner runs one spoken command to a terminal result.
type CommandRunner interface {
	Handle(ctx context.Context, command, accessToken string) assistant.Result
}

// NewRouter creates the HTTP router.
func NewRouter(runner CommandRunner, version string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/version", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"version": version})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.With(RequireBearer).Post("/command", commandHandler(runner))
	})

	return r
}

type commandRequest struct {
	Command string `json:"command"`
}

func commandHandler(runner CommandRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req commandRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Command == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":   "invalid_request",
				"message": "Body must be a JSON object with a non-empty 'command' field.",
			})
			return
		}

		result := runner.Handle(r.Context(), req.Command, Credential(r.Context()))

		writeJSON(w, http.StatusOK, result)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
