// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/askia-app/askia/cliparse"
	"github.com/askia-app/askia/handlers"
	"github.com/askia-app/askia/middleware"
	"github.com/askia-app/askia/slackapi"
	"github.com/askia-app/askia/store"
)

func NewRouter(st *store.Store, sink slackapi.Sink, cfg cliparse.Config, help string) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	cmdHandler := handlers.NewCommandHandler(st, sink, cfg, help)
	actionsHandler := handlers.NewActionsHandler(st, sink, cfg)
	authHandler := handlers.NewAuthHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Slack entry points
	mux.HandleFunc("POST /post", middleware.WithLogging(cmdHandler.Post))
	mux.HandleFunc("POST /actions", middleware.WithLogging(actionsHandler.Actions))
	mux.HandleFunc("GET /slack/auth/redirect", middleware.WithLogging(authHandler.Redirect))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("askia poll bot"))
	})

	return mux
}
