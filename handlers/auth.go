// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/slack-go/slack"

	"github.com/askia-app/askia/cliparse"
	"github.com/askia-app/askia/models"
	"github.com/askia-app/askia/store"
)

type AuthHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewAuthHandler(st *store.Store, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{store: st, cfg: cfg}
}

// Redirect handles GET /slack/auth/redirect, the OAuth install callback.
// It exchanges the temporary code for a workspace access token and saves
// it; every later outbound call for that workspace uses the saved token.
func (h *AuthHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	if h.cfg.ClientID == "" || h.cfg.ClientSecret == "" {
		http.Error(w, "Missing CLIENT_ID or CLIENT_SECRET", http.StatusInternalServerError)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "Missing code", http.StatusBadRequest)
		return
	}

	resp, err := slack.GetOAuthResponseContext(r.Context(), http.DefaultClient,
		h.cfg.ClientID, h.cfg.ClientSecret, code, "")
	if err != nil {
		slog.Error("oauth exchange failed", "error", err)
		// 200 with a message, matching what the Slack redirect page expects.
		w.Write([]byte("Slack error: " + err.Error()))
		return
	}

	if err := h.store.SaveTeam(models.Team{ID: resp.TeamID, AccessToken: resp.AccessToken}); err != nil {
		slog.Error("failed to save team", "error", err, "team", resp.TeamID)
		http.Error(w, "Failed to save workspace", http.StatusInternalServerError)
		return
	}

	slog.Info("workspace installed", "team", resp.TeamID)
	w.Write([]byte("Success!"))
}
