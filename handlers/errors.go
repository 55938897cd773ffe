// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"

	"github.com/askia-app/askia/slackapi"
	"github.com/askia-app/askia/store"
	"github.com/askia-app/askia/view"
)

// noticeContext identifies the acting user a failure notice targets. The
// notice goes to that user only, never to the channel at large.
type noticeContext struct {
	TeamID    string
	ChannelID string
	UserID    string
}

// respondError turns an internal failure into an ephemeral notice. It
// never fails itself: if the team lookup or the send breaks, the failure
// is logged and swallowed so the caller can still acknowledge the request
// and Slack does not retry it forever.
func respondError(ctx context.Context, st *store.Store, sink slackapi.Sink, err error, nctx noticeContext) {
	slog.Error("request failed",
		"error", err,
		"team", nctx.TeamID,
		"channel", nctx.ChannelID,
		"user", nctx.UserID,
	)

	team, terr := st.GetTeam(nctx.TeamID)
	if terr != nil {
		slog.Error("failed to resolve team for error notice", "error", terr, "team", nctx.TeamID)
		return
	}

	if serr := sink.Ephemeral(ctx, team.AccessToken, nctx.ChannelID, nctx.UserID, view.Notice(err)); serr != nil {
		slog.Error("failed to send error notice", "error", serr, "team", nctx.TeamID)
	}
}
