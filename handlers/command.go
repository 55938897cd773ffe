// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/slack-go/slack"

	"github.com/askia-app/askia/auth"
	"github.com/askia-app/askia/cliparse"
	"github.com/askia-app/askia/command"
	"github.com/askia-app/askia/models"
	"github.com/askia-app/askia/slackapi"
	"github.com/askia-app/askia/store"
	"github.com/askia-app/askia/view"
)

type CommandHandler struct {
	store *store.Store
	sink  slackapi.Sink
	cfg   cliparse.Config
	help  string
}

func NewCommandHandler(st *store.Store, sink slackapi.Sink, cfg cliparse.Config, help string) *CommandHandler {
	return &CommandHandler{store: st, sink: sink, cfg: cfg, help: help}
}

// Post handles POST /post, the slash-command endpoint. Slack expects a
// 200 within a few seconds or it retries, so every domain failure is
// answered with 200 plus an ephemeral notice; only a bad payload or a bad
// verification token gets a non-200.
func (h *CommandHandler) Post(w http.ResponseWriter, r *http.Request) {
	cmd, err := slack.SlashCommandParse(r)
	if err != nil {
		http.Error(w, "Bad payload", http.StatusBadRequest)
		return
	}
	if err := auth.VerifyToken(cmd.Token, h.cfg.AppToken); err != nil {
		http.Error(w, "Access forbidden", http.StatusForbidden)
		return
	}

	ctx := r.Context()
	args, err := command.Parse(cmd.Text)
	if err == nil {
		if args.Help {
			err = h.showHelp(ctx, cmd.TeamID, cmd.ChannelID, cmd.UserID)
		} else {
			err = h.showPoll(ctx, cmd.TeamID, cmd.ChannelID, cmd.UserID, args.Spec)
		}
	}
	if err != nil {
		respondError(ctx, h.store, h.sink, err, noticeContext{
			TeamID:    cmd.TeamID,
			ChannelID: cmd.ChannelID,
			UserID:    cmd.UserID,
		})
	}

	w.WriteHeader(http.StatusOK)
}

// showPoll runs the create flow: build the poll, persist it, post the
// rendered message, then attach the message timestamp to the stored poll.
func (h *CommandHandler) showPoll(ctx context.Context, teamID, channelID, userID string, spec models.PollSpec) error {
	team, err := h.store.GetTeam(teamID)
	if err != nil {
		return err
	}

	poll, err := h.store.CreatePoll(models.NewPoll(userID, channelID, spec))
	if err != nil {
		return err
	}

	ts, err := h.sink.Post(ctx, team.AccessToken, view.Create(poll))
	if err != nil {
		return err
	}

	if _, err := h.store.UpdatePoll(poll.ID, store.Changes{MessageTS: &ts}); err != nil {
		return err
	}

	slog.Info("poll created", "poll_id", poll.ID, "owner", userID, "channel", channelID)
	return nil
}

func (h *CommandHandler) showHelp(ctx context.Context, teamID, channelID, userID string) error {
	team, err := h.store.GetTeam(teamID)
	if err != nil {
		return err
	}
	return h.sink.Ephemeral(ctx, team.AccessToken, channelID, userID, h.help)
}
