// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/slack-go/slack"
	"golang.org/x/sync/errgroup"

	"github.com/askia-app/askia/auth"
	"github.com/askia-app/askia/cliparse"
	"github.com/askia-app/askia/models"
	"github.com/askia-app/askia/slackapi"
	"github.com/askia-app/askia/store"
	"github.com/askia-app/askia/vote"
	"github.com/askia-app/askia/view"
)

type ActionsHandler struct {
	store *store.Store
	sink  slackapi.Sink
	cfg   cliparse.Config
}

func NewActionsHandler(st *store.Store, sink slackapi.Sink, cfg cliparse.Config) *ActionsHandler {
	return &ActionsHandler{store: st, sink: sink, cfg: cfg}
}

// Actions handles POST /actions, the interactive-message endpoint: vote
// button presses and poll deletion. Like the command endpoint, domain
// failures are answered 200 with an ephemeral notice so Slack does not
// retry the callback.
func (h *ActionsHandler) Actions(w http.ResponseWriter, r *http.Request) {
	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &callback); err != nil {
		http.Error(w, "Bad payload", http.StatusBadRequest)
		return
	}
	if err := auth.VerifyToken(callback.Token, h.cfg.AppToken); err != nil {
		http.Error(w, "Access forbidden", http.StatusForbidden)
		return
	}
	if len(callback.ActionCallback.AttachmentActions) == 0 {
		http.Error(w, "Bad payload", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	nctx := noticeContext{
		TeamID:    callback.Team.ID,
		ChannelID: callback.Channel.ID,
		UserID:    callback.User.ID,
	}

	err := h.handleAction(ctx, callback)
	if err != nil {
		respondError(ctx, h.store, h.sink, err, nctx)
	}

	w.WriteHeader(http.StatusOK)
}

func (h *ActionsHandler) handleAction(ctx context.Context, callback slack.InteractionCallback) error {
	pollID, ok := view.PollID(callback.CallbackID)
	if !ok {
		return models.ErrPollNotFound
	}

	poll, err := h.store.GetPoll(pollID)
	if err != nil {
		return err
	}

	action := callback.ActionCallback.AttachmentActions[0]
	if action.Name == view.ActionDelete {
		return h.deletePoll(ctx, callback.Team.ID, callback.User.ID, poll)
	}
	return h.votePoll(ctx, callback.Team.ID, callback.User.ID, poll, action.Value)
}

// deletePoll removes the poll and its message. The store removal and the
// Slack deletion run concurrently; the poll is gone once both finish.
func (h *ActionsHandler) deletePoll(ctx context.Context, teamID, userID string, poll models.Poll) error {
	if poll.OwnerID != userID {
		return models.ErrNotPollOwner
	}

	team, err := h.store.GetTeam(teamID)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return h.store.RemovePoll(poll.ID)
	})
	g.Go(func() error {
		return h.sink.Delete(ctx, team.AccessToken, poll.ChannelID, poll.MessageTS)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("poll deleted", "poll_id", poll.ID, "owner", userID)
	return nil
}

// votePoll applies one button press and re-renders the message. The vote
// commits before the message update goes out; a failed chat.update leaves
// the committed vote in place and the next press repairs the message.
func (h *ActionsHandler) votePoll(ctx context.Context, teamID, voterID string, poll models.Poll, value string) error {
	optionID, err := strconv.Atoi(value)
	if err != nil {
		return models.ErrUnknownOption
	}

	delta, err := vote.Dispatch(voterID, poll, optionID)
	if err != nil {
		return err
	}

	updated, err := h.store.UpdatePoll(poll.ID, store.Changes{Vote: &delta})
	if err != nil {
		return err
	}

	team, err := h.store.GetTeam(teamID)
	if err != nil {
		return err
	}
	return h.sink.Update(ctx, team.AccessToken, updated.MessageTS, view.Create(updated))
}
