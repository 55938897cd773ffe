// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"fmt"
	"strconv"

	"github.com/slack-go/slack"

	"github.com/askia-app/askia/models"
)

// CallbackPrefix namespaces poll callback IDs so the actions endpoint can
// recover the poll ID from an interaction payload.
const CallbackPrefix = "askia_"

// Slack rejects attachments with more than five actions, so options chunk
// into attachments of at most this many buttons.
const maxActionsPerAttachment = 5

const (
	ActionVote   = "vote"
	ActionDelete = "delete"
)

// Message is the outbound message representation: where it goes and what
// it shows. It is a pure projection of poll state.
type Message struct {
	Channel     string
	Text        string
	Attachments []slack.Attachment
}

// Create renders a poll into its message. One button per option in option
// ID order, labeled with the option text and its current vote count, then
// a delete button on its own attachment. The delete button is visible to
// everyone; ownership is enforced by the actions handler, not the view.
//
// Create is deterministic: the same poll state always renders to an
// identical Message, which is what makes message updates idempotent.
func Create(poll models.Poll) Message {
	callbackID := CallbackPrefix + poll.ID

	var attachments []slack.Attachment
	for start := 0; start < len(poll.Options); start += maxActionsPerAttachment {
		end := min(start+maxActionsPerAttachment, len(poll.Options))

		actions := make([]slack.AttachmentAction, 0, end-start)
		for _, opt := range poll.Options[start:end] {
			actions = append(actions, slack.AttachmentAction{
				Name:  ActionVote,
				Text:  fmt.Sprintf("%s (%d)", opt.Label, len(opt.Voters)),
				Type:  "button",
				Value: strconv.Itoa(opt.ID),
			})
		}
		attachments = append(attachments, slack.Attachment{
			CallbackID: callbackID,
			Fallback:   "This client cannot display poll buttons.",
			Actions:    actions,
		})
	}

	attachments = append(attachments, slack.Attachment{
		CallbackID: callbackID,
		Fallback:   "This client cannot display poll buttons.",
		Actions: []slack.AttachmentAction{{
			Name:  ActionDelete,
			Text:  "Delete poll",
			Type:  "button",
			Style: "danger",
			Value: ActionDelete,
		}},
	})

	return Message{
		Channel:     poll.ChannelID,
		Text:        poll.Question,
		Attachments: attachments,
	}
}

// PollID extracts the poll ID from an interaction callback ID, or false
// when the callback does not belong to a poll message.
func PollID(callbackID string) (string, bool) {
	if len(callbackID) <= len(CallbackPrefix) || callbackID[:len(CallbackPrefix)] != CallbackPrefix {
		return "", false
	}
	return callbackID[len(CallbackPrefix):], true
}
