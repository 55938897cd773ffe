// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package slackapi

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"

	"github.com/askia-app/askia/view"
)

// Sink is the outbound message boundary the handlers depend on. Every call
// is a single fallible network operation; callers never retry through it.
// The token is passed per call because it belongs to the workspace, not
// the process.
type Sink interface {
	// Post sends a new message and returns its timestamp handle.
	Post(ctx context.Context, token string, msg view.Message) (string, error)
	// Update rewrites the message identified by channel and timestamp.
	Update(ctx context.Context, token, timestamp string, msg view.Message) error
	// Delete removes the message identified by channel and timestamp.
	Delete(ctx context.Context, token, channel, timestamp string) error
	// Ephemeral sends text visible only to one user in a channel.
	Ephemeral(ctx context.Context, token, channel, user, text string) error
}

// Client is the production Sink backed by the Slack Web API.
type Client struct{}

var _ Sink = Client{}

func (Client) Post(ctx context.Context, token string, msg view.Message) (string, error) {
	api := slack.New(token)
	_, ts, err := api.PostMessageContext(ctx, msg.Channel,
		slack.MsgOptionText(msg.Text, false),
		slack.MsgOptionAttachments(msg.Attachments...),
	)
	if err != nil {
		return "", fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return ts, nil
}

func (Client) Update(ctx context.Context, token, timestamp string, msg view.Message) error {
	api := slack.New(token)
	_, _, _, err := api.UpdateMessageContext(ctx, msg.Channel, timestamp,
		slack.MsgOptionText(msg.Text, false),
		slack.MsgOptionAttachments(msg.Attachments...),
	)
	if err != nil {
		return fmt.Errorf("chat.update failed: %w", err)
	}
	return nil
}

func (Client) Delete(ctx context.Context, token, channel, timestamp string) error {
	api := slack.New(token)
	if _, _, err := api.DeleteMessageContext(ctx, channel, timestamp); err != nil {
		return fmt.Errorf("chat.delete failed: %w", err)
	}
	return nil
}

func (Client) Ephemeral(ctx context.Context, token, channel, user, text string) error {
	api := slack.New(token)
	_, err := api.PostEphemeralContext(ctx, channel, user,
		slack.MsgOptionText(text, false),
	)
	if err != nil {
		return fmt.Errorf("chat.postEphemeral failed: %w", err)
	}
	return nil
}
