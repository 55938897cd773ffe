// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package slackapi is the outbound boundary to the Slack Web API.

Sink names the four operations the bot performs (post, update, delete,
ephemeral post); Client implements them with github.com/slack-go/slack.
Handlers hold a Sink, tests substitute a recorder.

Calls are at-most-once per invocation: failures surface as ordinary errors
and nothing here retries. In particular a failed chat.update does not roll
back an already-committed vote change; rendering is idempotent, so the
next vote repairs the message.
*/
package slackapi
