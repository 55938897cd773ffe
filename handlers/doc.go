// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the bot.

# Handler Types

Each handler is a struct with store, sink, and config dependencies:

  - CommandHandler: the /post slash-command endpoint (create poll, help)
  - ActionsHandler: the /actions endpoint (vote buttons, delete button)
  - AuthHandler: the OAuth install redirect

Handlers are created via constructor functions:

	cmdHandler := handlers.NewCommandHandler(st, sink, cfg, help)

# Command Flow

	/askia "Question?" "A" "B"  →  parse → build poll → store → post
	                               message → save message timestamp
	/askia --help               →  ephemeral help text

# Action Flow

	vote button  →  get poll → dispatch delta → store update → re-render
	                → chat.update
	delete button → ownership check → store remove + chat.delete

# Error Policy

Slack retries any non-200 response, so domain failures (bad command, poll
gone, not the owner, unknown option, transport errors) are answered 200
with an ephemeral notice to the acting user. Only malformed payloads and
verification-token mismatches get 400/403. A failure while sending the
notice itself is logged and swallowed.
*/
package handlers
