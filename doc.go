// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Askia poll bot.

Askia is a Slack slash-command bot: /askia posts an interactive poll in
the channel, users vote by pressing buttons (single choice, press again
to un-vote), and the poll's creator can delete it.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=askia.db SLACK_APP_TOKEN=... go run main.go

Or with flags:

	go run main.go -p 3000 -d askia.db -app-token ...

A .env file in the working directory is loaded first.

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file or PostgreSQL connection string
  - SLACK_APP_TOKEN (-app-token): slash-command verification token

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - SLACK_CLIENT_ID / SLACK_CLIENT_SECRET: OAuth install credentials
  - SSL_CERT / SSL_KEY: serve TLS directly instead of plain HTTP
  - HELP_FILE (-help-file): markdown for /askia --help (default: Help.md)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - command: slash-command text parsing (quote-aware)
  - models: domain types and the error taxonomy
  - store: poll and team persistence with per-poll transactional updates
  - vote: single-choice/toggle vote dispatch
  - view: poll-to-message rendering and error notices
  - slackapi: outbound Slack Web API sink
  - handlers: HTTP request handlers (/post, /actions, OAuth redirect)
  - router: route definitions using Go 1.22+ routing
  - middleware: request logging
  - auth: verification-token checking
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
