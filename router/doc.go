// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for the bot.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, sink, cfg, help)

# Endpoints

Health:

	GET /health

Slack entry points:

	POST /post                - slash command (/askia ...)
	POST /actions             - interactive-message button callbacks
	GET  /slack/auth/redirect - OAuth install redirect

# Handler Initialization

The router creates handler instances with dependency injection:

	cmdHandler := handlers.NewCommandHandler(st, sink, cfg, help)
	actionsHandler := handlers.NewActionsHandler(st, sink, cfg)
	authHandler := handlers.NewAuthHandler(st, cfg)

All handlers receive the store, the outbound Slack sink, and configuration.
*/
package router
