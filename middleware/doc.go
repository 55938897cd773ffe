// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware for the bot's routes.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("POST /post", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

Slack retries slash commands that take longer than a few seconds, so the
completion log line is the first thing to check when polls show up twice.
*/
package middleware
