// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth verifies that inbound requests really come from Slack.

# Verification Token

Slack sends the app's verification token with every slash command and
interactive callback. Handlers check it before doing anything else:

	if err := auth.VerifyToken(cmd.Token, cfg.AppToken); err != nil {
		http.Error(w, "Access forbidden", http.StatusForbidden)
		return
	}

The comparison is constant-time. An empty configured token rejects
everything rather than accepting everything.
*/
package auth
