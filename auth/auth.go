// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
)

var ErrBadToken = errors.New("verification token mismatch")

// VerifyToken checks the verification token Slack sent against the one
// configured for the app. Constant-time comparison; the token is a shared
// secret even if a legacy one.
func VerifyToken(got, want string) error {
	if want == "" || !hmac.Equal([]byte(got), []byte(want)) {
		return ErrBadToken
	}
	return nil
}
