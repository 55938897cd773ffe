// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package command

import (
	"strings"
	"unicode"

	"github.com/askia-app/askia/models"
)

// Args is the parsed form of a slash-command invocation. When Help is set
// the Spec is zero and the caller should show the usage text instead of
// creating a poll.
type Args struct {
	Help bool
	Spec models.PollSpec
}

// Parse turns the raw slash-command text into Args. The first token is the
// question, every following token is an option label. Tokens split on
// whitespace; double or single quotes group words into a single token, so
// labels may contain spaces:
//
//	/askia "Lunch?" "Pizza place" Sushi
//
// A leading --help (or -h) short-circuits to a help request. Parse is pure:
// the same text always yields the same result.
func Parse(text string) (Args, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "--help" || trimmed == "-h" ||
		strings.HasPrefix(trimmed, "--help ") || strings.HasPrefix(trimmed, "-h ") {
		return Args{Help: true}, nil
	}

	tokens := tokenize(trimmed)
	if len(tokens) == 0 || tokens[0] == "" {
		return Args{}, models.ErrMissingQuestion
	}

	// Option labels must be distinct and non-empty; first occurrence wins.
	seen := make(map[string]bool)
	options := make([]string, 0, len(tokens)-1)
	for _, tok := range tokens[1:] {
		if tok == "" || seen[tok] {
			continue
		}
		seen[tok] = true
		options = append(options, tok)
	}
	if len(options) < 2 {
		return Args{}, models.ErrTooFewOptions
	}

	return Args{Spec: models.PollSpec{Question: tokens[0], Options: options}}, nil
}

// tokenize splits text on whitespace, honoring double and single quotes.
// A quote of one kind is literal inside the other. An unterminated quote
// runs to the end of the text rather than failing.
func tokenize(text string) []string {
	var tokens []string
	var current strings.Builder
	var quote rune // 0 when outside quotes
	inToken := false

	for _, r := range text {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inToken = true
		case unicode.IsSpace(r):
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}
	if inToken {
		tokens = append(tokens, current.String())
	}
	return tokens
}
