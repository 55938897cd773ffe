// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package vote decides what a button press does to a poll's voter sets.

The policy is single-choice with toggle-to-unvote:

  - a voter appears in at most one option's voter set at any time
  - pressing a different option moves the vote there
  - pressing the option already held removes the vote

Dispatch computes a voter-relative Delta; the store applies it
transactionally so two concurrent presses by different voters are both
reflected. Nothing outside this package may infer or mutate vote state.
*/
package vote
