// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package view projects polls into Slack message payloads.

Create renders the question plus one button per option (labeled with the
live vote count) and a delete button. Rendering is a pure, deterministic
projection of poll state: it never inspects or infers vote semantics, it
just counts voter sets, and identical poll state renders byte-identically.

Notice maps the error taxonomy in models to the one-line ephemeral text a
user sees when something goes wrong.
*/
package view
