// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package grouping derives the compact display model from the event stream.
//
// Build walks the chronological event list in a single forward pass
// with one event of lookahead. Consecutive Read/Glob/Grep calls merge
// into an explored-files group, a Bash call merges with its result into
// a terminal group, a WebSearch call with its parsed hits into a search
// group, and results for tools whose output restates the invocation are
// suppressed. Everything else passes through as a single item.
//
// Ordering authority is list position, never timestamps: duplicate and
// out-of-order timestamps are expected from the transport. Build is
// pure and idempotent — re-running it on the same snapshot yields the
// same items, and each item records the event IDs it consumed so the
// source sequence is always reconstructible.
package grouping
