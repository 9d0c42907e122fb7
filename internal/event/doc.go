// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package event defines the chronological message-stream records the
// display pipeline consumes.
//
// # Key Types
//
//   - Role: sender/kind of a stream entry (user, assistant, toolUse, ...)
//   - Event: one immutable entry, ordered by stream position
//   - Value: tagged JSON value union used for tool argument maps
//
// Events arrive over an external transport; this package carries no I/O.
// Timestamps are advisory only — duplicate or out-of-order timestamps are
// expected under network jitter, and consumers must order by position.
package event
