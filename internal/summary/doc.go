// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package summary derives one-line descriptions from tool output.
//
// The summarizers are ordered rule lists evaluated first-match-wins,
// specificity descending: structured markers (build results, git
// trailers, exit codes) are tried before the generic line-count and
// first-line fallbacks. Every summarizer is total — any input yields a
// summary, "Completed" at worst.
package summary
