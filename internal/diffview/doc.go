// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diffview computes display diffs between two text bodies.
//
// The diff is intentionally simple: both texts are split into lines,
// indentation is normalized jointly for narrow-width display, the
// common prefix and suffix are trimmed as context, and everything in
// between is emitted as removals followed by additions. Long unchanged
// runs collapse into a placeholder carrying the hidden-line count.
//
// # Key Types
//
//   - LineKind: context, removed, added, or collapsed
//   - Line: one diff line with 1-based old/new line numbers (0 = absent)
//   - Engine: content-hash memoization around Compute
//   - EditPayload: before/after strings parsed from Edit tool content
//
// # Usage
//
//	lines := diffview.Compute(oldText, newText)
//
//	eng := diffview.NewEngine()
//	lines = eng.Diff(oldText, newText) // cached per content pair
package diffview
