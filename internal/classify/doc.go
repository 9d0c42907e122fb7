// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package classify inspects tool-result text and produces a verdict.
//
// Classification is an ordered rule list evaluated first-match-wins:
//
//  1. An "Exit code N" prefix — zero is success, nonzero is refined by
//     scanning the remaining text (git fatal phrasing wins over the
//     generic failure fallback).
//  2. Exit-code-independent error markers (SSH, argument validation,
//     timeouts, merge conflicts, approval gates, missing files).
//  3. Default: success. Unknown output formats are never flagged as
//     failures.
//
// Each category carries a fixed short label for collapsed badges and a
// one-line error summary (the first matching line, or a fixed category
// description). The category set and labels are a contract with the
// rendering layer; see the styles package for the tint table.
package classify
