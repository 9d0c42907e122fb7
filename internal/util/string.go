// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides string helpers shared by the pipeline packages.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// =============================================================================
// TRUNCATION
// =============================================================================

// TruncateRunes caps a string at maxRunes characters, appending "..."
// when anything was cut. Counts runes rather than bytes, so multi-byte
// text never splits mid-character.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// TruncateWidth truncates a string to a maximum display width.
// Double-width characters (CJK) count as two columns.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// =============================================================================
// LINE HELPERS
// =============================================================================

// LineCount returns the number of lines in a string. The empty string
// counts as zero lines.
func LineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// FirstLine returns the first line of a string, trimmed of surrounding
// whitespace.
func FirstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// LineAt returns the n-th line (0-based) of a string, trimmed, or ""
// when the string has fewer lines.
func LineAt(s string, n int) string {
	lines := strings.Split(s, "\n")
	if n < 0 || n >= len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[n])
}
