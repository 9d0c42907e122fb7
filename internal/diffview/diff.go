// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diffview computes display diffs between two text bodies.
package diffview

import "strings"

// DefaultContextRadius is the number of unchanged lines kept on each
// side of a collapsed run.
const DefaultContextRadius = 2

// =============================================================================
// LINE TYPES
// =============================================================================

// LineKind represents the type of a diff line.
type LineKind int

const (
	// KindContext represents unchanged lines
	KindContext LineKind = iota
	// KindRemoved represents lines present only in the old text
	KindRemoved
	// KindAdded represents lines present only in the new text
	KindAdded
	// KindCollapsed stands in for a hidden run of unchanged lines
	KindCollapsed
)

// String returns the string representation of a line kind.
func (k LineKind) String() string {
	switch k {
	case KindContext:
		return "context"
	case KindRemoved:
		return "removed"
	case KindAdded:
		return "added"
	case KindCollapsed:
		return "collapsed"
	default:
		return "unknown"
	}
}

// Prefix returns the diff prefix character for this line kind.
func (k LineKind) Prefix() string {
	switch k {
	case KindAdded:
		return "+"
	case KindRemoved:
		return "-"
	default:
		return " "
	}
}

// Line is a single line in a computed diff. OldLine and NewLine are
// 1-based positions in the respective original arrays; 0 means the line
// does not exist on that side (added lines have no old number, removed
// lines no new number, collapsed lines neither).
type Line struct {
	Kind        LineKind
	OldLine     int
	NewLine     int
	Text        string
	HiddenCount int // set only for KindCollapsed
}

// =============================================================================
// DIFF COMPUTATION
// =============================================================================

// Compute returns the display diff between two text bodies with the
// default context radius.
//
// This is deliberately not a minimal-edit-distance diff: after trimming
// the common prefix and suffix, every remaining old line is emitted as
// removed and every remaining new line as added. The output is cheap,
// deterministic, and stable for streaming re-renders; an LCS diff would
// change visible output for any edit that is not a pure prefix/suffix
// change.
func Compute(oldText, newText string) []Line {
	return ComputeRadius(oldText, newText, DefaultContextRadius)
}

// ComputeRadius is Compute with an explicit context radius.
func ComputeRadius(oldText, newText string, radius int) []Line {
	if radius < 0 {
		radius = DefaultContextRadius
	}

	oldLines := splitLines(oldText)
	newLines := splitLines(newText)
	oldLines, newLines = normalizeIndent(oldLines, newLines)

	prefix := commonPrefix(oldLines, newLines)
	suffix := commonSuffix(oldLines, newLines, prefix)

	var result []Line

	for i := 0; i < prefix; i++ {
		result = append(result, Line{
			Kind:    KindContext,
			OldLine: i + 1,
			NewLine: i + 1,
			Text:    oldLines[i],
		})
	}

	for i := prefix; i < len(oldLines)-suffix; i++ {
		result = append(result, Line{
			Kind:    KindRemoved,
			OldLine: i + 1,
			Text:    oldLines[i],
		})
	}

	for j := prefix; j < len(newLines)-suffix; j++ {
		result = append(result, Line{
			Kind:    KindAdded,
			NewLine: j + 1,
			Text:    newLines[j],
		})
	}

	for k := 0; k < suffix; k++ {
		oldIdx := len(oldLines) - suffix + k
		newIdx := len(newLines) - suffix + k
		result = append(result, Line{
			Kind:    KindContext,
			OldLine: oldIdx + 1,
			NewLine: newIdx + 1,
			Text:    oldLines[oldIdx],
		})
	}

	return collapseContext(result, radius)
}

// splitLines splits content into lines, dropping the empty trailing
// element produced by a final newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// commonPrefix counts equal lines from the start of both arrays.
func commonPrefix(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// commonSuffix counts equal lines from the end of both arrays without
// overlapping the prefix.
func commonSuffix(a, b []string, prefix int) int {
	limit := min(len(a), len(b)) - prefix
	n := 0
	for n < limit && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}

// =============================================================================
// INDENT NORMALIZATION
// =============================================================================

// normalizeIndent prepares both line arrays for narrow-width display:
// tabs become two spaces, the common leading-space count is stripped,
// and the remaining indentation is halved. The minimum is computed over
// the non-blank lines of both arrays jointly so added and removed lines
// stay vertically aligned with their unchanged context.
func normalizeIndent(a, b []string) ([]string, []string) {
	a = expandTabs(a)
	b = expandTabs(b)

	minIndent := -1
	for _, lines := range [][]string{a, b} {
		for _, line := range lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			n := leadingSpaces(line)
			if minIndent < 0 || n < minIndent {
				minIndent = n
			}
		}
	}
	if minIndent < 0 {
		minIndent = 0
	}

	return reindent(a, minIndent), reindent(b, minIndent)
}

// expandTabs converts leading and embedded tabs to two spaces.
func expandTabs(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.ReplaceAll(line, "\t", "  ")
	}
	return out
}

// reindent strips the shared indent from each line and halves what
// remains (integer division), compressing 4-space source indentation
// into 2-space display indentation.
func reindent(lines []string, minIndent int) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			// Whitespace-only line: nothing to align.
			out[i] = ""
			continue
		}
		n := leadingSpaces(line)
		strip := minIndent
		if strip > n {
			strip = n
		}
		remaining := n - strip
		out[i] = strings.Repeat(" ", remaining/2) + line[n:]
	}
	return out
}

// leadingSpaces counts the leading space characters of a line.
func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}

// =============================================================================
// CONTEXT COLLAPSING
// =============================================================================

// collapseContext replaces the interior of long unchanged runs with a
// single placeholder line. A run longer than 2*radius+1 keeps its first
// and last radius lines; the hidden interior count rides on the
// placeholder.
func collapseContext(lines []Line, radius int) []Line {
	maxRun := 2*radius + 1

	var out []Line
	i := 0
	for i < len(lines) {
		if lines[i].Kind != KindContext {
			out = append(out, lines[i])
			i++
			continue
		}

		j := i
		for j < len(lines) && lines[j].Kind == KindContext {
			j++
		}
		run := lines[i:j]

		if len(run) <= maxRun {
			out = append(out, run...)
		} else {
			out = append(out, run[:radius]...)
			out = append(out, Line{
				Kind:        KindCollapsed,
				HiddenCount: len(run) - 2*radius,
			})
			out = append(out, run[len(run)-radius:]...)
		}
		i = j
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
