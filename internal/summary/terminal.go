// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package summary derives one-line descriptions from tool output.
package summary

import (
	"regexp"
	"strings"

	"github.com/jeranaias/agentview/internal/util"
)

// DefaultWidth caps summary lines for the collapsed display row.
const DefaultWidth = 60

// longOutputLines is the line count above which output is summarized as
// a bare count instead of its first line.
const longOutputLines = 5

// Build result markers emitted by xcodebuild.
const (
	buildSucceededMarker = "BUILD SUCCEEDED"
	buildFailedMarker    = "BUILD FAILED"
)

// =============================================================================
// TERMINAL SUMMARY
// =============================================================================

// terminalRule is one step of the summary policy: produce returns the
// summary and true when the rule applies.
type terminalRule func(text string, width int) (string, bool)

// terminalRules is evaluated in order, first match wins. The order is
// specificity-descending: structured signals (build markers, git output,
// exit codes) before generic line-count and first-line fallbacks.
var terminalRules = []terminalRule{
	emptyRule,
	buildMarkerRule,
	gitRule,
	exitCodeRule,
	lineCountRule,
	firstLineRule,
}

// Terminal derives a one-line summary from terminal output using the
// default display width.
func Terminal(text string) string {
	return TerminalWidth(text, DefaultWidth)
}

// TerminalWidth derives a one-line summary capped at the given width.
// It is total: every input produces a summary, "Completed" at worst.
func TerminalWidth(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	for _, r := range terminalRules {
		if s, ok := r(text, width); ok {
			return s
		}
	}
	return "Completed"
}

// =============================================================================
// RULES
// =============================================================================

func emptyRule(text string, _ int) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "Completed", true
	}
	return "", false
}

func buildMarkerRule(text string, _ int) (string, bool) {
	if strings.Contains(text, buildSucceededMarker) {
		return buildSucceededMarker, true
	}
	if strings.Contains(text, buildFailedMarker) {
		return buildFailedMarker, true
	}
	return "", false
}

func gitRule(text string, _ int) (string, bool) {
	return Git(text)
}

// exitCodeRule summarizes "Exit code N" output by its second line,
// falling back to the exit-code line itself when there is no second
// line.
func exitCodeRule(text string, width int) (string, bool) {
	if !strings.HasPrefix(text, "Exit code ") {
		return "", false
	}
	if second := util.LineAt(text, 1); second != "" {
		return util.TruncateWidth(second, width), true
	}
	return util.TruncateWidth(util.FirstLine(text), width), true
}

func lineCountRule(text string, _ int) (string, bool) {
	if n := util.LineCount(text); n > longOutputLines {
		return util.IntSuffix(n, "line"), true
	}
	return "", false
}

func firstLineRule(text string, width int) (string, bool) {
	if first := util.FirstLine(text); first != "" {
		return util.TruncateWidth(first, width), true
	}
	return "", false
}

// =============================================================================
// GIT SUMMARY
// =============================================================================

// filesChangedRe matches git commit/diff --stat trailers like
// "3 files changed, 10 insertions(+), 2 deletions(-)".
var filesChangedRe = regexp.MustCompile(`\d+ files? changed`)

// Git summarizes recognizable git output. The bool result reports
// whether the text looked like git output at all.
func Git(text string) (string, bool) {
	if m := filesChangedRe.FindString(text); m != "" {
		return m, true
	}
	if hasPushArrow(text) {
		return "Pushed to remote", true
	}
	if strings.Contains(text, "working tree clean") {
		return "Working tree clean", true
	}
	if strings.Contains(text, "Changes not staged for commit") ||
		strings.Contains(text, "Changes to be committed") {
		return "Uncommitted changes", true
	}
	return "", false
}

// hasPushArrow detects git push ref lines like
// "   d1a2b3c..e4f5a6b  main -> main".
func hasPushArrow(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, " -> ") && strings.Contains(line, "..") {
			return true
		}
	}
	return false
}
