// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package classify inspects tool-result text and produces a verdict.
package classify

import (
	"strconv"
	"strings"
	"sync"

	"github.com/jeranaias/agentview/internal/util"
)

// exitCodePrefix marks shell results that report their exit status on
// the first line.
const exitCodePrefix = "Exit code "

// summaryWidth caps the one-line error summary.
const summaryWidth = 60

// =============================================================================
// RULE TABLE
// =============================================================================

// rule pairs a keyword set with the category it selects. Keywords are
// matched case-insensitively; any hit triggers the rule.
type rule struct {
	keywords []string
	category Category
}

// Classifier evaluates an ordered rule list against result text.
// First match wins, so rules are registered from most specific to least
// specific — the ordering is the tie-break policy.
type Classifier struct {
	rules []rule
}

// Singleton instance for the default classifier.
var (
	defaultClassifier     *Classifier
	defaultClassifierOnce sync.Once
)

// Default returns the shared classifier with the standard rule table.
func Default() *Classifier {
	defaultClassifierOnce.Do(func() {
		defaultClassifier = NewClassifier()
	})
	return defaultClassifier
}

// NewClassifier builds a classifier with the standard rules.
func NewClassifier() *Classifier {
	return &Classifier{
		// Ordering is deliberate: SSH before timeout (an SSH timeout is
		// an SSH failure), approval before the broad "not found" net.
		rules: []rule{
			{
				keywords: []string{
					"ssh: connect", "ssh error",
					"connection refused", "connection reset",
					"host key verification failed",
				},
				category: CategorySSHError,
			},
			{
				keywords: []string{
					"invalid argument", "invalid arguments",
					"unknown option", "unrecognized option", "invalid flag",
				},
				category: CategoryInvalidArgs,
			},
			{
				keywords: []string{
					"timed out", "timeout", "deadline exceeded",
				},
				category: CategoryTimeout,
			},
			{
				keywords: []string{
					"merge conflict", "automatic merge failed",
					"needs merge", "<<<<<<<",
				},
				category: CategoryFileConflict,
			},
			{
				keywords: []string{
					"requires approval", "approval required",
					"waiting for approval",
				},
				category: CategoryApprovalRequired,
			},
			{
				keywords: []string{
					"command not found",
				},
				category: CategoryCommandNotFound,
			},
			{
				keywords: []string{
					"no such file", "not found",
				},
				category: CategoryFileNotFound,
			},
		},
	}
}

// gitFatalKeywords flag git failures in nonzero-exit output. Checked
// before the generic nonzero fallback so git-specific phrasing wins.
var gitFatalKeywords = []string{
	"fatal:",
	"not a git repository",
	"error: pathspec",
	"error: failed to push",
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

// Classify inspects raw result text and returns its verdict. toolName
// is an optional hint; pass "" when unknown. Classify is total and
// defaults to success — most tool results are successful and unknown
// formats must not be flagged as failures.
func Classify(text, toolName string) Verdict {
	return Default().Classify(text, toolName)
}

// Classify inspects raw result text and returns its verdict.
func (c *Classifier) Classify(text, toolName string) Verdict {
	// Rule 1: explicit exit-code marker, highest precedence.
	if strings.HasPrefix(text, exitCodePrefix) {
		return classifyExitCode(text)
	}

	// WebFetch results are arbitrary page bodies; error phrasing inside
	// them is content, not an outcome signal.
	if toolName == "WebFetch" {
		return verdictFor(CategorySuccess, "")
	}

	// Rule 2: textual error markers, most specific first.
	lower := strings.ToLower(text)
	for _, r := range c.rules {
		if phrase, ok := matchKeywords(lower, r.keywords); ok {
			return verdictFor(r.category, matchingLine(text, phrase))
		}
	}

	// Rule 3: nothing matched.
	return verdictFor(CategorySuccess, "")
}

// classifyExitCode handles "Exit code N" results. Zero is success; any
// other code is classified by scanning the remaining text for known
// fatal phrases before falling back to a generic failure.
func classifyExitCode(text string) Verdict {
	first, rest := splitFirstLine(text)

	code, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(first, exitCodePrefix)))
	if err == nil && code == 0 {
		return verdictFor(CategorySuccess, "")
	}

	lower := strings.ToLower(rest)
	if phrase, ok := matchKeywords(lower, gitFatalKeywords); ok {
		return verdictFor(CategoryGitError, matchingLine(rest, phrase))
	}
	if strings.Contains(lower, "permission denied") {
		return verdictFor(CategoryPermissionDenied, matchingLine(rest, "permission denied"))
	}
	if strings.Contains(lower, "command not found") {
		return verdictFor(CategoryCommandNotFound, matchingLine(rest, "command not found"))
	}
	return verdictFor(CategoryCommandFailed, util.FirstLine(rest))
}

// =============================================================================
// HELPERS
// =============================================================================

// matchKeywords returns the first keyword found in the lowercased text.
func matchKeywords(lower string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return kw, true
		}
	}
	return "", false
}

// matchingLine returns the first line of text containing the phrase,
// trimmed and width-capped, for use as the one-line error summary.
func matchingLine(text, phrase string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(strings.ToLower(line), phrase) {
			return util.TruncateWidth(strings.TrimSpace(line), summaryWidth)
		}
	}
	return ""
}

// splitFirstLine splits text into its first line and the remainder.
func splitFirstLine(text string) (string, string) {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i], text[i+1:]
	}
	return text, ""
}
