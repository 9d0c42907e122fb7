// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package grouping derives the compact display model from the event stream.
package grouping

import (
	"strings"
	"time"

	"github.com/jeranaias/agentview/internal/classify"
	"github.com/jeranaias/agentview/internal/event"
	"github.com/jeranaias/agentview/internal/summary"
)

// =============================================================================
// ITEM KIND
// =============================================================================

// ItemKind tags the variant a DisplayItem holds.
type ItemKind int

const (
	// ItemSingle passes one event through unchanged
	ItemSingle ItemKind = iota
	// ItemExplored groups a run of consecutive Read/Glob/Grep calls
	ItemExplored
	// ItemTerminal pairs a Bash call with its result
	ItemTerminal
	// ItemWebSearch pairs a WebSearch call with its parsed results
	ItemWebSearch
)

// String returns the string representation of the item kind.
func (k ItemKind) String() string {
	switch k {
	case ItemSingle:
		return "single"
	case ItemExplored:
		return "explored"
	case ItemTerminal:
		return "terminal"
	case ItemWebSearch:
		return "webSearch"
	default:
		return "unknown"
	}
}

// =============================================================================
// DISPLAY ITEM
// =============================================================================

// DisplayItem is the post-grouping unit handed to rendering: either a
// passthrough event or one composite group. Exactly the field matching
// Kind is set. SourceEventIDs lists every consumed event in stream
// order; concatenated across a build, they reconstruct the input ID
// sequence exactly.
type DisplayItem struct {
	Kind ItemKind

	Event     *event.Event
	Explored  *ExploredGroup
	Terminal  *TerminalGroup
	WebSearch *WebSearchGroup

	SourceEventIDs []string
}

// =============================================================================
// GROUP VARIANTS
// =============================================================================

// ExploredFile is one file or pattern touched during an explore run.
type ExploredFile struct {
	Path            string
	ToolKind        string
	HasError        bool
	IsSearchPattern bool
}

// ExploredGroup is a run of consecutive Read/Glob/Grep invocations and
// their consumed results.
type ExploredGroup struct {
	Files     []ExploredFile
	Timestamp time.Time
	IsSuccess bool
}

// TerminalGroup is a Bash invocation merged with its immediately
// following result.
type TerminalGroup struct {
	Command     string
	Description string
	Result      string
	IsSuccess   bool
	Verdict     classify.Verdict
	Timestamp   time.Time

	// Duration is the wall time between the invocation and its result
	// event. Zero means suppressed: sub-threshold gaps measure network
	// and storage jitter, not execution.
	Duration time.Duration

	// Display knobs carried over from the building engine's config.
	// Zero values fall back to the package defaults, so a hand-built
	// group still renders.
	summaryWidth int
	previewLines int
}

// defaultPreviewLines caps Preview output for zero-value groups.
const defaultPreviewLines = 3

// Summary returns the one-line collapsed description of the result,
// capped at the configured summary width.
func (g *TerminalGroup) Summary() string {
	return summary.TerminalWidth(g.Result, g.summaryWidth)
}

// Preview returns the leading result lines shown under the collapsed
// row, capped at the configured preview length.
func (g *TerminalGroup) Preview() []string {
	if g.Result == "" {
		return nil
	}
	n := g.previewLines
	if n <= 0 {
		n = defaultPreviewLines
	}
	lines := strings.Split(g.Result, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return lines
}

// SearchResult is one parsed web-search hit.
type SearchResult struct {
	Title   string
	URL     string
	Snippet string
}

// WebSearchGroup is a WebSearch invocation merged with its parsed
// result list.
type WebSearchGroup struct {
	Query     string
	Results   []SearchResult
	Timestamp time.Time
}
