// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package grouping derives the compact display model from the event stream.
package grouping

import (
	"strconv"
	"strings"

	"github.com/jeranaias/agentview/internal/classify"
	"github.com/jeranaias/agentview/internal/config"
	"github.com/jeranaias/agentview/internal/diffview"
	"github.com/jeranaias/agentview/internal/event"
	"github.com/jeranaias/agentview/internal/toolcall"
)

// =============================================================================
// ENGINE
// =============================================================================

// Engine runs the grouping pass. It is stateless between builds: each
// Build is a pure function of its snapshot, safe to re-run wholesale on
// every streamed update. The snapshot must not be mutated mid-pass.
type Engine struct {
	cfg        config.Pipeline
	classifier *classify.Classifier
	diff       *diffview.Engine
}

// NewEngine creates an engine with the given pipeline configuration.
func NewEngine(cfg config.Pipeline) *Engine {
	cfg.Validate()
	return &Engine{
		cfg:        cfg,
		classifier: classify.Default(),
		diff:       diffview.NewEngineRadius(cfg.ContextRadius),
	}
}

// EditDiff computes the display diff for Edit tool content using the
// configured context radius, memoized across rebuilds of the same
// stream.
func (e *Engine) EditDiff(content string) []diffview.Line {
	return e.diff.ForEdit(content)
}

// Build runs the grouping pass with the default configuration.
func Build(events []event.Event) []DisplayItem {
	return NewEngine(config.Default()).Build(events)
}

// Build walks the event list once, front to back, deciding at each
// position whether to pass the event through or to greedily consume a
// run of consecutive events into a composite group.
func (e *Engine) Build(events []event.Event) []DisplayItem {
	var items []DisplayItem

	i := 0
	for i < len(events) {
		ev := events[i]

		if ev.Role == event.RoleToolUse {
			inv := toolcall.Parse(ev.Content)

			switch {
			case toolcall.IsExplore(inv.Name):
				if item, consumed := e.buildExplored(events, i); consumed > 0 {
					items = append(items, item)
					i += consumed
					continue
				}
				// Zero files extracted: nothing would be displayed, so
				// pass the event through rather than lose it.

			case inv.Name == toolcall.ToolBash:
				item, consumed := e.buildTerminal(events, i, inv)
				items = append(items, item)
				i += consumed
				continue

			case inv.Name == toolcall.ToolWebSearch:
				item, consumed := e.buildWebSearch(events, i, inv)
				items = append(items, item)
				i += consumed
				continue

			case toolcall.IsRedundantResult(inv.Name):
				item, consumed := e.buildSuppressed(events, i, inv)
				items = append(items, item)
				i += consumed
				continue
			}
		}

		items = append(items, single(ev))
		i++
	}

	return items
}

// single wraps one event as a passthrough item.
func single(ev event.Event) DisplayItem {
	e := ev
	return DisplayItem{
		Kind:           ItemSingle,
		Event:          &e,
		SourceEventIDs: []string{ev.ID},
	}
}

// =============================================================================
// EXPLORED RUNS
// =============================================================================

// exploreErrorMarkers flag a failed explore result. Matching is
// case-sensitive on these exact spellings.
var exploreErrorMarkers = []string{"error", "Error", "not found", "No such file"}

// buildExplored greedily consumes a maximal run of explore tool calls
// (each with its optional immediately-following result) starting at
// start. A run that yields zero files returns consumed == 0 and the
// caller falls back to passthrough.
func (e *Engine) buildExplored(events []event.Event, start int) (DisplayItem, int) {
	group := ExploredGroup{
		Timestamp: events[start].Timestamp,
		IsSuccess: true,
	}
	var ids []string

	j := start
	for j < len(events) {
		ev := events[j]
		if ev.Role != event.RoleToolUse {
			break
		}
		inv := toolcall.Parse(ev.Content)
		if !toolcall.IsExplore(inv.Name) {
			break
		}

		ids = append(ids, ev.ID)
		j++

		if path := explorePath(inv); path != "" {
			group.Files = append(group.Files, ExploredFile{
				Path:            path,
				ToolKind:        inv.Name,
				IsSearchPattern: inv.Name == toolcall.ToolGrep,
			})
		}

		if j < len(events) && events[j].Role == event.RoleToolResult {
			res := events[j]
			ids = append(ids, res.ID)
			j++

			if hasExploreError(res.Content) {
				if n := len(group.Files); n > 0 {
					group.Files[n-1].HasError = true
				}
				group.IsSuccess = false
			}
		}
	}

	if len(group.Files) == 0 {
		return DisplayItem{}, 0
	}

	return DisplayItem{
		Kind:           ItemExplored,
		Explored:       &group,
		SourceEventIDs: ids,
	}, j - start
}

// explorePath selects the display path/pattern argument for an explore
// invocation.
func explorePath(inv toolcall.Invocation) string {
	var arg string
	switch inv.Name {
	case toolcall.ToolRead:
		arg = inv.Arg("file_path")
	case toolcall.ToolGrep, toolcall.ToolGlob:
		arg = inv.Arg("pattern")
	}
	if arg == "" {
		arg = inv.Arg("path")
	}
	return arg
}

// hasExploreError scans explore result text for failure markers.
func hasExploreError(text string) bool {
	for _, marker := range exploreErrorMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// =============================================================================
// TERMINAL PAIRS
// =============================================================================

// buildTerminal merges a Bash invocation with its immediately following
// result, when present.
func (e *Engine) buildTerminal(events []event.Event, i int, inv toolcall.Invocation) (DisplayItem, int) {
	use := events[i]
	group := TerminalGroup{
		Command:      inv.Arg("command"),
		Description:  inv.Arg("description"),
		IsSuccess:    true,
		Timestamp:    use.Timestamp,
		summaryWidth: e.cfg.SummaryMaxWidth,
		previewLines: e.cfg.PreviewLines,
	}
	ids := []string{use.ID}
	consumed := 1

	if i+1 < len(events) && events[i+1].Role == event.RoleToolResult {
		res := events[i+1]
		ids = append(ids, res.ID)
		consumed = 2

		group.Result = res.Content
		group.IsSuccess = exitSuccess(res.Content)
		group.Verdict = e.classifier.Classify(res.Content, toolcall.ToolBash)

		if d := res.Timestamp.Sub(use.Timestamp); d >= e.cfg.MinTerminalDuration {
			group.Duration = d
		}
	}

	return DisplayItem{
		Kind:           ItemTerminal,
		Terminal:       &group,
		SourceEventIDs: ids,
	}, consumed
}

// exitSuccess reports command success from the result text alone: the
// absence of an "Exit code" marker, or an exit-code-0 marker, counts as
// success.
func exitSuccess(text string) bool {
	const prefix = "Exit code "
	if !strings.HasPrefix(text, prefix) {
		return true
	}
	first := text
	if i := strings.IndexByte(first, '\n'); i >= 0 {
		first = first[:i]
	}
	code, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(first, prefix)))
	return err == nil && code == 0
}

// =============================================================================
// WEB SEARCH PAIRS
// =============================================================================

// buildWebSearch merges a WebSearch invocation with its immediately
// following result, when present.
func (e *Engine) buildWebSearch(events []event.Event, i int, inv toolcall.Invocation) (DisplayItem, int) {
	use := events[i]
	group := WebSearchGroup{
		Query:     inv.Arg("query"),
		Timestamp: use.Timestamp,
	}
	ids := []string{use.ID}
	consumed := 1

	if i+1 < len(events) && events[i+1].Role == event.RoleToolResult {
		res := events[i+1]
		ids = append(ids, res.ID)
		consumed = 2
		group.Results = parseSearchResults(res.Content)
	}

	return DisplayItem{
		Kind:           ItemWebSearch,
		WebSearch:      &group,
		SourceEventIDs: ids,
	}, consumed
}

// =============================================================================
// REDUNDANT RESULT SUPPRESSION
// =============================================================================

// buildSuppressed emits the tool call as a passthrough item and
// consumes its immediately following result, whose content restates
// what the invocation header already shows. A result that classifies as
// an error is NOT consumed: it stays in the stream and surfaces as its
// own item, so a server-side failure of Edit/Write/etc. is never
// silently dropped.
func (e *Engine) buildSuppressed(events []event.Event, i int, inv toolcall.Invocation) (DisplayItem, int) {
	item := single(events[i])
	consumed := 1

	if i+1 < len(events) && events[i+1].Role == event.RoleToolResult {
		res := events[i+1]
		if e.classifier.Classify(res.Content, inv.Name).IsSuccess {
			item.SourceEventIDs = append(item.SourceEventIDs, res.ID)
			consumed = 2
		}
	}

	return item, consumed
}
