// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package toolcall parses and formats tool-invocation content.
package toolcall

import (
	"sort"
	"strings"

	"github.com/jeranaias/agentview/internal/util"
)

// Display caps for formatted headers.
const (
	// genericValueWidth caps each value in the generic key/value dump.
	genericValueWidth = 40
	// questionWidth caps question text in AskUserQuestion headers.
	questionWidth = 60
	// optionLabelRunes caps each option label in AskUserQuestion headers.
	optionLabelRunes = 24
)

// =============================================================================
// HEADER FORMATTING
// =============================================================================

// FormatHeader renders tool-use content as a short human-readable
// description. Content that yields no tool name is returned verbatim.
// FormatHeader never fails.
func FormatHeader(content string) string {
	inv := Parse(content)
	if inv.Name == "" {
		return content
	}
	return inv.Header()
}

// Header renders the invocation as a short multi-line description using
// tool-specific field selection. Unrecognized and MCP-namespaced tools
// fall back to a sorted key/value dump.
func (inv Invocation) Header() string {
	switch inv.Name {
	case ToolBash:
		return inv.bashHeader()
	case ToolRead:
		return inv.readHeader()
	case ToolWrite:
		// Line count only. The full body would duplicate the diff view
		// and dominate the transcript.
		return util.IntSuffix(util.LineCount(inv.Arg("content")), "line")
	case ToolEdit:
		// Path only; the change itself is shown as a diff.
		return inv.Arg("file_path")
	case ToolGrep, ToolGlob:
		return inv.patternHeader()
	case ToolTask:
		return inv.taskHeader()
	case ToolWebFetch, ToolWebSearch:
		// The surrounding header line already states the target and the
		// response restates the content.
		return ""
	case ToolAskUserQuestion:
		return inv.questionsHeader()
	default:
		return inv.genericHeader()
	}
}

// bashHeader renders a shell invocation as `$ cmd` plus an optional
// `# description` line.
func (inv Invocation) bashHeader() string {
	var b strings.Builder
	b.WriteString("$ ")
	b.WriteString(inv.Arg("command"))
	if desc := inv.Arg("description"); desc != "" {
		b.WriteString("\n# ")
		b.WriteString(desc)
	}
	return b.String()
}

// readHeader renders the path plus the optional window arguments.
func (inv Invocation) readHeader() string {
	var lines []string
	lines = append(lines, inv.Arg("file_path"))
	if inv.HasArg("offset") {
		lines = append(lines, "offset: "+inv.Arg("offset"))
	}
	if inv.HasArg("limit") {
		lines = append(lines, "limit: "+inv.Arg("limit"))
	}
	return strings.Join(lines, "\n")
}

// patternHeader renders a search pattern and its search root.
func (inv Invocation) patternHeader() string {
	pattern := inv.Arg("pattern")
	if root := inv.Arg("path"); root != "" {
		return pattern + "\nin " + root
	}
	return pattern
}

// taskHeader renders a sub-agent dispatch as agent type + description.
func (inv Invocation) taskHeader() string {
	agent := inv.Arg("subagent_type")
	desc := inv.Arg("description")
	switch {
	case agent != "" && desc != "":
		return agent + "\n" + desc
	case agent != "":
		return agent
	default:
		return desc
	}
}

// questionsHeader renders each question as a numbered header with
// truncated question text and its option labels.
func (inv Invocation) questionsHeader() string {
	questions := inv.Args["questions"].Array()
	if len(questions) == 0 {
		return inv.genericHeader()
	}

	var lines []string
	for i, q := range questions {
		fields := q.Object()
		if fields == nil {
			continue
		}

		header := fields["header"].Text()
		if header == "" {
			header = "Question"
		}
		lines = append(lines, util.IntToString(i+1)+". "+header)

		if text := fields["question"].Text(); text != "" {
			lines = append(lines, "   "+util.TruncateWidth(text, questionWidth))
		}

		var labels []string
		for _, opt := range fields["options"].Array() {
			label := opt.Text()
			if obj := opt.Object(); obj != nil {
				label = obj["label"].Text()
			}
			if label != "" {
				labels = append(labels, util.TruncateRunes(label, optionLabelRunes))
			}
		}
		if len(labels) > 0 {
			lines = append(lines, "   "+strings.Join(labels, " / "))
		}
	}
	return strings.Join(lines, "\n")
}

// genericHeader renders a sorted `key: value` dump with width-capped
// values. Covers MCP-namespaced and unrecognized tools.
func (inv Invocation) genericHeader() string {
	if len(inv.Args) == 0 {
		return ""
	}

	keys := make([]string, 0, len(inv.Args))
	for k := range inv.Args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+": "+util.TruncateWidth(inv.Args[k].Text(), genericValueWidth))
	}
	return strings.Join(lines, "\n")
}
