// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diffview computes display diffs between two text bodies.
package diffview

import (
	"strings"

	"github.com/jeranaias/agentview/internal/toolcall"
)

// =============================================================================
// EDIT PAYLOAD
// =============================================================================

// EditPayload carries the before/after strings of an Edit tool call.
type EditPayload struct {
	FilePath   string
	OldString  string
	NewString  string
	ReplaceAll bool
}

// ParseEditPayload extracts an edit's before/after strings from Edit
// tool content. The JSON argument form is tried first; the legacy
// textual form (`old_string: ..., new_string: ..., replace_all:` or a
// trailing `)`) second. The bool result reports whether either form
// matched; on false the caller should render the raw content instead of
// a diff.
func ParseEditPayload(content string) (EditPayload, bool) {
	inv := toolcall.Parse(content)
	if inv.HasArg("old_string") || inv.HasArg("new_string") {
		return EditPayload{
			FilePath:   inv.Arg("file_path"),
			OldString:  inv.Arg("old_string"),
			NewString:  inv.Arg("new_string"),
			ReplaceAll: inv.Args["replace_all"].Bool(),
		}, true
	}
	return parseLegacyEdit(content)
}

// DiffForEdit parses Edit tool content and computes its display diff.
// Content matching neither payload form yields nil — no diff available.
func DiffForEdit(content string) []Line {
	payload, ok := ParseEditPayload(content)
	if !ok {
		return nil
	}
	return Compute(payload.OldString, payload.NewString)
}

// parseLegacyEdit handles the pre-JSON textual payload shape.
func parseLegacyEdit(content string) (EditPayload, bool) {
	const (
		oldKey     = "old_string:"
		newKey     = "new_string:"
		replaceKey = "replace_all:"
		pathKey    = "file_path:"
	)

	oi := strings.Index(content, oldKey)
	ni := strings.Index(content, newKey)
	if oi < 0 || ni < 0 || ni < oi {
		return EditPayload{}, false
	}

	var payload EditPayload

	if pi := strings.Index(content, pathKey); pi >= 0 && pi < oi {
		payload.FilePath = trimField(content[pi+len(pathKey) : oi])
	}

	payload.OldString = trimField(content[oi+len(oldKey) : ni])

	rest := content[ni+len(newKey):]
	if ri := strings.Index(rest, replaceKey); ri >= 0 {
		payload.NewString = trimField(rest[:ri])
		payload.ReplaceAll = strings.Contains(rest[ri+len(replaceKey):], "true")
	} else {
		rest = strings.TrimSpace(rest)
		rest = strings.TrimSuffix(rest, ")")
		payload.NewString = strings.TrimSpace(rest)
	}

	return payload, true
}

// trimField strips the surrounding whitespace and the trailing comma of
// a legacy-form field value.
func trimField(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ",")
	return strings.TrimSpace(s)
}
