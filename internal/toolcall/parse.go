// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package toolcall parses and formats tool-invocation content.
package toolcall

import (
	"encoding/json"
	"strings"

	"github.com/jeranaias/agentview/internal/event"
)

// =============================================================================
// INVOCATION TYPE
// =============================================================================

// Invocation is a parsed tool call: a tool name plus its argument map.
// An invocation with an empty argument map is still usable by name.
type Invocation struct {
	Name string
	Args map[string]event.Value
}

// Arg returns the named argument coerced to its display string, or ""
// when absent.
func (inv Invocation) Arg(key string) string {
	return inv.Args[key].Text()
}

// HasArg reports whether the named argument is present.
func (inv Invocation) HasArg(key string) bool {
	_, ok := inv.Args[key]
	return ok
}

// =============================================================================
// PARSING
// =============================================================================

// Parse extracts an Invocation from tool-use content of the shape
// `ToolName({...json...})`. The parentheses and JSON object are both
// optional; absence of a parseable object yields an empty argument map.
//
// The JSON region is taken from the first `{` to the last `}` in the
// string. This tolerates nested braces inside the arguments and tool
// names without parentheses, at the cost of being fragile to prose after
// the JSON. The content is machine-generated in exactly this shape, so
// the first/last-brace heuristic is kept over a balanced parse.
//
// Parse is total: it never fails, for any input.
func Parse(content string) Invocation {
	inv := Invocation{
		Name: parseName(content),
		Args: map[string]event.Value{},
	}

	start := strings.IndexByte(content, '{')
	end := strings.LastIndexByte(content, '}')
	if start < 0 || end <= start {
		return inv
	}

	var args map[string]event.Value
	if err := json.Unmarshal([]byte(content[start:end+1]), &args); err != nil || args == nil {
		return inv
	}
	inv.Args = args
	return inv
}

// parseName extracts the tool name: everything before the first `(`,
// falling back to everything before the first `{`, then to the whole
// trimmed string.
func parseName(content string) string {
	if i := strings.IndexByte(content, '('); i >= 0 {
		return strings.TrimSpace(content[:i])
	}
	if i := strings.IndexByte(content, '{'); i >= 0 {
		return strings.TrimSpace(content[:i])
	}
	return strings.TrimSpace(content)
}
