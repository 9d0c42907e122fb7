// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package toolcall parses and formats tool-invocation content.
package toolcall

import "strings"

// =============================================================================
// TOOL NAME VOCABULARY
// =============================================================================

// Recognized tool names. Matching is case-sensitive and exact; anything
// outside this set that is not MCP-prefixed is formatted generically,
// never treated as an error.
const (
	ToolBash            = "Bash"
	ToolRead            = "Read"
	ToolWrite           = "Write"
	ToolEdit            = "Edit"
	ToolGrep            = "Grep"
	ToolGlob            = "Glob"
	ToolTask            = "Task"
	ToolTodoWrite       = "TodoWrite"
	ToolWebFetch        = "WebFetch"
	ToolWebSearch       = "WebSearch"
	ToolAskUserQuestion = "AskUserQuestion"
	ToolLSP             = "LSP"
)

// MCPPrefix namespaces tools provided by MCP servers. Any name carrying
// it is handled generically.
const MCPPrefix = "mcp__"

// IsMCP reports whether the tool name belongs to the MCP namespace.
func IsMCP(name string) bool {
	return strings.HasPrefix(name, MCPPrefix)
}

// IsExplore reports whether the tool is a file-exploration tool whose
// consecutive invocations group into a single explored-files item.
func IsExplore(name string) bool {
	switch name {
	case ToolRead, ToolGlob, ToolGrep:
		return true
	}
	return false
}

// IsRedundantResult reports whether the tool's result event carries no
// information beyond the invocation itself and may be suppressed from
// display.
func IsRedundantResult(name string) bool {
	switch name {
	case ToolEdit, ToolWrite, ToolWebFetch, ToolTask, ToolTodoWrite, ToolLSP:
		return true
	}
	return IsMCP(name)
}
