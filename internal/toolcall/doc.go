// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package toolcall parses and formats tool-invocation content.
//
// Tool-use events carry content of the shape `ToolName({...json...})`.
// Parse extracts the name and argument map; Header renders a short
// per-tool description for display. Both functions are total — malformed
// content degrades to an empty argument map or the original string,
// never an error.
//
// # Usage
//
//	inv := toolcall.Parse(`Bash({"command":"ls -la"})`)
//	inv.Name       // "Bash"
//	inv.Arg("command") // "ls -la"
//	inv.Header()   // "$ ls -la"
package toolcall
