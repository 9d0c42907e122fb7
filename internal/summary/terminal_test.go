// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package summary derives one-line descriptions from tool output.
package summary

import (
	"strings"
	"testing"
)

func TestTerminalEmpty(t *testing.T) {
	if got := Terminal(""); got != "Completed" {
		t.Errorf("Terminal(\"\") = %q, want Completed", got)
	}
	if got := Terminal("   \n  "); got != "Completed" {
		t.Errorf("Terminal(blank) = %q, want Completed", got)
	}
}

func TestTerminalBuildMarkers(t *testing.T) {
	succeeded := "=== BUILD TARGET App ===\n** BUILD SUCCEEDED **\n"
	if got := Terminal(succeeded); got != "BUILD SUCCEEDED" {
		t.Errorf("Terminal = %q, want BUILD SUCCEEDED", got)
	}

	failed := "ld: symbol not here\n** BUILD FAILED **\n"
	if got := Terminal(failed); got != "BUILD FAILED" {
		t.Errorf("Terminal = %q, want BUILD FAILED", got)
	}
}

func TestTerminalGitFilesChanged(t *testing.T) {
	got := Terminal("3 files changed, 10 insertions(+), 2 deletions(-)")
	if got != "3 files changed" {
		t.Errorf("Terminal = %q, want %q", got, "3 files changed")
	}
}

func TestTerminalGitSingleFileChanged(t *testing.T) {
	got := Terminal("1 file changed, 2 insertions(+)")
	if got != "1 file changed" {
		t.Errorf("Terminal = %q, want %q", got, "1 file changed")
	}
}

func TestTerminalGitPush(t *testing.T) {
	text := "To github.com:acme/app.git\n   d1a2b3c..e4f5a6b  main -> main"
	if got := Terminal(text); got != "Pushed to remote" {
		t.Errorf("Terminal = %q, want Pushed to remote", got)
	}
}

func TestTerminalGitCleanTree(t *testing.T) {
	text := "On branch main\nnothing to commit, working tree clean"
	if got := Terminal(text); got != "Working tree clean" {
		t.Errorf("Terminal = %q, want Working tree clean", got)
	}
}

func TestTerminalGitUncommitted(t *testing.T) {
	text := "On branch main\nChanges not staged for commit:\n  modified: a.go"
	if got := Terminal(text); got != "Uncommitted changes" {
		t.Errorf("Terminal = %q, want Uncommitted changes", got)
	}
}

func TestTerminalExitCodeSecondLine(t *testing.T) {
	got := Terminal("Exit code 0\nfile1\nfile2")
	if got != "file1" {
		t.Errorf("Terminal = %q, want file1", got)
	}
}

func TestTerminalExitCodeNoSecondLine(t *testing.T) {
	got := Terminal("Exit code 1")
	if got != "Exit code 1" {
		t.Errorf("Terminal = %q, want Exit code 1", got)
	}
}

func TestTerminalExitCodeSecondLineCapped(t *testing.T) {
	got := Terminal("Exit code 1\n" + strings.Repeat("e", 200))
	if len(got) > 60 {
		t.Errorf("Expected capped summary, got %d chars", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Expected ellipsis, got %q", got)
	}
}

func TestTerminalManyLines(t *testing.T) {
	text := "a\nb\nc\nd\ne\nf\ng"
	if got := Terminal(text); got != "7 lines" {
		t.Errorf("Terminal = %q, want 7 lines", got)
	}
}

func TestTerminalFiveLinesUsesFirstLine(t *testing.T) {
	// Five lines is not "more than 5"; the first line wins.
	text := "first\nb\nc\nd\ne"
	if got := Terminal(text); got != "first" {
		t.Errorf("Terminal = %q, want first", got)
	}
}

func TestTerminalFirstLine(t *testing.T) {
	if got := Terminal("  hello world  "); got != "hello world" {
		t.Errorf("Terminal = %q, want hello world", got)
	}
}

func TestTerminalRuleOrderGitBeforeLineCount(t *testing.T) {
	// Git trailers win even inside long output.
	text := "a\nb\nc\nd\ne\nf\n2 files changed, 4 insertions(+)"
	if got := Terminal(text); got != "2 files changed" {
		t.Errorf("Terminal = %q, want 2 files changed", got)
	}
}

func TestGit(t *testing.T) {
	if _, ok := Git("regular output"); ok {
		t.Error("Expected no git match for regular output")
	}
	if s, ok := Git("5 files changed"); !ok || s != "5 files changed" {
		t.Errorf("Git = (%q, %v), want (5 files changed, true)", s, ok)
	}
}
