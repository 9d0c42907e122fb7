// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package classify inspects tool-result text and produces a verdict.
package classify

import (
	"strings"
	"testing"
)

func TestClassifyDefaultSuccess(t *testing.T) {
	v := Classify("some unrecognized friendly output", "")

	if v.Category != CategorySuccess {
		t.Errorf("Category = %s, want success", v.Category)
	}
	if !v.IsSuccess {
		t.Error("Expected IsSuccess true")
	}
	if v.ErrorSummary != "" {
		t.Errorf("Expected empty summary, got %q", v.ErrorSummary)
	}
}

func TestClassifyEmptyIsSuccess(t *testing.T) {
	v := Classify("", "")
	if v.Category != CategorySuccess {
		t.Errorf("Category = %s, want success", v.Category)
	}
}

func TestClassifyExitCodeZero(t *testing.T) {
	v := Classify("Exit code 0\nall good", "Bash")
	if v.Category != CategorySuccess {
		t.Errorf("Category = %s, want success", v.Category)
	}
}

func TestClassifyExitCodePrecedence(t *testing.T) {
	// Git-specific phrasing must win over the generic nonzero fallback.
	v := Classify("Exit code 1\nfatal: not a git repository", "Bash")

	if v.Category != CategoryGitError {
		t.Errorf("Category = %s, want gitError", v.Category)
	}
	if v.IsSuccess {
		t.Error("Expected IsSuccess false")
	}
	if !strings.Contains(v.ErrorSummary, "fatal: not a git repository") {
		t.Errorf("Expected fatal line in summary, got %q", v.ErrorSummary)
	}
}

func TestClassifyExitCodeScan(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Category
	}{
		{"permission", "Exit code 1\nbash: /etc/shadow: Permission denied", CategoryPermissionDenied},
		{"command not found", "Exit code 127\nzsh: command not found: foo", CategoryCommandNotFound},
		{"generic", "Exit code 2\nsomething broke", CategoryCommandFailed},
		{"bare nonzero", "Exit code 1", CategoryCommandFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(tt.text, "Bash")
			if v.Category != tt.expected {
				t.Errorf("Category = %s, want %s", v.Category, tt.expected)
			}
		})
	}
}

func TestClassifyTextualMarkers(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Category
	}{
		{"ssh", "ssh: connect to host build01 port 22: Connection refused", CategorySSHError},
		{"invalid args", "grep: invalid argument '-Z' for context", CategoryInvalidArgs},
		{"timeout", "operation timed out after 30s", CategoryTimeout},
		{"conflict", "CONFLICT (content): Merge conflict in main.go", CategoryFileConflict},
		{"approval", "This command requires approval before running", CategoryApprovalRequired},
		{"file not found", "cat: /tmp/missing.txt: No such file or directory", CategoryFileNotFound},
		{"not found", "pattern not found in any file", CategoryFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(tt.text, "")
			if v.Category != tt.expected {
				t.Errorf("Classify(%q) = %s, want %s", tt.text, v.Category, tt.expected)
			}
			if v.IsSuccess {
				t.Error("Expected IsSuccess false")
			}
		})
	}
}

func TestClassifySSHBeforeTimeout(t *testing.T) {
	// An SSH timeout is an SSH failure; rule order is the tie-break.
	v := Classify("ssh: connect to host dev port 22: Operation timed out", "")
	if v.Category != CategorySSHError {
		t.Errorf("Category = %s, want sshError", v.Category)
	}
}

func TestClassifyWebFetchBodyIgnored(t *testing.T) {
	// Page bodies legitimately contain error phrasing.
	v := Classify("The request timed out, the server said. Permission denied jokes ensued.", "WebFetch")
	if v.Category != CategorySuccess {
		t.Errorf("Category = %s, want success", v.Category)
	}
}

func TestClassifySummaryFallsBackToDescription(t *testing.T) {
	v := Classify("Exit code 1", "Bash")
	if v.ErrorSummary != "Command exited with an error" {
		t.Errorf("ErrorSummary = %q, want fixed description", v.ErrorSummary)
	}
}

func TestClassifySummaryCapped(t *testing.T) {
	long := "error: " + strings.Repeat("x", 200) + " timed out"
	v := Classify(long, "")
	if len(v.ErrorSummary) > 63 {
		t.Errorf("Summary too long: %d chars", len(v.ErrorSummary))
	}
}

func TestShortLabels(t *testing.T) {
	tests := []struct {
		category Category
		expected string
	}{
		{CategorySuccess, "Success"},
		{CategoryGitError, "Git Error"},
		{CategoryCommandFailed, "Failed"},
		{CategorySSHError, "SSH Error"},
		{CategoryPermissionDenied, "Permission Denied"},
		{CategoryInvalidArgs, "Invalid Arguments"},
		{CategoryCommandNotFound, "Command Not Found"},
		{CategoryTimeout, "Timed Out"},
		{CategoryFileConflict, "Merge Conflict"},
		{CategoryApprovalRequired, "Approval Required"},
		{CategoryFileNotFound, "File Not Found"},
		{CategoryUnknown, "Error"},
	}

	for _, tt := range tests {
		if got := tt.category.ShortLabel(); got != tt.expected {
			t.Errorf("%s.ShortLabel() = %q, want %q", tt.category, got, tt.expected)
		}
	}
}

func TestCategoryString(t *testing.T) {
	if CategoryGitError.String() != "gitError" {
		t.Errorf("String = %q, want gitError", CategoryGitError.String())
	}
	if CategorySuccess.String() != "success" {
		t.Errorf("String = %q, want success", CategorySuccess.String())
	}
}
