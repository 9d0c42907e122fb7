// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package classify inspects tool-result text and produces a verdict.
package classify

// =============================================================================
// CATEGORIES
// =============================================================================

// Category is the classified outcome of a tool result. Exactly one
// category applies per result; CategorySuccess is the default when no
// error signal fires.
type Category int

const (
	// CategorySuccess represents a result with no error signal
	CategorySuccess Category = iota
	// CategoryGitError represents git fatal errors
	CategoryGitError
	// CategoryCommandFailed represents a nonzero exit with no more specific signal
	CategoryCommandFailed
	// CategorySSHError represents SSH connection failures
	CategorySSHError
	// CategoryPermissionDenied represents filesystem or auth permission errors
	CategoryPermissionDenied
	// CategoryInvalidArgs represents argument-validation failures
	CategoryInvalidArgs
	// CategoryCommandNotFound represents missing executables
	CategoryCommandNotFound
	// CategoryTimeout represents timed-out operations
	CategoryTimeout
	// CategoryFileConflict represents merge/conflict markers
	CategoryFileConflict
	// CategoryApprovalRequired represents operations blocked pending approval
	CategoryApprovalRequired
	// CategoryFileNotFound represents missing files or paths
	CategoryFileNotFound
	// CategoryUnknown represents an explicitly unclassified error state
	CategoryUnknown
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategorySuccess:
		return "success"
	case CategoryGitError:
		return "gitError"
	case CategoryCommandFailed:
		return "commandFailed"
	case CategorySSHError:
		return "sshError"
	case CategoryPermissionDenied:
		return "permissionDenied"
	case CategoryInvalidArgs:
		return "invalidArgs"
	case CategoryCommandNotFound:
		return "commandNotFound"
	case CategoryTimeout:
		return "timeout"
	case CategoryFileConflict:
		return "fileConflict"
	case CategoryApprovalRequired:
		return "approvalRequired"
	case CategoryFileNotFound:
		return "fileNotFound"
	default:
		return "unknown"
	}
}

// ShortLabel returns the fixed collapsed-badge label for the category.
// Downstream styling keys off these exact strings.
func (c Category) ShortLabel() string {
	switch c {
	case CategorySuccess:
		return "Success"
	case CategoryGitError:
		return "Git Error"
	case CategoryCommandFailed:
		return "Failed"
	case CategorySSHError:
		return "SSH Error"
	case CategoryPermissionDenied:
		return "Permission Denied"
	case CategoryInvalidArgs:
		return "Invalid Arguments"
	case CategoryCommandNotFound:
		return "Command Not Found"
	case CategoryTimeout:
		return "Timed Out"
	case CategoryFileConflict:
		return "Merge Conflict"
	case CategoryApprovalRequired:
		return "Approval Required"
	case CategoryFileNotFound:
		return "File Not Found"
	default:
		return "Error"
	}
}

// description returns the fixed one-line summary used when no line in
// the result text is distinctive.
func (c Category) description() string {
	switch c {
	case CategoryGitError:
		return "Git command failed"
	case CategoryCommandFailed:
		return "Command exited with an error"
	case CategorySSHError:
		return "SSH connection failed"
	case CategoryPermissionDenied:
		return "Permission was denied"
	case CategoryInvalidArgs:
		return "Invalid arguments supplied"
	case CategoryCommandNotFound:
		return "Command not found"
	case CategoryTimeout:
		return "Operation timed out"
	case CategoryFileConflict:
		return "File has conflicting changes"
	case CategoryApprovalRequired:
		return "Approval is required to continue"
	case CategoryFileNotFound:
		return "File not found"
	case CategoryUnknown:
		return "Unclassified error"
	default:
		return ""
	}
}

// =============================================================================
// VERDICT
// =============================================================================

// Verdict is the classified outcome of inspecting a tool result.
type Verdict struct {
	Category     Category
	IsSuccess    bool
	ShortLabel   string
	ErrorSummary string
}

// verdictFor builds a Verdict for a category with the given summary.
func verdictFor(c Category, summary string) Verdict {
	if summary == "" {
		summary = c.description()
	}
	return Verdict{
		Category:     c,
		IsSuccess:    c == CategorySuccess,
		ShortLabel:   c.ShortLabel(),
		ErrorSummary: summary,
	}
}
