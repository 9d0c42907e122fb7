// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles maps classification verdicts to the visual palette.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/agentview/internal/classify"
)

// =============================================================================
// TINT
// =============================================================================

// Tint is the semantic color bucket a verdict renders with.
type Tint int

const (
	// TintSuccess - Emerald, successful results
	TintSuccess Tint = iota
	// TintWarning - Amber, recoverable and usage errors
	TintWarning
	// TintError - Rose, hard failures
	TintError
	// TintInfo - Cyan, states awaiting user action
	TintInfo
	// TintNeutral - Muted, low-severity misses
	TintNeutral
)

// String returns the string representation of the tint.
func (t Tint) String() string {
	switch t {
	case TintSuccess:
		return "success"
	case TintWarning:
		return "warning"
	case TintError:
		return "error"
	case TintInfo:
		return "info"
	case TintNeutral:
		return "neutral"
	default:
		return "unknown"
	}
}

// =============================================================================
// PALETTE
// =============================================================================

// Emerald - Success states
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Rose - Errors, critical alerts, danger states
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings, caution states
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Cyan - Info, states awaiting action
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// TextMuted - Hints, timestamps, very subtle text
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// Color returns the adaptive color for the tint.
func (t Tint) Color() lipgloss.AdaptiveColor {
	switch t {
	case TintSuccess:
		return Emerald
	case TintWarning:
		return Amber
	case TintError:
		return Rose
	case TintInfo:
		return Cyan
	case TintNeutral:
		return TextMuted
	default:
		return Rose
	}
}

// =============================================================================
// VERDICT MAPPING
// =============================================================================

// TintFor maps a classification category to its tint. File-not-found is
// deliberately neutral rather than an error tone: agents probe for
// files as a matter of course and a miss is routine, not alarming.
func TintFor(c classify.Category) Tint {
	switch c {
	case classify.CategorySuccess:
		return TintSuccess
	case classify.CategoryGitError,
		classify.CategoryCommandFailed,
		classify.CategorySSHError,
		classify.CategoryPermissionDenied:
		return TintError
	case classify.CategoryInvalidArgs,
		classify.CategoryCommandNotFound,
		classify.CategoryTimeout:
		return TintWarning
	case classify.CategoryFileConflict,
		classify.CategoryApprovalRequired:
		return TintInfo
	case classify.CategoryFileNotFound:
		return TintNeutral
	default:
		return TintError
	}
}

// Style returns a foreground style for the category's tint.
func Style(c classify.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(TintFor(c).Color())
}
