// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package event defines the chronological message-stream records the
// display pipeline consumes.
package event

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role identifies the kind of entry in the agent message stream.
type Role string

const (
	RoleUser          Role = "user"
	RoleAssistant     Role = "assistant"
	RoleSystem        Role = "system"
	RoleError         Role = "error"
	RoleToolUse       Role = "toolUse"
	RoleToolResult    Role = "toolResult"
	RoleResultSuccess Role = "resultSuccess"
	RoleThinking      Role = "thinking"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// IsTool reports whether the role is part of a tool invocation/result pair.
func (r Role) IsTool() bool {
	return r == RoleToolUse || r == RoleToolResult
}

// =============================================================================
// EVENT TYPE
// =============================================================================

// Event is one atomic entry in the chronological agent/user message
// stream. Events are immutable once constructed and totally ordered by
// stream position. Timestamps may repeat or arrive out of order under
// network jitter; stream position is the ordering authority.
type Event struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`

	// ImageRef optionally names an image attachment carried alongside
	// the content.
	ImageRef string `json:"image_ref,omitempty"`
}

// New creates an event with a generated ID and the current time.
func New(role Role, content string) Event {
	return Event{
		ID:        generateID(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewAt creates an event with a generated ID and an explicit timestamp.
// Used when replaying a persisted stream or in tests.
func NewAt(role Role, content string, ts time.Time) Event {
	return Event{
		ID:        generateID(),
		Role:      role,
		Content:   content,
		Timestamp: ts,
	}
}

// generateID creates a unique event ID.
func generateID() string {
	return "evt_" + uuid.NewString()
}
