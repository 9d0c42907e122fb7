// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package event defines the chronological message-stream records the
// display pipeline consumes.
package event

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNewEvent(t *testing.T) {
	e := New(RoleUser, "hello")

	if e.Role != RoleUser {
		t.Errorf("Expected role user, got %s", e.Role)
	}
	if e.Content != "hello" {
		t.Errorf("Expected content 'hello', got %q", e.Content)
	}
	if !strings.HasPrefix(e.ID, "evt_") {
		t.Errorf("Expected evt_ ID prefix, got %q", e.ID)
	}
	if e.Timestamp.IsZero() {
		t.Error("Expected non-zero timestamp")
	}
}

func TestNewEventIDsUnique(t *testing.T) {
	a := New(RoleUser, "a")
	b := New(RoleUser, "b")
	if a.ID == b.ID {
		t.Errorf("Expected distinct IDs, both were %q", a.ID)
	}
}

func TestNewAt(t *testing.T) {
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	e := NewAt(RoleToolUse, "Bash({})", ts)
	if !e.Timestamp.Equal(ts) {
		t.Errorf("Expected timestamp %v, got %v", ts, e.Timestamp)
	}
}

func TestRoleIsTool(t *testing.T) {
	tests := []struct {
		role     Role
		expected bool
	}{
		{RoleToolUse, true},
		{RoleToolResult, true},
		{RoleUser, false},
		{RoleAssistant, false},
		{RoleThinking, false},
	}

	for _, tt := range tests {
		if got := tt.role.IsTool(); got != tt.expected {
			t.Errorf("%s.IsTool() = %v, want %v", tt.role, got, tt.expected)
		}
	}
}

// =============================================================================
// VALUE TESTS
// =============================================================================

func TestValueText(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		kind     Kind
		expected string
	}{
		{"string", `"hello"`, KindString, "hello"},
		{"integer", `42`, KindNumber, "42"},
		{"float", `1.5`, KindNumber, "1.5"},
		{"bool true", `true`, KindBool, "true"},
		{"bool false", `false`, KindBool, "false"},
		{"null", `null`, KindNull, ""},
		{"array", `[1, 2]`, KindArray, "[1,2]"},
		{"object", `{"a": 1}`, KindObject, `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			if err := json.Unmarshal([]byte(tt.raw), &v); err != nil {
				t.Fatalf("Unmarshal returned error: %v", err)
			}
			if v.Kind() != tt.kind {
				t.Errorf("Kind = %s, want %s", v.Kind(), tt.kind)
			}
			if got := v.Text(); got != tt.expected {
				t.Errorf("Text = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValueDecodeMap(t *testing.T) {
	var args map[string]Value
	data := `{"command": "ls -la", "timeout": 30, "verbose": true}`
	if err := json.Unmarshal([]byte(data), &args); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	if got := args["command"].Text(); got != "ls -la" {
		t.Errorf("command = %q, want %q", got, "ls -la")
	}
	if got := args["timeout"].Text(); got != "30" {
		t.Errorf("timeout = %q, want %q", got, "30")
	}
	if !args["verbose"].Bool() {
		t.Error("Expected verbose to be true")
	}
}

func TestValueMalformedNeverErrors(t *testing.T) {
	var v Value
	if err := v.UnmarshalJSON([]byte("{not json")); err != nil {
		t.Fatalf("UnmarshalJSON returned error: %v", err)
	}
	if v.Kind() != KindNull {
		t.Errorf("Expected null kind for malformed input, got %s", v.Kind())
	}
	if v.Text() != "" {
		t.Errorf("Expected empty text, got %q", v.Text())
	}
}

func TestValueArrayAndObject(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`{"opts": [{"label": "Yes"}, {"label": "No"}]}`), &v); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	obj := v.Object()
	if obj == nil {
		t.Fatal("Expected object fields")
	}
	opts := obj["opts"].Array()
	if len(opts) != 2 {
		t.Fatalf("Expected 2 options, got %d", len(opts))
	}
	if got := opts[0].Object()["label"].Text(); got != "Yes" {
		t.Errorf("label = %q, want %q", got, "Yes")
	}
}
