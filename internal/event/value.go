// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package event defines the chronological message-stream records the
// display pipeline consumes.
package event

import (
	"bytes"
	"encoding/json"
)

// =============================================================================
// VALUE KIND
// =============================================================================

// Kind identifies the JSON shape a Value holds.
type Kind int

const (
	// KindNull is the zero Value; also the result of failed decoding.
	KindNull Kind = iota
	// KindString holds a JSON string
	KindString
	// KindNumber holds a JSON number in its original textual form
	KindNumber
	// KindBool holds a JSON boolean
	KindBool
	// KindArray holds a JSON array
	KindArray
	// KindObject holds a JSON object
	KindObject
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// =============================================================================
// VALUE TYPE
// =============================================================================

// Value is a tagged union over the JSON types that appear in tool
// argument maps. Only scalar kinds are consumed by named-field
// extraction; arrays and objects round-trip through their compact JSON
// form for display.
type Value struct {
	kind Kind
	str  string
	num  json.Number
	b    bool
	raw  json.RawMessage // original encoding for array/object kinds
}

// Kind returns the JSON shape of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// UnmarshalJSON decodes any JSON value. Decoding never fails: input
// that is not valid JSON yields the null value.
func (v *Value) UnmarshalJSON(data []byte) error {
	*v = decodeValue(data)
	return nil
}

// decodeValue classifies a raw JSON fragment into a Value.
func decodeValue(data []byte) Value {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Value{}
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return Value{}
		}
		return Value{kind: KindString, str: s}
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return Value{}
		}
		return Value{kind: KindBool, b: b}
	case 'n':
		return Value{}
	case '[':
		if !json.Valid(trimmed) {
			return Value{}
		}
		return Value{kind: KindArray, raw: append(json.RawMessage(nil), trimmed...)}
	case '{':
		if !json.Valid(trimmed) {
			return Value{}
		}
		return Value{kind: KindObject, raw: append(json.RawMessage(nil), trimmed...)}
	default:
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return Value{}
		}
		return Value{kind: KindNumber, num: n}
	}
}

// =============================================================================
// COERCION
// =============================================================================

// Text coerces the value to its display string form: strings verbatim,
// numbers and booleans via their natural textual form, arrays and
// objects via their compact JSON encoding, null as "".
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num.String()
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindArray, KindObject:
		var buf bytes.Buffer
		if err := json.Compact(&buf, v.raw); err != nil {
			return string(v.raw)
		}
		return buf.String()
	default:
		return ""
	}
}

// Bool returns the boolean payload, false for any other kind.
func (v Value) Bool() bool {
	return v.kind == KindBool && v.b
}

// Array decodes an array value into its elements. Non-array kinds
// return nil.
func (v Value) Array() []Value {
	if v.kind != KindArray {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(v.raw, &elems); err != nil {
		return nil
	}
	out := make([]Value, 0, len(elems))
	for _, e := range elems {
		out = append(out, decodeValue(e))
	}
	return out
}

// Object decodes an object value into its fields. Non-object kinds
// return nil.
func (v Value) Object() map[string]Value {
	if v.kind != KindObject {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(v.raw, &fields); err != nil {
		return nil
	}
	out := make(map[string]Value, len(fields))
	for k, f := range fields {
		out[k] = decodeValue(f)
	}
	return out
}

// StringValue builds a string Value. Used by tests and synthetic args.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}
