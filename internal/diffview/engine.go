// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diffview computes display diffs between two text bodies.
package diffview

import (
	"hash/fnv"
	"sync"
)

// =============================================================================
// MEMOIZING ENGINE
// =============================================================================

// Engine memoizes diff computation keyed by a content hash of both
// inputs. Caching is a performance contract only: Diff returns output
// identical to Compute for every input, cache hit or miss. The engine
// is safe for concurrent use; each diff computation is independent, so
// no cross-item synchronization exists beyond the cache map itself.
type Engine struct {
	mu     sync.RWMutex
	cache  map[uint64][]Line
	radius int
}

// NewEngine creates an engine with the default context radius.
func NewEngine() *Engine {
	return NewEngineRadius(DefaultContextRadius)
}

// NewEngineRadius creates an engine with an explicit context radius.
func NewEngineRadius(radius int) *Engine {
	if radius < 0 {
		radius = DefaultContextRadius
	}
	return &Engine{
		cache:  make(map[uint64][]Line),
		radius: radius,
	}
}

// Diff returns the display diff for the input pair, computing it at
// most once per distinct (oldText, newText) content. Callers must treat
// the returned slice as read-only.
func (e *Engine) Diff(oldText, newText string) []Line {
	key := contentKey(oldText, newText)

	e.mu.RLock()
	cached, ok := e.cache[key]
	e.mu.RUnlock()
	if ok {
		return cached
	}

	lines := ComputeRadius(oldText, newText, e.radius)

	e.mu.Lock()
	e.cache[key] = lines
	e.mu.Unlock()
	return lines
}

// ForEdit parses Edit tool content and computes its display diff with
// the engine's radius, memoized like Diff. Content matching neither
// payload form yields nil.
func (e *Engine) ForEdit(content string) []Line {
	payload, ok := ParseEditPayload(content)
	if !ok {
		return nil
	}
	return e.Diff(payload.OldString, payload.NewString)
}

// Invalidate drops all cached results.
func (e *Engine) Invalidate() {
	e.mu.Lock()
	e.cache = make(map[uint64][]Line)
	e.mu.Unlock()
}

// contentKey hashes both inputs into one cache key. The old text's
// length is mixed in first so ("ab","c") and ("a","bc") never collide.
func contentKey(oldText, newText string) uint64 {
	h := fnv.New64a()
	var lenBuf [8]byte
	n := len(oldText)
	for i := 0; i < 8; i++ {
		lenBuf[i] = byte(n >> (8 * i))
	}
	h.Write(lenBuf[:])
	h.Write([]byte(oldText))
	h.Write([]byte(newText))
	return h.Sum64()
}
