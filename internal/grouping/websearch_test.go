// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package grouping derives the compact display model from the event stream.
package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchResultsMarkdownWinsOverBare(t *testing.T) {
	// When any markdown links parse, stray bare URLs in the same text
	// are ignored.
	text := "Top hit: [Go spec](https://go.dev/ref/spec)\nAlso https://example.com/noise"

	results := parseSearchResults(text)
	require.Len(t, results, 1)
	assert.Equal(t, "Go spec", results[0].Title)
	assert.Equal(t, "https://go.dev/ref/spec", results[0].URL)
}

func TestParseSearchResultsBareURLBoundaries(t *testing.T) {
	text := `See (https://a.dev/x) and "https://b.dev/y" or <https://c.dev/z>`

	results := parseSearchResults(text)
	require.Len(t, results, 3)
	assert.Equal(t, "https://a.dev/x", results[0].URL)
	assert.Equal(t, "https://b.dev/y", results[1].URL)
	assert.Equal(t, "https://c.dev/z", results[2].URL)
	assert.Equal(t, "a.dev", results[0].Title)
}

func TestParseSearchResultsEmpty(t *testing.T) {
	assert.Empty(t, parseSearchResults(""))
	assert.Empty(t, parseSearchResults("no links here, just prose"))
}
