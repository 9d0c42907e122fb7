// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package grouping derives the compact display model from the event stream.
package grouping

import (
	"net/url"
	"regexp"
)

// markdownLinkRe matches `[title](url)` links with http/https URLs.
var markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\((http[^)\s]+)\)`)

// bareURLRe extracts naked URLs from unstructured result text.
var bareURLRe = regexp.MustCompile(`https?://[^\s<>"\)\]]+`)

// parseSearchResults extracts search hits from web-search result text.
// Two tiers: markdown-link syntax first; when that yields nothing, bare
// URLs with the host standing in as the title.
func parseSearchResults(text string) []SearchResult {
	var results []SearchResult

	for _, m := range markdownLinkRe.FindAllStringSubmatch(text, -1) {
		results = append(results, SearchResult{Title: m[1], URL: m[2]})
	}
	if len(results) > 0 {
		return results
	}

	for _, raw := range bareURLRe.FindAllString(text, -1) {
		title := raw
		if u, err := url.Parse(raw); err == nil && u.Host != "" {
			title = u.Host
		}
		results = append(results, SearchResult{Title: title, URL: raw})
	}
	return results
}
