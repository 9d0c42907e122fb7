// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles maps classification verdicts to the visual palette.
//
// Each classify.Category resolves to one of five tints: success,
// warning, error, info, neutral. The tints carry the presentation
// semantics of a verdict so renderers never inspect categories
// directly, and the adaptive colors track terminal light/dark themes
// via Lip Gloss.
package styles
