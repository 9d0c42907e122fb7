// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides string helpers shared by the pipeline packages.
//
// All truncation is rune- or width-aware so multi-byte and double-width
// characters are never split mid-character.
package util
