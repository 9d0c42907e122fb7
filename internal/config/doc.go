// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides tuning knobs for the display pipeline.
//
// Configuration is optional: every consumer works with Default(), and
// Load fills unset TOML fields with defaults. Validation clamps rather
// than rejects, so a config is always usable.
package config
