// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides tuning knobs for the display pipeline.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// PIPELINE CONFIG
// =============================================================================

// Pipeline holds the display-pipeline tuning knobs. Zero values are
// replaced by defaults during Validate, so a partially-filled TOML file
// is fine.
type Pipeline struct {
	// ContextRadius is the number of unchanged diff lines kept on each
	// side of a collapsed run.
	ContextRadius int `toml:"context_radius"`

	// SummaryMaxWidth caps one-line summaries in collapsed rows.
	SummaryMaxWidth int `toml:"summary_max_width"`

	// MinTerminalDuration suppresses command durations below this
	// threshold; sub-threshold values reflect transport jitter, not
	// execution time.
	MinTerminalDuration time.Duration `toml:"min_terminal_duration"`

	// PreviewLines is the number of result lines shown in collapsed
	// previews.
	PreviewLines int `toml:"preview_lines"`
}

// Default returns the standard pipeline configuration.
func Default() Pipeline {
	return Pipeline{
		ContextRadius:       2,
		SummaryMaxWidth:     60,
		MinTerminalDuration: 100 * time.Millisecond,
		PreviewLines:        3,
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads a pipeline configuration from a TOML file, fills unset
// fields with defaults, and validates the result.
func Load(path string) (Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}

	cfg := Pipeline{}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}

	cfg.Validate()
	return cfg, nil
}

// Validate clamps out-of-range values and substitutes defaults for
// unset fields. It always leaves the config usable.
func (c *Pipeline) Validate() {
	def := Default()

	if c.ContextRadius < 0 {
		c.ContextRadius = def.ContextRadius
	}
	if c.SummaryMaxWidth <= 0 {
		c.SummaryMaxWidth = def.SummaryMaxWidth
	} else if c.SummaryMaxWidth < 16 {
		c.SummaryMaxWidth = 16
	}
	if c.MinTerminalDuration <= 0 {
		c.MinTerminalDuration = def.MinTerminalDuration
	}
	if c.PreviewLines <= 0 {
		c.PreviewLines = def.PreviewLines
	}
}
