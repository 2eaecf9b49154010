// Package config provides YAML-based configuration loading for HyperDrop.
package config

import (
	"errors"
	"fmt"
	"time"
)

// MinBoardSize is the smallest accepted width and height. Every piece in the
// catalog is at most four cells wide.
const MinBoardSize = 4

// HyperdropConfig contains all tunable game parameters.
type HyperdropConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the playfield dimensions in cells.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines gravity timing.
type TimingConfig struct {
	DropIntervalMs int `yaml:"drop_interval_ms"`
}

// ScoringConfig defines how cleared rows are scored.
type ScoringConfig struct {
	LinePoints int `yaml:"line_points"`
}

// DropInterval returns the gravity threshold as a duration.
func (c HyperdropConfig) DropInterval() time.Duration {
	return time.Duration(c.Timing.DropIntervalMs) * time.Millisecond
}

// Validate reports every out-of-range value in the config.
func (c HyperdropConfig) Validate() error {
	var errs []error
	if c.Board.Rows < MinBoardSize {
		errs = append(errs, fmt.Errorf("board.rows must be at least %d, got %d", MinBoardSize, c.Board.Rows))
	}
	if c.Board.Cols < MinBoardSize {
		errs = append(errs, fmt.Errorf("board.cols must be at least %d, got %d", MinBoardSize, c.Board.Cols))
	}
	if c.Timing.DropIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.drop_interval_ms must be positive, got %d", c.Timing.DropIntervalMs))
	}
	if c.Scoring.LinePoints <= 0 {
		errs = append(errs, fmt.Errorf("scoring.line_points must be positive, got %d", c.Scoring.LinePoints))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
