// Package sim implements the tournament simulation engine: a seed-driven,
// resumable phase state machine that selects weighted stochastic events
// against a mutable tribute population and records the narrative as it goes.
package sim

import "fmt"

// Config holds the per-run simulation parameters. Validated at
// construction; a simulator is never built from a bad config.
type Config struct {
	Seed           int64  `json:"seed"`
	MaxDays        int    `json:"max_days"`
	StrictShutdown int    `json:"strict_shutdown,omitempty"` // 0 disables early termination
	ExportPath     string `json:"export_path,omitempty"`

	// LogSink, when set, receives every narrative line as it is appended.
	// A panicking sink is isolated so the simulation always completes.
	LogSink func(string) `json:"-"`
}

// DefaultConfig returns a 30-day run with the given seed.
func DefaultConfig(seed int64) Config {
	return Config{Seed: seed, MaxDays: 30}
}

// Validate rejects impossible configurations with a descriptive error.
func (c Config) Validate() error {
	if c.MaxDays < 1 {
		return fmt.Errorf("max_days must be at least 1, got %d", c.MaxDays)
	}
	if c.StrictShutdown < 0 {
		return fmt.Errorf("strict_shutdown must be positive or zero (disabled), got %d", c.StrictShutdown)
	}
	if c.StrictShutdown > 0 && c.StrictShutdown > c.MaxDays {
		return fmt.Errorf("strict_shutdown day %d exceeds max_days %d", c.StrictShutdown, c.MaxDays)
	}
	return nil
}
