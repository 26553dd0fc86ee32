package game

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/stonefall/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// TicksPerSecond is the target simulation rate.
	TicksPerSecond int
	// LevelID selects the level to play. Empty means the first level.
	LevelID string
	// CellWidth is the number of terminal columns drawn per grid cell.
	CellWidth int
	// DigFlux lets the player walk through flux.
	DigFlux bool
	// Debug checks the single-player invariant after every tick.
	Debug bool
}

// DefaultConfig returns the standard configuration: 30 ticks per second on the first level.
func DefaultConfig() Config {
	return Config{
		TicksPerSecond: 30,
		CellWidth:      2,
		DigFlux:        true,
	}
}

// ConfigFromEnv overlays STONEFALL_* environment variables on the defaults:
// STONEFALL_TPS, STONEFALL_LEVEL, STONEFALL_CELL_WIDTH, STONEFALL_DIG_FLUX,
// STONEFALL_DEBUG.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("STONEFALL_TPS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("STONEFALL_TPS: %w", err)
		}
		cfg.TicksPerSecond = n
	}
	if v := os.Getenv("STONEFALL_LEVEL"); v != "" {
		cfg.LevelID = v
	}
	if v := os.Getenv("STONEFALL_CELL_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("STONEFALL_CELL_WIDTH: %w", err)
		}
		cfg.CellWidth = n
	}
	if v := os.Getenv("STONEFALL_DIG_FLUX"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("STONEFALL_DIG_FLUX: %w", err)
		}
		cfg.DigFlux = b
	}
	if v := os.Getenv("STONEFALL_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("STONEFALL_DEBUG: %w", err)
		}
		cfg.Debug = b
	}

	return cfg, cfg.Validate()
}

// Validate reports configuration values the game cannot run with.
func (c Config) Validate() error {
	if c.TicksPerSecond < 1 || c.TicksPerSecond > 1000 {
		return fmt.Errorf("ticks per second must be in [1, 1000], got %d", c.TicksPerSecond)
	}
	if c.CellWidth < 1 || c.CellWidth > 8 {
		return fmt.Errorf("cell width must be in [1, 8], got %d", c.CellWidth)
	}
	return nil
}

// TickInterval returns the target time between ticks.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TicksPerSecond)
}

// Rules returns the world rules selected by the configuration.
func (c Config) Rules() world.Rules {
	return world.Rules{DigFlux: c.DigFlux}
}
