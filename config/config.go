// Package config parses the multimap's tuning knobs the way
// _examples/louis77-mulldb/config does: flag.FlagSet over a small
// struct, with environment-variable fallbacks, so the demo binary and
// its tests can run at a small fanout without recompiling anything.
//
// Fanout and LineSize are spec §3's compile-time tuning constants.
// Changing them changes only performance, never the multimap's
// observable semantics: Config exists to make that tuning a startup-time
// decision instead of a source edit, not to make it part of the
// contract.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"cachetree/multimap"
)

// Config holds the two knobs the core cares about.
type Config struct {
	Fanout   int
	LineSize int
}

// Default mirrors the source's MAX_KEYS=500, LINE_SIZE=64.
func Default() Config {
	return Config{
		Fanout:   multimap.DefaultFanout,
		LineSize: multimap.DefaultLineSize,
	}
}

// Validate reports the same lower bounds NewTuned enforces, so a bad
// flag value is caught before it ever reaches the tree.
func (c Config) Validate() error {
	if c.Fanout < 2 {
		return fmt.Errorf("config: fanout must be >= 2, got %d", c.Fanout)
	}
	if c.LineSize < 4 {
		return fmt.Errorf("config: line-size must hold at least one value, got %d", c.LineSize)
	}
	return nil
}

// Parse reads -fanout/-line-size flags (falling back to
// MULTIMAP_FANOUT/MULTIMAP_LINE_SIZE environment variables, then the
// source's defaults), in the order the mulldb config package uses.
func Parse(args []string) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet("cachetree", flag.ContinueOnError)
	fs.IntVar(&cfg.Fanout, "fanout", envInt("MULTIMAP_FANOUT", cfg.Fanout), "max keys per B-tree node")
	fs.IntVar(&cfg.LineSize, "line-size", envInt("MULTIMAP_LINE_SIZE", cfg.LineSize), "cache-line size in bytes used to grow value buffers")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

// New builds a multimap tuned by this Config.
func (c Config) New() *multimap.Multimap {
	return multimap.NewTuned(c.Fanout, c.LineSize)
}
