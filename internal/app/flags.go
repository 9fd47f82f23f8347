package app

import (
	"flag"
	"fmt"
	"strconv"

	"dithermap/internal/core"
	"dithermap/pkg/bluenoise"
)

// Config represents the command-line parameters for the preview.
type Config struct {
	Size  int
	Seed  int64
	Scale int
	Tiles int
	TPS   int
	Mode  string
	// Sweep is the duration in seconds of one threshold sweep from empty to full.
	Sweep   float64
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Size: 64, Seed: 42, Scale: 4, Tiles: 2, TPS: 60, Mode: core.ModeBlueNoise, Sweep: 4}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "threshold map side length")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the first placed point")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Tiles, "tiles", c.Tiles, "repeat the map tiles x tiles times to show seamless wrapping")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.Mode, "mode", c.Mode, "dither mode to preview")
	fs.Float64Var(&c.Sweep, "sweep", c.Sweep, "seconds per threshold sweep")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "enable debug logging")
}

// Apply overrides fields from key=value pairs. Unparseable or out-of-range
// values are ignored.
func (c *Config) Apply(kv map[string]string) {
	if v, ok := kv["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= bluenoise.MinSize {
			c.Size = parsed
		}
	}
	if v, ok := kv["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := kv["scale"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Scale = parsed
		}
	}
	if v, ok := kv["tiles"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Tiles = parsed
		}
	}
	if v, ok := kv["mode"]; ok {
		if _, known := core.LookupMode(v); known {
			c.Mode = v
		}
	}
	if v, ok := kv["sweep"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Sweep = parsed
		}
	}
}

// Validate reports configuration the preview cannot run with.
func (c *Config) Validate() error {
	if c.Size < bluenoise.MinSize {
		return fmt.Errorf("size %d: %w", c.Size, bluenoise.ErrInvalidSize)
	}
	if _, ok := core.LookupMode(c.Mode); !ok {
		return fmt.Errorf("%w %q", core.ErrUnknownMode, c.Mode)
	}
	if c.Scale <= 0 || c.Tiles <= 0 || c.TPS <= 0 {
		return fmt.Errorf("scale, tiles and tps must be positive")
	}
	return nil
}
