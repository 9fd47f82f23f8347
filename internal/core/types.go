package core

import (
	"errors"
	"fmt"
	"sort"

	pcore "dithermap/pkg/core"
)

// Mode identifiers exposed by the dither-mode selector.
const (
	ModeNone      = "none"
	ModeBlueNoise = "bluenoise"
	ModeRiemersma = "riemersma"
)

// ErrUnknownMode is returned for identifiers that were never registered.
var ErrUnknownMode = errors.New("unknown dither mode")

// Mode describes one entry of the dither-mode selector.
type Mode struct {
	ID    string
	Label string
	// UsesThresholdMap is set for ordered modes that compare pixels against a
	// rank grid. Other modes run without one.
	UsesThresholdMap bool
}

// MaskSource hands out threshold maps, typically a session cache.
type MaskSource interface {
	Get(size int, seed int64) (*pcore.RankGrid, error)
}

var modes = map[string]Mode{}

// Register adds a mode under its ID. Empty IDs are ignored.
func Register(m Mode) {
	if m.ID == "" {
		return
	}
	modes[m.ID] = m
}

// LookupMode returns the mode registered under id.
func LookupMode(id string) (Mode, bool) {
	m, ok := modes[id]
	return m, ok
}

// Modes lists the registered modes ordered by ID.
func Modes() []Mode {
	out := make([]Mode, 0, len(modes))
	for _, m := range modes {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// MaskFor returns the threshold map a mode needs at (size, seed). Modes that
// do not use one yield a nil grid and no error.
func MaskFor(src MaskSource, id string, size int, seed int64) (*pcore.RankGrid, error) {
	m, ok := modes[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, id)
	}
	if !m.UsesThresholdMap {
		return nil, nil
	}
	return src.Get(size, seed)
}

func init() {
	Register(Mode{ID: ModeNone, Label: "None"})
	Register(Mode{ID: ModeBlueNoise, Label: "Blue noise", UsesThresholdMap: true})
	Register(Mode{ID: ModeRiemersma, Label: "Riemersma"})
}
