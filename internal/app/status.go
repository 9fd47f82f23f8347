package app

import (
	"fmt"

	"dithermap/internal/core"
)

// Status is what the preview currently shows.
type Status struct {
	Size   int
	Seed   int64
	Mode   string
	Cut    int
	Levels bool
	// Loading is set while the threshold map is being generated.
	Loading bool
	Err     error
}

// Snapshot renders the status as HUD parameters.
func (s Status) Snapshot() core.ParameterSnapshot {
	mask := core.ParameterGroup{Name: "Threshold map", Params: []core.Parameter{
		core.IntParam("size", "Size", int64(s.Size)),
		core.IntParam("seed", "Seed", s.Seed),
		core.StringParam("mode", "Mode", s.Mode),
	}}

	view := core.ParameterGroup{Name: "View"}
	switch {
	case s.Err != nil:
		view.Params = append(view.Params, core.StringParam("error", "Error", s.Err.Error()))
	case s.Loading:
		view.Params = append(view.Params, core.StringParam("state", "State", "generating..."))
	case !modeUsesMap(s.Mode):
		view.Params = append(view.Params, core.StringParam("state", "State", "no threshold map for this mode"))
	case s.Levels:
		view.Params = append(view.Params, core.StringParam("view", "Showing", "rank levels"))
	default:
		total := s.Size * s.Size
		view.Params = append(view.Params,
			core.StringParam("cut", "Cut", fmt.Sprintf("%d/%d (%.1f%%)", s.Cut, total, 100*float64(s.Cut)/float64(max(total, 1)))))
	}

	keys := core.ParameterGroup{Name: "Keys", Params: []core.Parameter{
		core.StringParam("keys", "space", "pause  arrows step  L levels"),
		core.StringParam("keys2", "M", "mode  S new seed  H hud  Q quit"),
	}}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{mask, view, keys}}
}

func modeUsesMap(id string) bool {
	m, ok := core.LookupMode(id)
	return ok && m.UsesThresholdMap
}

// nextMode returns the registered mode after id, wrapping around.
func nextMode(id string) string {
	modes := core.Modes()
	if len(modes) == 0 {
		return id
	}
	for i, m := range modes {
		if m.ID == id {
			return modes[(i+1)%len(modes)].ID
		}
	}
	return modes[0].ID
}
