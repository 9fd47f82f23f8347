package core

import (
	"errors"
	"testing"

	pcore "dithermap/pkg/core"
)

type countingSource struct {
	calls int
}

func (c *countingSource) Get(size int, seed int64) (*pcore.RankGrid, error) {
	c.calls++
	return pcore.NewRankGrid(size), nil
}

func TestBuiltinModesRegistered(t *testing.T) {
	for _, id := range []string{ModeBlueNoise, ModeRiemersma, ModeNone} {
		if _, ok := LookupMode(id); !ok {
			t.Fatalf("mode %q not registered", id)
		}
	}
	ids := Modes()
	for i := 1; i < len(ids); i++ {
		if ids[i-1].ID >= ids[i].ID {
			t.Fatalf("Modes() not sorted: %q before %q", ids[i-1].ID, ids[i].ID)
		}
	}
}

func TestMaskForOnlyGeneratesForThresholdModes(t *testing.T) {
	src := &countingSource{}

	g, err := MaskFor(src, ModeRiemersma, 16, 1)
	if err != nil || g != nil {
		t.Fatalf("riemersma MaskFor = %v, %v; want nil, nil", g, err)
	}
	if src.calls != 0 {
		t.Fatalf("riemersma triggered %d generations", src.calls)
	}

	g, err = MaskFor(src, ModeBlueNoise, 16, 1)
	if err != nil {
		t.Fatal(err)
	}
	if g == nil || g.Size != 16 {
		t.Fatalf("bluenoise MaskFor returned %v", g)
	}
	if src.calls != 1 {
		t.Fatalf("bluenoise triggered %d generations, want 1", src.calls)
	}

	if _, err := MaskFor(src, "bayer99", 16, 1); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("unknown mode error = %v", err)
	}
}

func TestParameterSnapshotLines(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:   "Mask",
		Params: []Parameter{IntParam("size", "Size", 64), StringParam("mode", "Mode", "bluenoise")},
	}}}
	lines := snap.Lines()
	want := []string{"Mask", "  Size: 64", "  Mode: bluenoise"}
	if len(lines) != len(want) {
		t.Fatalf("Lines() = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
