package app

import (
	"errors"
	"strings"
	"testing"

	"dithermap/internal/core"
)

func TestStatusSnapshotStates(t *testing.T) {
	base := Status{Size: 4, Seed: 9, Mode: core.ModeBlueNoise, Cut: 8}

	joined := strings.Join(base.Snapshot().Lines(), "\n")
	if !strings.Contains(joined, "Cut: 8/16 (50.0%)") {
		t.Fatalf("missing cut line in:\n%s", joined)
	}

	loading := base
	loading.Loading = true
	if joined := strings.Join(loading.Snapshot().Lines(), "\n"); !strings.Contains(joined, "generating") {
		t.Fatalf("loading state not shown:\n%s", joined)
	}

	failed := base
	failed.Err = errors.New("boom")
	if joined := strings.Join(failed.Snapshot().Lines(), "\n"); !strings.Contains(joined, "Error: boom") {
		t.Fatalf("error not shown:\n%s", joined)
	}

	other := base
	other.Mode = core.ModeRiemersma
	if joined := strings.Join(other.Snapshot().Lines(), "\n"); !strings.Contains(joined, "no threshold map") {
		t.Fatalf("map-less mode not flagged:\n%s", joined)
	}
}

func TestNextModeCycles(t *testing.T) {
	seen := map[string]bool{}
	id := core.ModeBlueNoise
	for i := 0; i < len(core.Modes()); i++ {
		seen[id] = true
		id = nextMode(id)
	}
	if id != core.ModeBlueNoise {
		t.Fatalf("cycle did not return to start, ended at %q", id)
	}
	if len(seen) != len(core.Modes()) {
		t.Fatalf("visited %d modes, want %d", len(seen), len(core.Modes()))
	}
	if got := nextMode("missing"); got != core.Modes()[0].ID {
		t.Fatalf("nextMode(missing) = %q", got)
	}
}
