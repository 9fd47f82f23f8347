package app

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Sweep animates a threshold cut between 0 and the cell count and back,
// easing in and out at both ends.
type Sweep struct {
	total    int
	duration float32
	tween    *gween.Tween
	rising   bool
	cut      int
	Paused   bool
}

// NewSweep creates a sweep over total cells lasting seconds per direction.
func NewSweep(total int, seconds float64) *Sweep {
	if seconds <= 0 {
		seconds = 1
	}
	s := &Sweep{total: total, duration: float32(seconds), rising: true}
	s.tween = gween.New(0, float32(total), s.duration, ease.InOutQuad)
	return s
}

// Update advances the sweep by dt seconds and returns the current cut.
func (s *Sweep) Update(dt float32) int {
	if s.Paused {
		return s.cut
	}
	v, done := s.tween.Update(dt)
	s.cut = clampCut(v, s.total)
	if done {
		s.rising = !s.rising
		from, to := float32(0), float32(s.total)
		if !s.rising {
			from, to = to, from
		}
		s.tween = gween.New(from, to, s.duration, ease.InOutQuad)
	}
	return s.cut
}

// Step moves the cut by delta cells and pauses the animation.
func (s *Sweep) Step(delta int) int {
	s.Paused = true
	s.cut = min(max(s.cut+delta, 0), s.total)
	return s.cut
}

// Cut returns the current threshold.
func (s *Sweep) Cut() int { return s.cut }

// Rising reports whether the cut is currently growing.
func (s *Sweep) Rising() bool { return s.rising }

func clampCut(v float32, total int) int {
	c := int(math.Round(float64(v)))
	return min(max(c, 0), total)
}
