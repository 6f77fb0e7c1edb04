package game

import (
	"time"

	"cube3d/internal/config"
)

// Pacer holds a frame to the target duration. It sleeps through most of
// the remaining budget and optionally spins for the rest, which is far
// more precise than sleeping alone on high frame rates.
type Pacer struct {
	clock     Clock
	target    time.Duration
	threshold time.Duration
	busyWait  bool
}

// NewPacer creates a pacer for the given timing settings.
func NewPacer(clock Clock, t config.Timing) *Pacer {
	return &Pacer{
		clock:     clock,
		target:    t.TargetFrame(),
		threshold: t.SleepThreshold(),
		busyWait:  t.BusyWait,
	}
}

// Target returns the frame budget.
func (p *Pacer) Target() time.Duration { return p.target }

// Wait finishes a frame that began at start. It returns the time spent on
// work before waiting and the full frame duration.
func (p *Pacer) Wait(start time.Time) (required, frame time.Duration) {
	now := p.clock.Now()
	required = now.Sub(start)
	if required < p.threshold {
		p.clock.Sleep(p.threshold - required)
		now = p.clock.Now()
	}

	if p.busyWait {
		// spin the last part of the budget
		for now.Sub(start) < p.target {
			now = p.clock.Now()
		}
	}

	return required, now.Sub(start)
}
