package engine

import (
	"time"

	"github.com/lixenwraith/survival-arena/constants"
)

// Pacer computes per-frame sleeps that hold a fixed frame rate
// A low-pass filtered correction compensates scheduler jitter and sleep overshoot
type Pacer struct {
	target time.Duration
	adjust time.Duration
}

// NewPacer creates a pacer for the given frame interval with zero correction
func NewPacer(target time.Duration) *Pacer {
	return &Pacer{target: target}
}

// Target returns the frame interval
func (p *Pacer) Target() time.Duration {
	return p.target
}

// Adjust returns the current smoothed correction
func (p *Pacer) Adjust() time.Duration {
	return p.adjust
}

// SleepFor returns the sleep for a frame whose work took work, never negative
func (p *Pacer) SleepFor(work time.Duration) time.Duration {
	sleep := p.target - work + p.adjust
	if sleep < 0 {
		return 0
	}
	return sleep
}

// Settle folds a measured frame time into the correction
// adjust' = 0.9*adjust + 0.1*(target - frame)
func (p *Pacer) Settle(frame time.Duration) {
	keep := constants.PacerSmoothing
	p.adjust = time.Duration(keep*float64(p.adjust) + (1-keep)*float64(p.target-frame))
}

// Tick is the single-call form: sleep from the current correction, then settle on measured
func (p *Pacer) Tick(measured time.Duration) time.Duration {
	sleep := p.SleepFor(measured)
	p.Settle(measured)
	return sleep
}
