// Package audio plays short removal cues through the beep speaker.
// A nil or disabled Player is a valid no-op.
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/survival-arena/config"
	"github.com/lixenwraith/survival-arena/constants"
)

// Player owns the speaker for the lifetime of a session
type Player struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	cue     time.Duration
	volume  float64
	mixer   *beep.Mixer
	enabled bool
	started bool
}

// NewPlayer initializes the speaker; a disabled config returns a muted player without touching audio devices
func NewPlayer(cfg config.AudioConfig) (*Player, error) {
	p := &Player{
		rate:   beep.SampleRate(cfg.SampleRate),
		cue:    time.Duration(cfg.CueMs) * time.Millisecond,
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
	}
	if !cfg.Enabled {
		return p, nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return p, fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	p.enabled = true
	log.Printf("[audio] speaker started at %d Hz", cfg.SampleRate)
	return p, nil
}

// Enabled reports whether cues are currently audible
func (p *Player) Enabled() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Toggle mutes or unmutes cues; no effect when the speaker never started
func (p *Player) Toggle() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}
	p.enabled = !p.enabled
	log.Printf("[audio] enabled=%v", p.enabled)
}

// Removed queues a cue pitched by the removed entity's size
func (p *Player) Removed(size int) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}

	tone, err := Tone(p.rate, PitchForSize(size, constants.MaxSize), p.cue, p.volume)
	if err != nil {
		log.Printf("[audio] cue for size %d: %v", size, err)
		return
	}

	speaker.Lock()
	p.mixer.Add(tone)
	speaker.Unlock()
}

// Close stops playback and releases the device
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	p.started = false
	p.enabled = false
}
