package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Pitch range for removal cues; bigger entities sound lower
const (
	pitchHigh = 880.0
	pitchLow  = 110.0
)

// PitchForSize maps an entity size onto a descending log-scaled pitch
func PitchForSize(size, maxSize int) float64 {
	if size < 1 {
		size = 1
	}
	if maxSize < 2 {
		maxSize = 2
	}
	t := math.Log(float64(size)) / math.Log(float64(maxSize))
	t = math.Max(0, math.Min(1, t))
	return pitchHigh * math.Pow(pitchLow/pitchHigh, t)
}

// envelope applies a linear attack and release over a fixed length
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s over duration, cutting it off at the end
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: beep.Take(rate.N(duration), s),
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Tone builds a finite enveloped sine cue
func Tone(rate beep.SampleRate, freq float64, duration time.Duration, vol float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	edge := duration / 6
	return newVolume(NewEnvelope(sine, duration, edge, edge*2, rate), vol), nil
}
