package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue timings
const (
	bounceDuration   = 60 * time.Millisecond
	levelNoteOne     = 90 * time.Millisecond
	levelNoteTwo     = 160 * time.Millisecond
	gameOverDuration = 600 * time.Millisecond
	attack           = 5 * time.Millisecond
)

// sweep is a finite sine oscillator whose frequency moves linearly from
// one value to another and whose amplitude decays exponentially.
type sweep struct {
	rate     beep.SampleRate
	from, to float64
	decay    float64 // per second
	attack   int
	total    int
	pos      int
	phase    float64
}

// NewSweep creates a tone gliding from one frequency to another.
// A zero decay keeps the amplitude flat.
func NewSweep(rate beep.SampleRate, from, to float64, d time.Duration, decay float64) beep.Streamer {
	return &sweep{
		rate:   rate,
		from:   from,
		to:     to,
		decay:  decay,
		attack: rate.N(attack),
		total:  rate.N(d),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}

		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		t := float64(s.pos) / float64(s.rate)

		amp := math.Exp(-s.decay * t)
		if s.pos < s.attack {
			amp *= float64(s.pos) / float64(s.attack)
		}

		val := amp * math.Sin(2*math.Pi*s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// withVolume scales a stream by a linear factor.
// math.Log2(0) is -Inf, so zero volume is mapped to silence.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// BounceSound is a short high blip.
func BounceSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return withVolume(NewSweep(rate, 660, 880, bounceDuration, 30), vol*0.5)
}

// LevelUpSound is two rising notes (E5, A5).
func LevelUpSound(rate beep.SampleRate, vol float64) beep.Streamer {
	seq := beep.Seq(
		NewSweep(rate, 659.25, 659.25, levelNoteOne, 8),
		NewSweep(rate, 880, 880, levelNoteTwo, 6),
	)
	return withVolume(seq, vol*0.5)
}

// GameOverSound is a slow downward glide.
func GameOverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	return withVolume(NewSweep(rate, 440, 110, gameOverDuration, 3), vol*0.6)
}
