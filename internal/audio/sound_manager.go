// Package audio plays short synthesized cues for game events.
// Audio is optional: every Play call is a no-op until Initialize succeeds.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/turnbounce/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferSize = 100 * time.Millisecond
)

// SoundManager owns the speaker mixer and plays event cues into it.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager with a master volume in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
	}
}

// Initialize opens the speaker and starts the mixer.
// Calling it again after success is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(bufferSize)); err != nil {
		return fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// Enabled reports whether sounds are actually played.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues the cue for a game event. Unknown events are ignored.
func (sm *SoundManager) Play(e core.Event) {
	switch e {
	case core.EventBounce:
		sm.PlayBounce()
	case core.EventLevelUp:
		sm.PlayLevelUp()
	case core.EventGameOver:
		sm.PlayGameOver()
	}
}

// PlayBounce plays a short blip.
func (sm *SoundManager) PlayBounce() {
	sm.add(BounceSound(sampleRate, sm.volume))
}

// PlayLevelUp plays a rising two-note chime.
func (sm *SoundManager) PlayLevelUp() {
	sm.add(LevelUpSound(sampleRate, sm.volume))
}

// PlayGameOver plays a falling sweep.
func (sm *SoundManager) PlayGameOver() {
	sm.add(GameOverSound(sampleRate, sm.volume))
}

func (sm *SoundManager) add(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
