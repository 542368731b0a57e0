package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/turnbounce/internal/core"
)

// drain streams s to completion and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream never ended")
	return nil
}

func TestSweepLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := NewSweep(rate, 440, 440, 100*time.Millisecond, 0)

	samples := drain(t, s)
	if len(samples) != rate.N(100*time.Millisecond) {
		t.Errorf("got %d samples, want %d", len(samples), rate.N(100*time.Millisecond))
	}
	if s.Err() != nil {
		t.Errorf("Err() = %v", s.Err())
	}
}

func TestSweepRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(t, NewSweep(rate, 880, 110, 200*time.Millisecond, 5))

	nonZero := false
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || math.IsNaN(s[0]) {
			t.Fatalf("sample %d out of range: %v", i, s[0])
		}
		if s[0] != s[1] {
			t.Fatalf("sample %d not mono: %v", i, s)
		}
		if s[0] != 0 {
			nonZero = true
		}
	}
	if !nonZero {
		t.Error("sweep produced silence")
	}
}

func TestSweepAttackStartsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	buf := make([][2]float64, 1)
	NewSweep(rate, 440, 440, 50*time.Millisecond, 0).Stream(buf)
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want 0", buf[0][0])
	}
}

func TestCuesAreFinite(t *testing.T) {
	rate := beep.SampleRate(44100)

	tests := []struct {
		name string
		s    beep.Streamer
		want time.Duration
	}{
		{"bounce", BounceSound(rate, 1), bounceDuration},
		{"level up", LevelUpSound(rate, 1), levelNoteOne + levelNoteTwo},
		{"game over", GameOverSound(rate, 1), gameOverDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := drain(t, tt.s)
			// Seq may split notes across buffers; allow one sample of rounding per note
			if diff := len(samples) - rate.N(tt.want); diff < -2 || diff > 2 {
				t.Errorf("got %d samples, want about %d", len(samples), rate.N(tt.want))
			}
		})
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	for i, s := range drain(t, BounceSound(rate, 0)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, s)
		}
	}
}

func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(0.8)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound operations panicked without initialization: %v", r)
		}
	}()

	if sm.Enabled() {
		t.Error("manager enabled before Initialize")
	}
	sm.Play(core.EventBounce)
	sm.Play(core.EventLevelUp)
	sm.Play(core.EventGameOver)
	sm.Play(core.Event(99))
	sm.Cleanup()
}

func TestSoundManagerVolumeClamped(t *testing.T) {
	if v := NewSoundManager(3).volume; v != 1 {
		t.Errorf("volume = %v, want 1", v)
	}
	if v := NewSoundManager(-1).volume; v != 0 {
		t.Errorf("volume = %v, want 0", v)
	}
}

func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(0.5)

	// Speaker initialization fails on machines without an audio device
	if err := sm.Initialize(); err != nil {
		t.Logf("sound initialization failed (expected without audio device): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("second Initialize should be a no-op, got %v", err)
	}
	sm.Play(core.EventBounce)
	sm.Cleanup()
	if sm.Enabled() {
		t.Error("manager still enabled after Cleanup")
	}
}
