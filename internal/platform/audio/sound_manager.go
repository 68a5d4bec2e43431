// Package audio turns game cues into short synthesized sounds played
// through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/fruit-dash/internal/core"
)

const defaultSampleRate = beep.SampleRate(44100)

// Player consumes the cues of a frame.
type Player interface {
	Play(cues ...core.Cue)
	Close()
}

// Nop is a Player that discards every cue.
type Nop struct{}

func (Nop) Play(...core.Cue) {}
func (Nop) Close() {}

// SoundManager mixes cue sounds into a single speaker stream.
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager. volume is linear, 1 is unchanged.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		rate:   defaultSampleRate,
		volume: volume,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// 100ms buffer
	if err := speaker.Init(sm.rate, sm.rate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues the sound of every cue. Unknown cues are skipped.
func (sm *SoundManager) Play(cues ...core.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || len(cues) == 0 {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	for _, c := range cues {
		if s := CueSound(c, sm.rate); s != nil {
			sm.mixer.Add(newVolume(s, sm.volume))
		}
	}
}

// Render mixes cues offline into n stereo samples, without a speaker.
func (sm *SoundManager) Render(n int, cues ...core.Cue) [][2]float64 {
	var mixer beep.Mixer
	for _, c := range cues {
		if s := CueSound(c, sm.rate); s != nil {
			mixer.Add(newVolume(s, sm.volume))
		}
	}
	buf := make([][2]float64, n)
	mixer.Stream(buf)
	return buf
}

// Close silences the mixer and closes the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
