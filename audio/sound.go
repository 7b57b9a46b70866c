// Package audio plays short feedback sounds: a tick for each animation frame
// and a buzz when a command fails.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	tickFreq     = 880
	tickDuration = 15 * time.Millisecond

	errorFreq     = 140
	errorDuration = 150 * time.Millisecond
)

// Player is what the editor needs from a sound backend.
type Player interface {
	Tick()
	Error()
}

// Silent is a Player that makes no sound.
type Silent struct{}

// Tick does nothing.
func (Silent) Tick() {}

// Error does nothing.
func (Silent) Error() {}

// SoundManager plays tones through the system speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager. Call Initialize before use.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. Sounds are dropped until it succeeds.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences anything still playing and closes the speaker.
func (sm *SoundManager) Cleanup() {
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

// Tick plays a short high blip.
func (sm *SoundManager) Tick() {
	sm.play(tickFreq, tickDuration)
}

// Error plays a low buzz.
func (sm *SoundManager) Error() {
	sm.play(errorFreq, errorDuration)
}

func (sm *SoundManager) play(freq float64, d time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	tone, err := Tone(freq, d)
	if err != nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(tone)
	speaker.Unlock()
}

// Tone builds a sine tone of the given frequency and length, quietened so it
// sits under other sounds.
func Tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	// Gain scales samples by 1+Gain.
	quiet := &effects.Gain{Streamer: sine, Gain: -0.8}
	return beep.Take(sampleRate.N(d), quiet), nil
}
