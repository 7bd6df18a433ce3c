package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/bounce/constants"
	"github.com/lixenwraith/bounce/core"
)

const (
	sampleRate = beep.SampleRate(constants.SampleRate)
)

// SoundManager plays bounce and despawn cues; it implements engine.Observer
// All operations are safe without an audio device and become no-ops
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker; failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*constants.SpeakerBufferDurationMs))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close for oto v3; clearing the mixer leaves it silent
	sm.initialized = false
}

// SetMuted sets the mute state
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// BallSpawned is silent
func (sm *SoundManager) BallSpawned(core.Entity) {}

// BallBounced plays a tock whose loudness follows impact speed
func (sm *SoundManager) BallBounced(_ core.Entity, speed float64) {
	gain := BounceGain(speed)
	if gain <= 0 {
		return
	}
	sm.play(beep.Take(
		sampleRate.N(time.Millisecond*constants.BounceSoundDurationMs),
		NewTockGenerator(sampleRate, constants.BounceFrequency, gain),
	))
}

// BallRemoved plays the pop of a settled ball leaving
func (sm *SoundManager) BallRemoved(core.Entity) {
	sm.play(beep.Take(
		sampleRate.N(time.Millisecond*constants.PopSoundDurationMs),
		NewPopGenerator(sampleRate),
	))
}

// play queues a streamer unless muted, uninitialized, or the mixer is saturated
func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	speaker.Lock()
	if sm.mixer.Len() < constants.MaxConcurrentSounds {
		sm.mixer.Add(s)
	}
	speaker.Unlock()
}

// BounceGain maps impact speed to [0, 1]
func BounceGain(speed float64) float64 {
	if speed <= 0 || math.IsNaN(speed) {
		return 0
	}
	return min(speed/constants.BounceSpeedForFullGain, 1)
}

// TockGenerator generates a short decaying sine with a soft attack
type TockGenerator struct {
	sr   beep.SampleRate
	freq float64
	gain float64
	pos  int
}

// NewTockGenerator creates a bounce tock generator
func NewTockGenerator(sr beep.SampleRate, freq, gain float64) *TockGenerator {
	return &TockGenerator{
		sr:   sr,
		freq: freq,
		gain: gain,
	}
}

func (g *TockGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		attack := math.Min(t/0.002, 1.0)
		envelope := attack * math.Exp(-t*60)
		sample := 0.3 * g.gain * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *TockGenerator) Err() error {
	return nil
}

// PopGenerator generates a falling pitch blip
type PopGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewPopGenerator creates a despawn pop generator
func NewPopGenerator(sr beep.SampleRate) *PopGenerator {
	return &PopGenerator{sr: sr}
}

func (g *PopGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Sweep 900Hz down toward 300Hz; phase is the integral of the sweep
		phase := 2 * math.Pi * (300*t + 600*(1-math.Exp(-t*25))/25)
		envelope := math.Exp(-t * 20)
		sample := 0.2 * envelope * math.Sin(phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PopGenerator) Err() error {
	return nil
}
