// Package audio turns collision events into short blips.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/bricktoy/internal/sim"
)

const (
	sampleRate    = beep.SampleRate(44100)
	blipDuration  = 60 * time.Millisecond
	defaultVolume = 0.3
)

// Tone describes the blip played for one contact side.
type Tone struct {
	Freq float64
	Wave WaveType
}

// tones maps each contact side to a blip. Vertical faces sound higher than
// horizontal ones.
var tones = map[sim.Side]Tone{
	sim.SideLeft:   {Freq: 660, Wave: WaveSquare},
	sim.SideRight:  {Freq: 660, Wave: WaveSquare},
	sim.SideTop:    {Freq: 440, Wave: WaveSquare},
	sim.SideBottom: {Freq: 440, Wave: WaveSquare},
	sim.SideInside: {Freq: 220, Wave: WaveTriangle},
}

// ToneFor returns the blip for a contact side.
func ToneFor(side sim.Side) Tone {
	if t, ok := tones[side]; ok {
		return t
	}
	return tones[sim.SideInside]
}

// Blip builds the streamer for one contact.
func Blip(side sim.Side, volume float64, rate beep.SampleRate) beep.Streamer {
	tone := ToneFor(side)
	osc := NewOscillator(tone.Freq, blipDuration, tone.Wave, rate)
	return newVolume(NewDecay(osc, blipDuration, rate), volume)
}

// Beeper plays collision blips through the system speaker.
// Play calls come from the host goroutine, mixing happens on the speaker's.
type Beeper struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewBeeper creates a beeper with the default volume.
func NewBeeper() *Beeper {
	return &Beeper{
		mixer:  &beep.Mixer{},
		volume: defaultVolume,
	}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (b *Beeper) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Cleanup silences everything still playing.
func (b *Beeper) Cleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()

	b.initialized = false
}

// PlayCollision queues the blip for a contact side. Does nothing before
// Initialize.
func (b *Beeper) PlayCollision(side sim.Side) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	speaker.Lock()
	b.mixer.Add(Blip(side, b.volume, sampleRate))
	speaker.Unlock()
}

// Listen adapts PlayCollision to a collision listener.
func (b *Beeper) Listen(evt sim.CollisionEvent) {
	b.PlayCollision(evt.Side)
}
