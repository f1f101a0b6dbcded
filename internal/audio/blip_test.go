package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/bricktoy/internal/sim"
)

// drain streams s to the end and returns every sample.
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 64)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 50*time.Millisecond, WaveSine, rate)

	samples := drain(osc)
	if len(samples) != rate.N(50*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(50*time.Millisecond), len(samples))
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveTriangle} {
		samples := drain(NewOscillator(330, 20*time.Millisecond, wave, rate))
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d sample %d out of range or unbalanced: %v", wave, i, s)
			}
		}
	}
}

func TestOscillatorSquareValues(t *testing.T) {
	samples := drain(NewOscillator(220, 10*time.Millisecond, WaveSquare, beep.SampleRate(44100)))
	for i, s := range samples {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("Square wave sample %d should be -1.0 or 1.0, got %f", i, s[0])
		}
	}
}

func TestDecayFadesOut(t *testing.T) {
	rate := beep.SampleRate(8000)
	osc := NewOscillator(100, 100*time.Millisecond, WaveSquare, rate)
	samples := drain(NewDecay(osc, 100*time.Millisecond, rate))

	if len(samples) == 0 {
		t.Fatal("decay produced no samples")
	}
	if math.Abs(samples[0][0]) != 1 {
		t.Errorf("first sample should be at full volume, got %f", samples[0][0])
	}
	last := samples[len(samples)-1][0]
	if math.Abs(last) > 0.01 {
		t.Errorf("last sample should be near silent, got %f", last)
	}
}

func TestBlipLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, side := range []sim.Side{sim.SideLeft, sim.SideTop, sim.SideInside} {
		samples := drain(Blip(side, 0.5, rate))
		if len(samples) != rate.N(blipDuration) {
			t.Errorf("%s blip: expected %d samples, got %d", side, rate.N(blipDuration), len(samples))
		}
	}
}

func TestToneFor(t *testing.T) {
	if ToneFor(sim.SideLeft) != ToneFor(sim.SideRight) {
		t.Error("left and right faces should share a tone")
	}
	if ToneFor(sim.SideLeft).Freq == ToneFor(sim.SideTop).Freq {
		t.Error("vertical and horizontal faces should differ")
	}
	if ToneFor(sim.Side(99)) != ToneFor(sim.SideInside) {
		t.Error("unknown side should fall back to the inside tone")
	}
}

func TestBeeperIgnoresPlayBeforeInitialize(t *testing.T) {
	b := NewBeeper()
	b.PlayCollision(sim.SideLeft)
	b.Listen(sim.CollisionEvent{Side: sim.SideTop})
	b.Cleanup()

	if b.mixer.Len() != 0 {
		t.Errorf("mixer should stay empty before Initialize, has %d streamers", b.mixer.Len())
	}
}
