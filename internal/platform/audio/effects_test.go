package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/fruit-dash/internal/core"
)

// drain streams s to the end and returns the number of samples produced.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	total := 0
	buf := make([][2]float64, 512)
	for iter := 0; iter < 1000; iter++ {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -2 || buf[i][0] > 2 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never ended")
	return total
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		if got := drain(t, osc); got != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: streamed %d samples, expected %d", wave, got, rate.N(100*time.Millisecond))
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: Err() = %v", wave, osc.Err())
		}
	}
}

func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 64)
	n, ok := osc.Stream(samples)
	if !ok || n != 64 {
		t.Fatalf("Stream() = (%d, %v), expected (64, true)", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("sample %d = %f, expected -1 or 1", i, v)
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant 1.0
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Stream() = %d samples, expected 100", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, expected 0 at the start of the attack", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("sustain sample = %f, expected 1", samples[50][0])
	}
	if samples[99][0] > 0.2 {
		t.Errorf("last sample = %f, expected near 0", samples[99][0])
	}
}

func TestEveryCueHasASound(t *testing.T) {
	rate := beep.SampleRate(22050)
	for _, c := range core.AllCues() {
		t.Run(c.String(), func(t *testing.T) {
			s := CueSound(c, rate)
			if s == nil {
				t.Fatal("CueSound() = nil")
			}
			n := drain(t, s)
			if n == 0 || n > rate.N(time.Second) {
				t.Errorf("sound length = %d samples, expected a short non-empty cue", n)
			}
		})
	}
	if CueSound(core.Cue(99), rate) != nil {
		t.Error("unknown cue should have no sound")
	}
}

func TestRenderOffline(t *testing.T) {
	sm := NewSoundManager(1)
	buf := sm.Render(2000, core.CueFruitEaten, core.CueTurbo)
	nonZero := 0
	for _, s := range buf {
		if s[0] != 0 {
			nonZero++
		}
	}
	if nonZero == 0 {
		t.Error("Render() produced silence")
	}

	silent := NewSoundManager(0).Render(2000, core.CueFruitEaten)
	for i, s := range silent {
		if s[0] != 0 {
			t.Fatalf("sample %d = %f at volume 0, expected silence", i, s[0])
		}
	}
}

func TestPlayBeforeInitialize(t *testing.T) {
	// Must not touch the speaker.
	sm := NewSoundManager(1)
	sm.Play(core.CueDeath)
	sm.Close()

	var p Player = Nop{}
	p.Play(core.CueStart)
	p.Close()
}
