package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/fruit-dash/internal/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a finite raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a wave of the given frequency and duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with attack and release ramps over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= e.total-e.release {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; 0 or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is a shaped oscillator with a short attack and a release over half its length.
func note(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// bell mixes a sine tone with its octave for a short chime.
func bell(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	n := rate.N(d)
	fund, err := generators.SineTone(rate, freq)
	if err != nil {
		return note(freq, d, WaveSine, rate)
	}
	over, err := generators.SineTone(rate, 2*freq)
	if err != nil {
		return note(freq, d, WaveSine, rate)
	}
	return beep.Mix(
		NewEnvelope(newVolume(beep.Take(n, fund), 0.7), d, 2*time.Millisecond, d*3/4, rate),
		NewEnvelope(newVolume(beep.Take(n, over), 0.3), d, 2*time.Millisecond, d/2, rate),
	)
}

// CueSound returns a fresh streamer for a cue, or nil for an unknown cue.
func CueSound(c core.Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case core.CueCountdownTick:
		return note(660, 90*time.Millisecond, WaveSquare, rate)
	case core.CueStart:
		return beep.Seq(
			note(660, 90*time.Millisecond, WaveSquare, rate),
			note(990, 180*time.Millisecond, WaveSquare, rate),
		)
	case core.CueFruitEaten:
		return bell(880, 140*time.Millisecond, rate)
	case core.CuePowerUp:
		return beep.Seq(
			note(523.25, 70*time.Millisecond, WaveSine, rate),
			note(659.25, 70*time.Millisecond, WaveSine, rate),
			note(783.99, 120*time.Millisecond, WaveSine, rate),
		)
	case core.CueTurbo:
		return beep.Mix(
			newVolume(note(0, 250*time.Millisecond, WaveNoise, rate), 0.5),
			note(1318.51, 250*time.Millisecond, WaveSaw, rate),
		)
	case core.CueDeath:
		return beep.Seq(
			note(220, 150*time.Millisecond, WaveSaw, rate),
			generators.Silence(rate.N(30*time.Millisecond)),
			note(110, 300*time.Millisecond, WaveSaw, rate),
		)
	default:
		return nil
	}
}
