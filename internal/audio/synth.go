// Package audio synthesizes the game's sound effects and plays them through
// the ebiten audio context. Everything is generated at startup; no sound
// assets ship with the game.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is the synthesis and playback rate.
const SampleRate beep.SampleRate = 44100

// waveType selects the oscillator shape.
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveNoise
)

// oscillator generates a fixed-length wave. The frequency function is
// evaluated per sample so sweeps fall out of the same type.
type oscillator struct {
	freqAt   func(t float64) float64
	wave     waveType
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// newOscillator creates an oscillator at a constant frequency.
func newOscillator(freq float64, duration time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return newSweep(func(float64) float64 { return freq }, duration, wave, rate)
}

// newSweep creates an oscillator whose frequency follows freqAt over time.
func newSweep(freqAt func(t float64) float64, duration time.Duration, wave waveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freqAt:   freqAt,
		wave:     wave,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		o.phase += o.freqAt(t) / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// shaper multiplies a stream by a time-dependent gain.
type shaper struct {
	streamer beep.Streamer
	gainAt   func(t float64) float64
	position int
	rate     beep.SampleRate
}

func newShaper(s beep.Streamer, rate beep.SampleRate, gainAt func(t float64) float64) beep.Streamer {
	return &shaper{streamer: s, gainAt: gainAt, rate: rate}
}

func (sh *shaper) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = sh.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(sh.position) / float64(sh.rate)
		gain := sh.gainAt(t)
		samples[i][0] *= gain
		samples[i][1] *= gain
		sh.position++
	}
	return n, ok
}

func (sh *shaper) Err() error { return sh.streamer.Err() }

// adsrNote is a square note shaped by a standard attack/decay/sustain/release
// envelope. Sustain is a level, the other three are times; the sustain phase
// fills whatever the note duration leaves over.
func adsrNote(freq float64, duration time.Duration, attack, decay, sustain, release float64, rate beep.SampleRate) beep.Streamer {
	total := duration.Seconds()
	osc := newOscillator(freq, duration, waveSquare, rate)

	return newShaper(osc, rate, func(t float64) float64 {
		switch {
		case t < attack:
			return t / attack
		case t < attack+decay:
			return 1 - (1-sustain)*(t-attack)/decay
		case t < total-release:
			return sustain
		default:
			remaining := total - t
			if remaining < 0 {
				return 0
			}
			return sustain * remaining / release
		}
	})
}

// Shoot is a short noise burst with a squared fade-out.
func Shoot() beep.Streamer {
	const dur = 150 * time.Millisecond
	noise := newOscillator(0, dur, waveNoise, SampleRate)
	return newShaper(noise, SampleRate, func(t float64) float64 {
		fade := 1 - t/dur.Seconds()
		return 0.4 * fade * fade
	})
}

// Pop is a sine chirp falling from 800Hz, dying away fast.
func Pop() beep.Streamer {
	const dur = 200 * time.Millisecond
	chirp := newSweep(func(t float64) float64 {
		return 800 * math.Exp(-10*t)
	}, dur, waveSine, SampleRate)
	return newShaper(chirp, SampleRate, func(t float64) float64 {
		return 0.3 * math.Exp(-15*t)
	})
}

// Win is a rising C major arpeggio.
func Win() beep.Streamer {
	const note = 150 * time.Millisecond
	freqs := []float64{523.25, 659.25, 783.99, 1046.50} // C5 E5 G5 C6

	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = adsrNote(f, note, 0.01, 0.05, 0.8, 0.05, SampleRate)
	}
	return beep.Seq(notes...)
}

// Lose is a slow descent to C4.
func Lose() beep.Streamer {
	const note = 200 * time.Millisecond
	freqs := []float64{392.00, 349.23, 293.66, 261.63} // G4 F4 D4 C4

	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = adsrNote(f, note, 0.01, 0.1, 0.7, 0.1, SampleRate)
	}
	return beep.Seq(notes...)
}
