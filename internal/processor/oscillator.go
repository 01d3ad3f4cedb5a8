package processor

import (
	"math"

	"nitro-core-dx/graphaudio/internal/dsp"
)

// waveform is a band-limited-in-spirit (non-oversampled) periodic function
// of phase in [0, 1).
type waveform func(phase float64) float32

func sineWave(phase float64) float32 {
	return float32(math.Sin(2 * math.Pi * phase))
}

func squareWave(phase float64) float32 {
	if phase < 0.5 {
		return -1
	}
	return 1
}

func sawtoothWave(phase float64) float32 {
	return float32(2*phase - 1)
}

func triangleWave(phase float64) float32 {
	return float32(math.Abs(4*phase-2) - 1)
}

// oscillator is the shared phase-accumulator leaf behind Sine, Square,
// Sawtooth and Triangle: each advances `step = freq * SampleDuration` per
// sample, wrapping the fractional phase, and never ends.
type oscillator struct {
	Base
	wave   waveform
	phase0 float64
	phase  float64
	step   float64
}

func newOscillator(wave waveform, freq float32, phase0 float64) *oscillator {
	o := &oscillator{wave: wave, phase0: phase0, phase: phase0}
	o.step = float64(freq) * dsp.SampleDuration
	o.Init(o)
	return o
}

// Reset returns the phase to its construction-time value.
func (o *oscillator) Reset() {
	o.phase = o.phase0
}

// Set implements Processor; param 0 is frequency in Hz.
func (o *oscillator) Set(param uint8, value float32) {
	if param == ParamPrimary {
		o.step = float64(value) * dsp.SampleDuration
	}
}

// ProcessChildren ignores its (nonexistent) children and generates one
// block of the configured waveform.
func (o *oscillator) ProcessChildren(children []ChildSource) (dsp.Frame, bool) {
	var s dsp.Sample
	for i := range s {
		s[i] = o.wave(o.phase)
		o.phase += o.step
		o.phase -= math.Floor(o.phase)
	}
	return dsp.Mono(s), true
}

// Sine is a sine-wave oscillator leaf.
type Sine struct{ *oscillator }

// NewSine builds a Sine oscillator at freq Hz starting at phase0.
func NewSine(freq float32, phase0 float64) *Sine {
	return &Sine{newOscillator(sineWave, freq, phase0)}
}

// Square is a 50%-duty square-wave oscillator leaf.
type Square struct{ *oscillator }

// NewSquare builds a Square oscillator at freq Hz starting at phase0.
func NewSquare(freq float32, phase0 float64) *Square {
	return &Square{newOscillator(squareWave, freq, phase0)}
}

// Sawtooth is a linear ramp oscillator leaf.
type Sawtooth struct{ *oscillator }

// NewSawtooth builds a Sawtooth oscillator at freq Hz starting at phase0.
func NewSawtooth(freq float32, phase0 float64) *Sawtooth {
	return &Sawtooth{newOscillator(sawtoothWave, freq, phase0)}
}

// Triangle is a symmetric triangle-wave oscillator leaf.
type Triangle struct{ *oscillator }

// NewTriangle builds a Triangle oscillator at freq Hz starting at phase0.
func NewTriangle(freq float32, phase0 float64) *Triangle {
	return &Triangle{newOscillator(triangleWave, freq, phase0)}
}
