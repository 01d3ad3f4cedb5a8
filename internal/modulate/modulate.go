// Package modulate implements the engine's sub-audio control-rate sources:
// pure functions of sample time that periodically overwrite a
// processor parameter. None of them carry state that affects their output,
// so a Modulator can be evaluated at any `now` without replaying history.
package modulate

import (
	"math"

	"nitro-core-dx/graphaudio/internal/dsp"
)

// Modulator is a pure function of sample time producing a scalar control
// value.
type Modulator interface {
	Get(now uint32) float32
}

// Hold switches from v1 to v2 at sample t.
type Hold struct {
	V1, V2 float32
	T      uint32
}

// Get implements Modulator.
func (h Hold) Get(now uint32) float32 {
	if now < h.T {
		return h.V1
	}
	return h.V2
}

// Linear ramps linearly from S at T0 to E at T1, clamping outside that
// window. A zero-duration window (T1 == T0) returns E rather than
// dividing by zero.
type Linear struct {
	S, E   float32
	T0, T1 uint32
}

// Get implements Modulator.
func (l Linear) Get(now uint32) float32 {
	if l.T1 == l.T0 {
		return l.E
	}
	if now <= l.T0 {
		return l.S
	}
	if now >= l.T1 {
		return l.E
	}
	frac := float32(now-l.T0) / float32(l.T1-l.T0)
	return l.S + (l.E-l.S)*frac
}

// Sine is a low-frequency sine oscillator used as a modulator, producing
// values in [lo, hi].
type Sine struct {
	Freq   float32
	Lo, Hi float32
}

// Get implements Modulator.
func (s Sine) Get(now uint32) float32 {
	amp := (s.Hi - s.Lo) / 2
	mid := s.Lo + amp
	theta := 2 * math.Pi * float64(s.Freq) * dsp.SampleDuration * float64(now)
	return mid + amp*float32(math.Sin(theta))
}
