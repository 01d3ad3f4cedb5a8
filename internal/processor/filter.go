package processor

import (
	"math"

	"nitro-core-dx/graphaudio/internal/dsp"
)

// LowHighPass is an RBJ cookbook biquad, switchable between low-pass and
// high-pass. It keeps recursive state (x_n1, x_n2, y_n1, y_n2), so its
// ProcessSample walks the block's 8 lanes in order rather than treating
// them as independent SIMD lanes.
type LowHighPass struct {
	Base
	Low      bool
	Freq, Q  float32
	xn1, xn2 float32
	yn1, yn2 float32
}

// NewLowHighPass builds a biquad filter; low selects low-pass vs high-pass.
func NewLowHighPass(low bool, freq, q float32) *LowHighPass {
	f := &LowHighPass{Low: low, Freq: freq, Q: q}
	f.Init(f)
	return f
}

// Reset zeroes the filter's state registers.
func (f *LowHighPass) Reset() {
	f.xn1, f.xn2, f.yn1, f.yn2 = 0, 0, 0, 0
}

// coeffs computes the RBJ cookbook biquad coefficients for the filter's
// current Freq/Q, normalized by a0.
func (f *LowHighPass) coeffs() (b0, b1, b2, a1, a2 float64) {
	w0 := 2 * math.Pi * float64(f.Freq) / dsp.SampleRate
	alpha := math.Sin(w0) / (2 * float64(f.Q))
	cosw0 := math.Cos(w0)

	var rb0, rb1, rb2 float64
	if f.Low {
		rb0 = (1 - cosw0) / 2
		rb1 = 1 - cosw0
		rb2 = rb0
	} else {
		rb0 = (1 + cosw0) / 2
		rb1 = -(1 + cosw0)
		rb2 = rb0
	}
	a0 := 1 + alpha
	ra1 := -2 * cosw0
	ra2 := 1 - alpha

	return rb0 / a0, rb1 / a0, rb2 / a0, ra1 / a0, ra2 / a0
}

// ProcessSample runs the biquad difference equation lane by lane.
func (f *LowHighPass) ProcessSample(s dsp.Sample) (dsp.Sample, bool) {
	b0, b1, b2, a1, a2 := f.coeffs()
	var out dsp.Sample
	for i, x := range s {
		xf := float64(x)
		y := b0*xf + b1*float64(f.xn1) + b2*float64(f.xn2) - a1*float64(f.yn1) - a2*float64(f.yn2)
		f.xn2 = f.xn1
		f.xn1 = x
		f.yn2 = f.yn1
		f.yn1 = float32(y)
		out[i] = float32(y)
	}
	return out, true
}
