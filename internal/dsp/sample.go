// Package dsp provides the lane-parallel sample and frame algebra the rest of
// the engine is built on. All DSP operates on whole 8-sample blocks; only
// phase accumulators, filter state and output formatting touch individual
// lanes.
package dsp

const (
	// SampleRate is the only sample rate the engine supports.
	SampleRate = 44100
	// SampleDuration is the period of one sample, in seconds.
	SampleDuration = 1.0 / SampleRate
	// LaneCount is the width of a Sample block.
	LaneCount = 8
	// MaxChildren is the per-node fan-out cap.
	MaxChildren = 4
	// MaxNodes is the whole-graph node cap, including the reserved root slot.
	MaxNodes = 32
	// ModulateEvery is the modulator control-rate divisor: SampleRate / 60.
	ModulateEvery = SampleRate / 60
)

// Sample is a SIMD-width block of 8 single-precision audio samples.
type Sample [LaneCount]float32

// Add returns the lane-wise sum of s and o.
func (s Sample) Add(o Sample) Sample {
	var r Sample
	for i := range r {
		r[i] = s[i] + o[i]
	}
	return r
}

// Sub returns the lane-wise difference s - o.
func (s Sample) Sub(o Sample) Sample {
	var r Sample
	for i := range r {
		r[i] = s[i] - o[i]
	}
	return r
}

// Mul returns the lane-wise product of s and o.
func (s Sample) Mul(o Sample) Sample {
	var r Sample
	for i := range r {
		r[i] = s[i] * o[i]
	}
	return r
}

// Scale multiplies every lane by v.
func (s Sample) Scale(v float32) Sample {
	var r Sample
	for i := range r {
		r[i] = s[i] * v
	}
	return r
}

// DivScalar divides every lane by v.
func (s Sample) DivScalar(v float32) Sample {
	var r Sample
	for i := range r {
		r[i] = s[i] / v
	}
	return r
}

// Fill returns a Sample with every lane set to v.
func Fill(v float32) Sample {
	var r Sample
	for i := range r {
		r[i] = v
	}
	return r
}
