package processor

import "nitro-core-dx/graphaudio/internal/dsp"

// Clip hard-clips every sample to [Lo, Hi]. The output stager already
// clamps at the sink boundary; Clip makes the same clamp an explicit
// effect a graph can place anywhere in a subtree.
type Clip struct {
	Base
	Lo, Hi float32
}

// NewClip builds a Clip processor with the given bounds.
func NewClip(lo, hi float32) *Clip {
	c := &Clip{Lo: lo, Hi: hi}
	c.Init(c)
	return c
}

// Set implements Processor; param 0 is Lo, param 1 is Hi.
func (c *Clip) Set(param uint8, value float32) {
	switch param {
	case 0:
		c.Lo = value
	case 1:
		c.Hi = value
	}
}

// ProcessSample clamps each lane to [Lo, Hi].
func (c *Clip) ProcessSample(s dsp.Sample) (dsp.Sample, bool) {
	var out dsp.Sample
	for i, v := range s {
		switch {
		case v < c.Lo:
			out[i] = c.Lo
		case v > c.Hi:
			out[i] = c.Hi
		default:
			out[i] = v
		}
	}
	return out, true
}
