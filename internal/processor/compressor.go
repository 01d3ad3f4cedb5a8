package processor

import "nitro-core-dx/graphaudio/internal/dsp"

// Compressor is a simple feed-forward gain-reduction effect: samples whose
// magnitude exceeds Threshold are attenuated by Ratio:1 above the
// threshold. A distinct dynamics processor alongside Gain and Clip.
type Compressor struct {
	Base
	Threshold, Ratio float32
}

// NewCompressor builds a Compressor with the given threshold (0..1) and
// compression ratio (>= 1).
func NewCompressor(threshold, ratio float32) *Compressor {
	c := &Compressor{Threshold: threshold, Ratio: ratio}
	c.Init(c)
	return c
}

// Set implements Processor; param 0 is Threshold, param 1 is Ratio.
func (c *Compressor) Set(param uint8, value float32) {
	switch param {
	case 0:
		c.Threshold = value
	case 1:
		c.Ratio = value
	}
}

// ProcessSample applies the gain-reduction curve lane-wise.
func (c *Compressor) ProcessSample(s dsp.Sample) (dsp.Sample, bool) {
	var out dsp.Sample
	for i, v := range s {
		out[i] = c.compress(v)
	}
	return out, true
}

func (c *Compressor) compress(v float32) float32 {
	mag := v
	sign := float32(1)
	if mag < 0 {
		mag = -mag
		sign = -1
	}
	if mag <= c.Threshold || c.Ratio <= 0 {
		return v
	}
	over := mag - c.Threshold
	ratio := c.Ratio
	if ratio < 1 {
		ratio = 1
	}
	return sign * (c.Threshold + over/ratio)
}
