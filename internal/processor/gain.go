package processor

import "nitro-core-dx/graphaudio/internal/dsp"

// ParamPrimary is the conventional "primary parameter" index used by every
// processor that only exposes one modulatable parameter.
const ParamPrimary uint8 = 0

// Gain multiplies every sample by a fixed level. Modulatable via
// Set(ParamPrimary, lvl).
type Gain struct {
	Base
	Level float32
}

// NewGain builds a Gain processor at the given level.
func NewGain(level float32) *Gain {
	g := &Gain{Level: level}
	g.Init(g)
	return g
}

// Set implements Processor; param 0 is the gain level.
func (g *Gain) Set(param uint8, value float32) {
	if param == ParamPrimary {
		g.Level = value
	}
}

// ProcessSample scales the block by Level.
func (g *Gain) ProcessSample(s dsp.Sample) (dsp.Sample, bool) {
	return s.Scale(g.Level), true
}
