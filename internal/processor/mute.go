package processor

import "nitro-core-dx/graphaudio/internal/dsp"

// Mute silences its input while muted, otherwise passes it through
// unchanged. Set(ParamPrimary, v) with v != 0 mutes.
type Mute struct {
	Base
	Muted bool
}

// NewMute builds a Mute processor, initially in the given state.
func NewMute(muted bool) *Mute {
	m := &Mute{Muted: muted}
	m.Init(m)
	return m
}

// Set implements Processor; param 0 toggles mute (nonzero = muted).
func (m *Mute) Set(param uint8, value float32) {
	if param == ParamPrimary {
		m.Muted = value != 0
	}
}

// ProcessSample zeroes the block while muted.
func (m *Mute) ProcessSample(s dsp.Sample) (dsp.Sample, bool) {
	if m.Muted {
		return dsp.Sample{}, true
	}
	return s, true
}
