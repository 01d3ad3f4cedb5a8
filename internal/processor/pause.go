package processor

import "nitro-core-dx/graphaudio/internal/dsp"

// Pause reports end-of-stream for its whole subtree while paused,
// blocking it, and otherwise behaves like Mix. Set(ParamPrimary, v) with
// v != 0 pauses; v == 0 resumes.
type Pause struct {
	Base
	Paused bool
}

// NewPause builds a Pause processor, initially in the given state.
func NewPause(paused bool) *Pause {
	p := &Pause{Paused: paused}
	p.Init(p)
	return p
}

// Set implements Processor; param 0 toggles pause (nonzero = paused).
func (p *Pause) Set(param uint8, value float32) {
	if param == ParamPrimary {
		p.Paused = value != 0
	}
}

// ProcessChildren blocks the subtree while paused, otherwise mixes as usual.
func (p *Pause) ProcessChildren(children []ChildSource) (dsp.Frame, bool) {
	if p.Paused {
		return dsp.Frame{}, false
	}
	return p.Base.ProcessChildren(children)
}
