package processor

import (
	"math"

	"nitro-core-dx/graphaudio/internal/dsp"
)

// Pan applies an equal-power stereo pan: v in [-1, 1], -1 hard left, 0
// centered, 1 hard right. A mono input is treated as a shared source for
// both output channels, as is conventional for pan controls.
type Pan struct {
	Base
	V float32
}

// NewPan builds a Pan processor at the given position.
func NewPan(v float32) *Pan {
	p := &Pan{V: v}
	p.Init(p)
	return p
}

// Set implements Processor; param 0 is the pan position.
func (p *Pan) Set(param uint8, value float32) {
	if param == ParamPrimary {
		p.V = value
	}
}

// ProcessFrame applies the equal-power pan law to left/right.
func (p *Pan) ProcessFrame(f dsp.Frame) (dsp.Frame, bool) {
	theta := float64(p.V+1) * math.Pi / 4
	cos := float32(math.Cos(theta))
	sin := float32(math.Sin(theta))
	left := f.Left.Scale(cos)
	right := f.RightOrLeft().Scale(sin)
	return dsp.Stereo(left, right), true
}
