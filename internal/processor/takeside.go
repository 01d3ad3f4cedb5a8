package processor

import "nitro-core-dx/graphaudio/internal/dsp"

// TakeLeft mixes its children like Mix, ends as soon as any child ends
// (same contract as AllForOne), and emits only the left channel as mono.
type TakeLeft struct {
	Base
}

// NewTakeLeft builds a TakeLeft processor.
func NewTakeLeft() *TakeLeft {
	t := &TakeLeft{}
	t.Init(t)
	return t
}

// ProcessChildren mixes fail-fast and drops the right channel.
func (t *TakeLeft) ProcessChildren(children []ChildSource) (dsp.Frame, bool) {
	sum, ok := mixFailFast(children)
	if !ok {
		return dsp.Frame{}, false
	}
	return t.ProcessFrame(dsp.Mono(sum.Left.DivScalar(float32(len(children)))))
}

// TakeRight is TakeLeft's mirror image, emitting the mixed right channel as
// mono. When every child is mono the mixed left is emitted instead; a mono
// child mixed with a stereo one adds nothing to the right channel.
type TakeRight struct {
	Base
}

// NewTakeRight builds a TakeRight processor.
func NewTakeRight() *TakeRight {
	t := &TakeRight{}
	t.Init(t)
	return t
}

// ProcessChildren mixes fail-fast and drops the left channel.
func (t *TakeRight) ProcessChildren(children []ChildSource) (dsp.Frame, bool) {
	sum, ok := mixFailFast(children)
	if !ok {
		return dsp.Frame{}, false
	}
	return t.ProcessFrame(dsp.Mono(sum.RightOrLeft().DivScalar(float32(len(children)))))
}

func mixFailFast(children []ChildSource) (dsp.Frame, bool) {
	var sum dsp.Frame
	for _, c := range children {
		f, ok := c.NextFrame()
		if !ok {
			return dsp.Frame{}, false
		}
		sum = sum.Add(f)
	}
	if len(children) == 0 {
		return dsp.Frame{}, false
	}
	return sum, true
}
