package processor

import "nitro-core-dx/graphaudio/internal/dsp"

// Mix is the default interior-node behavior: average the surviving
// children, pass the result through unchanged. It ends only once every
// child has ended (or it has none).
type Mix struct {
	Base
}

// NewMix builds a Mix processor.
func NewMix() *Mix {
	m := &Mix{}
	m.Init(m)
	return m
}

// AllForOne mixes like Mix, but ends as soon as any child ends, making the
// whole subtree as long as its shortest child.
type AllForOne struct {
	Base
}

// NewAllForOne builds an AllForOne processor.
func NewAllForOne() *AllForOne {
	a := &AllForOne{}
	a.Init(a)
	return a
}

// ProcessChildren overrides the tolerant Mix default with fail-fast
// semantics: any child ending ends the node.
func (a *AllForOne) ProcessChildren(children []ChildSource) (dsp.Frame, bool) {
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
	return a.ProcessFrame(sum.DivScalar(float32(len(children))))
}
