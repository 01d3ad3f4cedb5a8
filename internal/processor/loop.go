package processor

import "nitro-core-dx/graphaudio/internal/dsp"

// Loop retries each child once on end-of-stream: the child is reset and
// pulled again. If any single child is still ended after its retry, the
// whole node ends right there; a failed restart is not the same as a
// child that simply has nothing left to contribute, so Loop does not fall
// back to Mix's tolerant per-child skip.
type Loop struct {
	Base
}

// NewLoop builds a Loop processor.
func NewLoop() *Loop {
	l := &Loop{}
	l.Init(l)
	return l
}

// ProcessChildren implements the retry-on-EOS contract: any child still
// ended after its reset-and-retry ends the entire node immediately.
func (l *Loop) ProcessChildren(children []ChildSource) (dsp.Frame, bool) {
	var sum dsp.Frame
	for _, c := range children {
		f, ok := c.NextFrame()
		if !ok {
			c.Reset()
			f, ok = c.NextFrame()
		}
		if !ok {
			return dsp.Frame{}, false
		}
		sum = sum.Add(f)
	}
	if len(children) == 0 {
		return dsp.Frame{}, false
	}
	return l.ProcessFrame(sum.DivScalar(float32(len(children))))
}
