package processor

import "nitro-core-dx/graphaudio/internal/dsp"

// Concat plays its children back to back: all of child 0, then all of
// child 1, and so on, ending once the last child ends.
type Concat struct {
	Base
	idx int
}

// NewConcat builds a Concat processor.
func NewConcat() *Concat {
	c := &Concat{}
	c.Init(c)
	return c
}

// Reset rewinds playback to the first child.
func (c *Concat) Reset() {
	c.idx = 0
}

// ProcessChildren advances through children as each one ends, within the
// same call so no frame is skipped at a boundary.
func (c *Concat) ProcessChildren(children []ChildSource) (dsp.Frame, bool) {
	for c.idx < len(children) {
		f, ok := children[c.idx].NextFrame()
		if ok {
			return c.ProcessFrame(f)
		}
		c.idx++
	}
	return dsp.Frame{}, false
}
