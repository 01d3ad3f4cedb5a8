// Package processor implements the concrete node behaviors of the audio
// graph: sources, mixers, filters, effects and gates. Every processor
// satisfies the Processor interface; most embed Base and override only the
// method that differs from the identity/Mix default.
package processor

import "nitro-core-dx/graphaudio/internal/dsp"

// ChildSource is the view a processor gets of one of its node's children.
// It is satisfied by *graph.Node; the interface boundary exists so this
// package never imports graph (graph imports processor instead).
type ChildSource interface {
	// NextFrame pulls the next frame, returning ok=false at end-of-stream.
	NextFrame() (dsp.Frame, bool)
	// Reset rewinds the child's own processor to its initial state. The
	// child's descendants are not reset.
	Reset()
}

// Processor is the polymorphic behavior bound to a graph Node.
type Processor interface {
	// Reset restores any internal state to its construction-time value.
	Reset()
	// Set writes a numeric parameter by small integer index; param 0 is
	// conventionally the processor's "primary" parameter.
	Set(param uint8, value float32)
	// ProcessChildren turns this node's children into this node's frame.
	ProcessChildren(children []ChildSource) (dsp.Frame, bool)
	// ProcessFrame transforms one already-mixed frame.
	ProcessFrame(f dsp.Frame) (dsp.Frame, bool)
	// ProcessSample transforms one channel's worth of a frame.
	ProcessSample(s dsp.Sample) (dsp.Sample, bool)
}

// Base supplies the shared default method set: Mix-protocol
// ProcessChildren, passthrough ProcessFrame, identity ProcessSample, no-op
// Reset/Set. Concrete processors embed Base and override whichever methods
// their behavior needs.
//
// Go has no virtual dispatch through embedding, so Base's defaults need to
// know the *outer* processor to call its (possibly overridden) ProcessFrame
// or ProcessSample. Init records that outer value; every constructor in this
// package calls it immediately after building its processor.
type Base struct {
	self Processor
}

// Init registers the outer processor for virtual dispatch from Base's
// default methods. Must be called once, right after construction.
func (b *Base) Init(self Processor) {
	b.self = self
}

func (b *Base) outer() Processor {
	if b.self != nil {
		return b.self
	}
	return b
}

// Reset is a no-op by default.
func (b *Base) Reset() {}

// Set is a no-op by default.
func (b *Base) Set(param uint8, value float32) {}

// ProcessSample is the identity transform by default.
func (b *Base) ProcessSample(s dsp.Sample) (dsp.Sample, bool) {
	return s, true
}

// ProcessFrame applies the outer processor's ProcessSample to Left and,
// if present, Right.
func (b *Base) ProcessFrame(f dsp.Frame) (dsp.Frame, bool) {
	self := b.outer()
	left, ok := self.ProcessSample(f.Left)
	if !ok {
		return dsp.Frame{}, false
	}
	if !f.IsStereo() {
		return dsp.Mono(left), true
	}
	right, ok := self.ProcessSample(*f.Right)
	if !ok {
		return dsp.Frame{}, false
	}
	return dsp.Stereo(left, right), true
}

// ProcessChildren implements the Mix protocol: pull every child, skip the
// ones that ended, and end itself only when every child ended (or there
// were none to begin with). Surviving frames are averaged and handed to
// the outer processor's ProcessFrame.
func (b *Base) ProcessChildren(children []ChildSource) (dsp.Frame, bool) {
	sum, survivors, ok := mixChildren(children)
	if !ok {
		return dsp.Frame{}, false
	}
	return b.outer().ProcessFrame(sum.DivScalar(float32(survivors)))
}

// mixChildren pulls every child and sums the surviving frames. ok is false
// when every child (if any) ended.
func mixChildren(children []ChildSource) (sum dsp.Frame, survivors int, ok bool) {
	for _, c := range children {
		f, alive := c.NextFrame()
		if !alive {
			continue
		}
		sum = sum.Add(f)
		survivors++
	}
	if survivors == 0 {
		return dsp.Frame{}, 0, false
	}
	return sum, survivors, true
}
