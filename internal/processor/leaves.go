package processor

import "nitro-core-dx/graphaudio/internal/dsp"

// Empty is a leaf that immediately ends, regardless of children.
type Empty struct {
	Base
}

// NewEmpty builds an Empty processor.
func NewEmpty() *Empty {
	e := &Empty{}
	e.Init(e)
	return e
}

// ProcessChildren always reports end-of-stream.
func (e *Empty) ProcessChildren(children []ChildSource) (dsp.Frame, bool) {
	return dsp.Frame{}, false
}

// Zero is a leaf that emits silence forever.
type Zero struct {
	Base
}

// NewZero builds a Zero processor.
func NewZero() *Zero {
	z := &Zero{}
	z.Init(z)
	return z
}

// ProcessChildren always emits a zero mono frame.
func (z *Zero) ProcessChildren(children []ChildSource) (dsp.Frame, bool) {
	return dsp.Mono(dsp.Sample{}), true
}

// Constant is a leaf emitting the same scalar on every lane forever. It
// exists so tests (and host fixtures) can build deterministic non-zero
// sources without reaching for a file-backed Pcm node.
type Constant struct {
	Base
	Value float32
}

// NewConstant builds a Constant processor emitting Value forever.
func NewConstant(value float32) *Constant {
	c := &Constant{Value: value}
	c.Init(c)
	return c
}

// Set implements Processor; param 0 is the emitted value.
func (c *Constant) Set(param uint8, value float32) {
	if param == ParamPrimary {
		c.Value = value
	}
}

// ProcessChildren always emits a mono frame filled with Value.
func (c *Constant) ProcessChildren(children []ChildSource) (dsp.Frame, bool) {
	return dsp.Mono(dsp.Fill(c.Value)), true
}
