package processor

import (
	"nitro-core-dx/graphaudio/internal/dsp"
	"nitro-core-dx/graphaudio/internal/pcm"
)

// Pcm is a leaf that decodes a PCM stream block by block, ending the first
// time the underlying reader runs short.
type Pcm struct {
	Base
	src *pcm.Source
}

// NewPcm wraps an already-opened pcm.Source as a leaf processor. Callers
// open the source (and handle its construction-time header errors)
// themselves via pcm.Open: file construction can fail, the node itself
// never does.
func NewPcm(src *pcm.Source) *Pcm {
	p := &Pcm{src: src}
	p.Init(p)
	return p
}

// ProcessChildren decodes the next block, ignoring children.
func (p *Pcm) ProcessChildren(children []ChildSource) (dsp.Frame, bool) {
	left, right, ok := p.src.ReadBlock(dsp.LaneCount)
	if !ok {
		return dsp.Frame{}, false
	}
	var l dsp.Sample
	copy(l[:], left)
	if right == nil {
		return dsp.Mono(l), true
	}
	var r dsp.Sample
	copy(r[:], right)
	return dsp.Stereo(l, r), true
}
