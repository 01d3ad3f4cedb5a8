package processor

import "nitro-core-dx/graphaudio/internal/dsp"

// Swap exchanges left and right channels; a no-op on mono frames.
type Swap struct {
	Base
}

// NewSwap builds a Swap processor.
func NewSwap() *Swap {
	s := &Swap{}
	s.Init(s)
	return s
}

// ProcessFrame swaps Left and Right when the frame is stereo.
func (s *Swap) ProcessFrame(f dsp.Frame) (dsp.Frame, bool) {
	if !f.IsStereo() {
		return f, true
	}
	return dsp.Stereo(*f.Right, f.Left), true
}
