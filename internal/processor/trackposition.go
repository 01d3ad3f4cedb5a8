package processor

import "nitro-core-dx/graphaudio/internal/dsp"

// TrackPosition passes its input through unchanged while counting emitted
// samples, for callers that need to know how far into a stream playback
// has progressed (e.g. a UI scrubber).
type TrackPosition struct {
	Base
	position uint64
}

// NewTrackPosition builds a TrackPosition processor.
func NewTrackPosition() *TrackPosition {
	t := &TrackPosition{}
	t.Init(t)
	return t
}

// Reset zeroes the position counter.
func (t *TrackPosition) Reset() {
	t.position = 0
}

// Position returns the number of samples emitted since construction or the
// last Reset.
func (t *TrackPosition) Position() uint64 {
	return t.position
}

// ProcessSample passes the block through, counting its lanes.
func (t *TrackPosition) ProcessSample(s dsp.Sample) (dsp.Sample, bool) {
	t.position += dsp.LaneCount
	return s, true
}
