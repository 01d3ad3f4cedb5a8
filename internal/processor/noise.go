package processor

import "nitro-core-dx/graphaudio/internal/dsp"

// Noise is a leaf generating white noise from eight parallel xorshift32
// streams, one per lane, seeded seed, seed+1, ..., seed+7. It never ends.
type Noise struct {
	Base
	seed  uint32
	state [dsp.LaneCount]uint32
}

// NewNoise builds a Noise processor from the given seed.
func NewNoise(seed uint32) *Noise {
	n := &Noise{seed: seed}
	n.Init(n)
	n.seedState()
	return n
}

func (n *Noise) seedState() {
	for i := range n.state {
		s := n.seed + uint32(i)
		if s == 0 {
			s = 1 // xorshift32 is stuck at zero forever if seeded with zero
		}
		n.state[i] = s
	}
}

// Reset reseeds the streams back to their construction-time values.
func (n *Noise) Reset() {
	n.seedState()
}

// ProcessChildren generates one block of noise, ignoring children.
func (n *Noise) ProcessChildren(children []ChildSource) (dsp.Frame, bool) {
	var s dsp.Sample
	for i := range s {
		x := n.state[i]
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		n.state[i] = x
		s[i] = float32(int32(x)) / float32(int32(1<<31-1))
	}
	return dsp.Mono(s), true
}
