package dsp

import (
	"testing"

	"pgregory.net/rapid"
)

func randomSample(rt *rapid.T, label string) Sample {
	var s Sample
	for i := range s {
		s[i] = float32(rapid.Float64Range(-100, 100).Draw(rt, label))
	}
	return s
}

func randomFrame(rt *rapid.T, label string) Frame {
	left := randomSample(rt, label+"-left")
	if rapid.Bool().Draw(rt, label+"-stereo") {
		return Stereo(left, randomSample(rt, label+"-right"))
	}
	return Mono(left)
}

// TestFrameAddIsCommutative: mixing is order-independent, including across
// the mono/stereo promotion rules.
func TestFrameAddIsCommutative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := randomFrame(rt, "a")
		b := randomFrame(rt, "b")

		ab := a.Add(b)
		ba := b.Add(a)

		if ab.Left != ba.Left {
			rt.Fatalf("Left differs: %v vs %v", ab.Left, ba.Left)
		}
		if ab.IsStereo() != ba.IsStereo() {
			rt.Fatalf("stereo-ness differs: %v vs %v", ab.IsStereo(), ba.IsStereo())
		}
		if ab.IsStereo() && *ab.Right != *ba.Right {
			rt.Fatalf("Right differs: %v vs %v", *ab.Right, *ba.Right)
		}
	})
}

// TestFrameAddPromotesToStereo: the result is stereo iff either operand is.
func TestFrameAddPromotesToStereo(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := randomFrame(rt, "a")
		b := randomFrame(rt, "b")
		out := a.Add(b)
		if out.IsStereo() != (a.IsStereo() || b.IsStereo()) {
			rt.Fatalf("stereo promotion wrong: a=%v b=%v out=%v",
				a.IsStereo(), b.IsStereo(), out.IsStereo())
		}
	})
}

// TestDivScalarPreservesChannels: dividing never changes a frame's
// channel count, and DivScalar(1) is the identity.
func TestDivScalarPreservesChannels(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := randomFrame(rt, "f")
		out := f.DivScalar(1)
		if out.IsStereo() != f.IsStereo() {
			rt.Fatal("DivScalar changed channel count")
		}
		if out.Left != f.Left {
			rt.Fatalf("DivScalar(1) changed Left: %v -> %v", f.Left, out.Left)
		}
		if f.IsStereo() && *out.Right != *f.Right {
			rt.Fatalf("DivScalar(1) changed Right: %v -> %v", *f.Right, *out.Right)
		}
	})
}
