package processor

import (
	"testing"

	"nitro-core-dx/graphaudio/internal/dsp"
	"pgregory.net/rapid"
)

func randomSample(rt *rapid.T, label string) dsp.Sample {
	var s dsp.Sample
	for i := range s {
		s[i] = float32(rapid.Float64Range(-10, 10).Draw(rt, label))
	}
	return s
}

func TestSwapSwapIsIdentityProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		left := randomSample(rt, "left")
		right := randomSample(rt, "right")
		f := dsp.Stereo(left, right)

		s := NewSwap()
		once, _ := s.ProcessFrame(f)
		twice, _ := s.ProcessFrame(once)

		if twice.Left != f.Left || *twice.Right != *f.Right {
			rt.Fatalf("Swap.Swap != identity: got %+v want %+v", twice, f)
		}
	})
}

func TestGainUnityIsIdentityProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := randomSample(rt, "s")
		g := NewGain(1.0)
		out, ok := g.ProcessSample(s)
		if !ok || out != s {
			rt.Fatalf("Gain(1.0) changed %v into %v", s, out)
		}
	})
}

func TestDelayNEqualsChainedOneDelayProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 6).Draw(rt, "n")
		count := rapid.IntRange(n, n+10).Draw(rt, "count")

		d := NewDelay(n)
		chain := make([]*OneDelay, n)
		for i := range chain {
			chain[i] = NewOneDelay()
		}

		for i := 0; i < count; i++ {
			in := dsp.Mono(dsp.Fill(float32(i)))
			dOut, _ := d.ProcessFrame(in)

			cur := in
			for _, od := range chain {
				cur, _ = od.ProcessFrame(cur)
			}
			if dOut.Left != cur.Left {
				rt.Fatalf("step %d: Delay(%d)=%v, chained OneDelay=%v", i, n, dOut.Left, cur.Left)
			}
		}
	})
}

func TestClipNeverExceedsBoundsProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lo := float32(rapid.Float64Range(-5, 0).Draw(rt, "lo"))
		hi := float32(rapid.Float64Range(0, 5).Draw(rt, "hi"))
		s := randomSample(rt, "s")

		c := NewClip(lo, hi)
		out, _ := c.ProcessSample(s)
		for _, v := range out {
			if v < lo-1e-5 || v > hi+1e-5 {
				rt.Fatalf("Clip(%v,%v) produced %v", lo, hi, v)
			}
		}
	})
}
