package processor

import (
	"math"
	"testing"

	"nitro-core-dx/graphaudio/internal/dsp"
)

func TestMuteSilencesAndResumes(t *testing.T) {
	m := NewMute(true)
	in := dsp.Fill(0.7)
	out, ok := m.ProcessSample(in)
	if !ok || out != (dsp.Sample{}) {
		t.Errorf("muted output = %v, want silence", out)
	}

	m.Set(ParamPrimary, 0)
	out, ok = m.ProcessSample(in)
	if !ok || out != in {
		t.Errorf("unmuted output = %v, want pass-through of %v", out, in)
	}
}

func TestPauseBlocksSubtreeThenResumes(t *testing.T) {
	child := constFakeChild(1.0, 10)
	p := NewPause(true)

	if _, ok := p.ProcessChildren([]ChildSource{child}); ok {
		t.Fatal("paused node should report EOS")
	}
	if child.idx != 0 {
		t.Fatal("paused node must not pull its children")
	}

	p.Set(ParamPrimary, 0)
	f, ok := p.ProcessChildren([]ChildSource{child})
	if !ok || f.Left[0] != 1.0 {
		t.Errorf("resumed pull = %v, %v", f, ok)
	}
}

func TestTrackPositionCountsEmittedSamples(t *testing.T) {
	tp := NewTrackPosition()
	in := dsp.Fill(0.25)
	for i := 0; i < 3; i++ {
		out, ok := tp.ProcessSample(in)
		if !ok || out != in {
			t.Fatalf("pass-through broken at block %d: %v", i, out)
		}
	}
	if got := tp.Position(); got != 3*dsp.LaneCount {
		t.Errorf("Position() = %d, want %d", got, 3*dsp.LaneCount)
	}

	tp.Reset()
	if got := tp.Position(); got != 0 {
		t.Errorf("Position() after reset = %d, want 0", got)
	}
}

func TestCompressorAttenuatesAboveThreshold(t *testing.T) {
	c := NewCompressor(0.5, 2)
	in := dsp.Sample{0.25, 0.5, 0.9, -0.9, 1.0, -0.25, 0, 0.5}
	out, _ := c.ProcessSample(in)

	// Below (or at) the threshold: untouched.
	for _, i := range []int{0, 1, 5, 6, 7} {
		if out[i] != in[i] {
			t.Errorf("lane %d below threshold changed: %v -> %v", i, in[i], out[i])
		}
	}
	// Above: threshold + over/ratio, sign preserved.
	if want := float32(0.5 + 0.4/2); absDiff(out[2], want) > 1e-6 {
		t.Errorf("lane 2 = %v, want %v", out[2], want)
	}
	if want := float32(-(0.5 + 0.4/2)); absDiff(out[3], want) > 1e-6 {
		t.Errorf("lane 3 = %v, want %v", out[3], want)
	}
	if want := float32(0.5 + 0.5/2); absDiff(out[4], want) > 1e-6 {
		t.Errorf("lane 4 = %v, want %v", out[4], want)
	}
}

func absDiff(a, b float32) float64 {
	return math.Abs(float64(a - b))
}

// TestLowPassPassesDC drives the low-pass biquad with a constant signal
// until it settles; the steady-state gain at DC is 1.
func TestLowPassPassesDC(t *testing.T) {
	f := NewLowHighPass(true, 1000, 0.707)
	in := dsp.Fill(1.0)
	var out dsp.Sample
	for i := 0; i < 500; i++ {
		out, _ = f.ProcessSample(in)
	}
	if absDiff(out[dsp.LaneCount-1], 1.0) > 1e-3 {
		t.Errorf("low-pass DC gain = %v, want ~1.0", out[dsp.LaneCount-1])
	}
}

// TestHighPassBlocksDC is the mirror: a high-pass settles to zero on a
// constant input.
func TestHighPassBlocksDC(t *testing.T) {
	f := NewLowHighPass(false, 1000, 0.707)
	in := dsp.Fill(1.0)
	var out dsp.Sample
	for i := 0; i < 500; i++ {
		out, _ = f.ProcessSample(in)
	}
	if absDiff(out[dsp.LaneCount-1], 0) > 1e-3 {
		t.Errorf("high-pass DC output = %v, want ~0", out[dsp.LaneCount-1])
	}
}

func TestFilterResetClearsState(t *testing.T) {
	f := NewLowHighPass(true, 500, 1.0)
	first, _ := f.ProcessSample(dsp.Fill(1.0))

	for i := 0; i < 10; i++ {
		f.ProcessSample(dsp.Fill(-1.0))
	}
	f.Reset()

	again, _ := f.ProcessSample(dsp.Fill(1.0))
	if first != again {
		t.Errorf("reset filter should replay its first block: %v vs %v", first, again)
	}
}
