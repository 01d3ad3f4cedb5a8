package dsp

import "testing"

func TestAddMonoAndMonoStaysMono(t *testing.T) {
	a := Mono(Fill(1))
	b := Mono(Fill(2))
	out := a.Add(b)
	if out.IsStereo() {
		t.Fatal("mono + mono should stay mono")
	}
	if out.Left != Fill(3) {
		t.Errorf("Left = %v, want Fill(3)", out.Left)
	}
}

// TestAddMonoAndStereoTreatsMissingSideAsZero: a mono operand's missing
// right channel contributes nothing to the sum, it is never duplicated
// from that operand's Left.
func TestAddMonoAndStereoTreatsMissingSideAsZero(t *testing.T) {
	mono := Mono(Fill(1))
	stereo := Stereo(Fill(10), Fill(20))

	out := mono.Add(stereo)
	if !out.IsStereo() {
		t.Fatal("mono + stereo should be stereo")
	}
	if out.Left != Fill(11) {
		t.Errorf("Left = %v, want Fill(11)", out.Left)
	}
	if *out.Right != Fill(20) {
		t.Errorf("Right = %v, want Fill(20) (stereo operand's right alone)", *out.Right)
	}

	out2 := stereo.Add(mono)
	if *out2.Right != Fill(20) {
		t.Errorf("Right = %v, want Fill(20) regardless of operand order", *out2.Right)
	}
}

func TestAddStereoAndStereoSumsBothChannels(t *testing.T) {
	a := Stereo(Fill(1), Fill(2))
	b := Stereo(Fill(3), Fill(4))
	out := a.Add(b)
	if out.Left != Fill(4) || *out.Right != Fill(6) {
		t.Errorf("got {%v, %v}, want {Fill(4), Fill(6)}", out.Left, *out.Right)
	}
}
