package audio

import (
	"math"
	"testing"

	"github.com/san-kum/bouncebox/internal/world"
)

func TestPitch(t *testing.T) {
	if Pitch(0) != 220 || Pitch(1) != 880 || Pitch(5) != 880 || Pitch(-1) != 220 {
		t.Error("pitch should span 220..880 Hz and clamp")
	}
}

func TestVoiceSilentUntilTriggered(t *testing.T) {
	var v Voice
	buf := make([]float32, 64)
	v.Fill(buf)
	for _, s := range buf {
		if s != 0 {
			t.Fatal("expected silence")
		}
	}
}

func TestVoiceDecays(t *testing.T) {
	var v Voice
	v.Trigger(0.5)
	buf := make([]float32, SampleRate/2)
	v.Fill(buf)

	peak := func(s []float32) float64 {
		m := 0.0
		for _, x := range s {
			m = math.Max(m, math.Abs(float64(x)))
		}
		return m
	}
	head, tail := peak(buf[:500]), peak(buf[len(buf)-500:])
	if head < 0.1 {
		t.Errorf("expected audible click, peak %f", head)
	}
	if tail != 0 {
		t.Errorf("expected click to die out, tail peak %f", tail)
	}
}

func TestOnTickTriggersOnHorizontalBounce(t *testing.T) {
	var v Voice
	w := world.Default()
	for w.Tracker.Frames < 11 {
		world.Advance(w)
		v.OnTick(w)
	}
	if v.amp != 0 {
		t.Fatal("no bounce yet, voice should be idle")
	}
	world.Advance(w)
	v.OnTick(w)
	if v.amp != 1 || v.freq != 880 {
		t.Errorf("expected full-heat click, got amp=%f freq=%f", v.amp, v.freq)
	}
}
