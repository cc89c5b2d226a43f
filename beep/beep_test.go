package beep

import "testing"

func peak(samples []int16) int16 {
	var p int16
	for _, s := range samples {
		if s < 0 {
			s = -s
		}
		p = max(p, s)
	}
	return p
}

func TestGenerateTickLength(t *testing.T) {
	got := generateTick(toneFreq, toneDuration, 1, toneDecay)
	if want := int(sampleRate * toneDuration); len(got) != want {
		t.Errorf("len = %d, want %d", len(got), want)
	}
}

func TestGenerateTickScalesWithVolume(t *testing.T) {
	full := peak(generateTick(toneFreq, toneDuration, 1, toneDecay))
	half := peak(generateTick(toneFreq, toneDuration, 0.5, toneDecay))
	if full < 30000 {
		t.Errorf("full-volume peak = %d, want near 32767", full)
	}
	if half >= full*6/10 || half <= full*4/10 {
		t.Errorf("half-volume peak = %d, full = %d", half, full)
	}
}

func TestGenerateTickClampsVolume(t *testing.T) {
	if p := peak(generateTick(toneFreq, toneDuration, -1, toneDecay)); p != 0 {
		t.Errorf("negative volume peak = %d, want 0", p)
	}
	loud := peak(generateTick(toneFreq, toneDuration, 5, toneDecay))
	full := peak(generateTick(toneFreq, toneDuration, 1, toneDecay))
	if loud != full {
		t.Errorf("volume 5 peak = %d, want clamped to %d", loud, full)
	}
}
