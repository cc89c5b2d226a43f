// Package beep plays a short test tone on a playback device so a user can
// hear the volume an audio scene reports.
package beep

import (
	"math"

	"tagaro/audio"
)

const (
	sampleRate = 44100

	toneFreq     = 880
	toneDuration = 0.2
	toneDecay    = 12
)

// Player plays a tone at volume on dev; a nil dev means the system default.
type Player func(dev *audio.DeviceInfo, volume float64) error

// generateTick renders a decaying sine as mono signed 16-bit samples.
// volume is clamped to [0, 1].
func generateTick(freq, duration, volume, decay float64) []int16 {
	volume = min(max(volume, 0), 1)
	n := int(float64(sampleRate) * duration)
	samples := make([]int16, n)
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-t * decay)
		samples[i] = int16(math.Sin(2*math.Pi*freq*t) * 32767 * volume * envelope)
	}
	return samples
}

// Tone plays the test tone at volume on dev and blocks until it has drained.
func Tone(dev *audio.DeviceInfo, volume float64) error {
	return play(dev, generateTick(toneFreq, toneDuration, volume, toneDecay))
}
