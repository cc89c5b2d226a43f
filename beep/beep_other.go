//go:build !linux

package beep

import (
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/gen2brain/malgo"

	"tagaro/audio"
)

func play(dev *audio.DeviceInfo, samples []int16) error {
	if len(samples) == 0 {
		return nil
	}
	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return fmt.Errorf("malgo context: %w", err)
	}
	defer func() {
		ctx.Uninit()
		ctx.Free()
	}()

	config := malgo.DefaultDeviceConfig(malgo.Playback)
	config.Playback.Format = malgo.FormatS16
	config.Playback.Channels = 1
	config.SampleRate = sampleRate

	if dev != nil {
		idBytes, err := hex.DecodeString(dev.ID)
		if err != nil {
			return fmt.Errorf("invalid device ID: %w", err)
		}
		var devID malgo.DeviceID
		copy(devID[:], idBytes)
		config.Playback.DeviceID = devID.Pointer()
	}

	pos := 0
	done := make(chan struct{})
	var doneOnce sync.Once
	callbacks := malgo.DeviceCallbacks{
		Data: func(pOutput, _ []byte, frameCount uint32) {
			for i := 0; i < int(frameCount) && i*2+1 < len(pOutput); i++ {
				var s int16
				if pos < len(samples) {
					s = samples[pos]
					pos++
				}
				pOutput[i*2] = byte(s)
				pOutput[i*2+1] = byte(s >> 8)
			}
			if pos >= len(samples) {
				doneOnce.Do(func() { close(done) })
			}
		},
	}

	device, err := malgo.InitDevice(ctx.Context, config, callbacks)
	if err != nil {
		return fmt.Errorf("malgo device: %w", err)
	}
	defer device.Uninit()

	if err := device.Start(); err != nil {
		return fmt.Errorf("malgo start: %w", err)
	}
	<-done
	return device.Stop()
}
