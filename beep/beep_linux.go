//go:build linux

package beep

import (
	"fmt"

	"github.com/jfreymuth/pulse"
	"github.com/jfreymuth/pulse/proto"

	"tagaro/audio"
)

func play(dev *audio.DeviceInfo, samples []int16) error {
	if len(samples) == 0 {
		return nil
	}
	c, err := pulse.NewClient(pulse.ClientApplicationName("tagaro"))
	if err != nil {
		return fmt.Errorf("pulse: %w", err)
	}
	defer c.Close()

	pos := 0
	reader := pulse.Int16Reader(func(buf []int16) (int, error) {
		if pos >= len(samples) {
			return 0, pulse.EndOfData
		}
		n := copy(buf, samples[pos:])
		pos += n
		return n, nil
	})

	opts := []pulse.PlaybackOption{
		pulse.PlaybackMono,
		pulse.PlaybackSampleRate(sampleRate),
		pulse.PlaybackLatency(0.1),
		pulse.PlaybackRawOption(func(p *proto.CreatePlaybackStream) {
			p.ChannelVolumes = proto.ChannelVolumes{uint32(proto.VolumeNorm)}
		}),
	}
	if dev != nil {
		sink, err := c.SinkByID(dev.ID)
		if err != nil {
			return fmt.Errorf("pulse sink %q: %w", dev.Name, err)
		}
		opts = append(opts, pulse.PlaybackSink(sink))
	}

	stream, err := c.NewPlayback(reader, opts...)
	if err != nil {
		return fmt.Errorf("pulse playback: %w", err)
	}
	defer stream.Close()
	stream.Start()
	stream.Drain()
	stream.Stop()
	return stream.Error()
}
