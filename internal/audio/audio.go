// Package audio is the sample pump: it opens a capture device with
// portaudio and feeds PCM samples into a core.Decoder's Run loop, one
// sample at a time, using the cross-platform portaudio API rather
// than a platform-specific capture backend.
package audio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"

	"github.com/dsdgo/dsdgo/core"
)

// Pump owns one portaudio input stream and drives samples into a
// Decoder until Close is called or the stream errors out.
type Pump struct {
	stream *portaudio.Stream
	buf    []int16
	dec    *core.Decoder
}

// Open starts capturing from the named device at sampleRate. device
// may be empty to select the host API's default input device.
func Open(device string, sampleRate float64, dec *core.Decoder) (*Pump, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("audio: initialize: %w", err)
	}

	devInfo, err := resolveDevice(device)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}

	p := &Pump{dec: dec, buf: make([]int16, 256)}

	params := portaudio.StreamParameters{
		Input: portaudio.StreamDeviceParameters{
			Device:   devInfo,
			Channels: 1,
			Latency:  devInfo.DefaultLowInputLatency,
		},
		SampleRate:      sampleRate,
		FramesPerBuffer: len(p.buf),
	}

	stream, err := portaudio.OpenStream(params, p.buf)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("audio: open stream: %w", err)
	}
	p.stream = stream

	if err := stream.Start(); err != nil {
		_ = stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("audio: start stream: %w", err)
	}

	return p, nil
}

// resolveDevice matches a device by substring against the host's
// input devices, falling back to the default input device when name
// is empty or no match is found.
func resolveDevice(name string) (*portaudio.DeviceInfo, error) {
	if name == "" {
		return portaudio.DefaultInputDevice()
	}
	devices, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("audio: list devices: %w", err)
	}
	for _, d := range devices {
		if d.MaxInputChannels > 0 && contains(d.Name, name) {
			return d, nil
		}
	}
	return portaudio.DefaultInputDevice()
}

func contains(haystack, needle string) bool {
	return len(needle) == 0 || (len(haystack) >= len(needle) && indexOf(haystack, needle) >= 0)
}

func indexOf(haystack, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}

// Run reads one buffer's worth of samples and feeds each one through
// the Decoder's Run loop. It blocks until the buffer is filled.
func (p *Pump) Run() error {
	if err := p.stream.Read(); err != nil {
		return fmt.Errorf("audio: read: %w", err)
	}
	for _, s := range p.buf {
		p.dec.Run(s)
	}
	return nil
}

// Close stops the stream and releases portaudio's global state.
func (p *Pump) Close() error {
	if p.stream != nil {
		_ = p.stream.Stop()
		_ = p.stream.Close()
	}
	return portaudio.Terminate()
}
