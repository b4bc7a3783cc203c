package player

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
)

// PortAudioSink plays interleaved stereo float32 audio through
// gordonklaus/portaudio's low-latency output stream, pulled by a
// callback rather than pushed, so Play only appends to an internal
// buffer that the callback drains.
type PortAudioSink struct {
	mu         sync.Mutex
	sampleRate float64
	volume     float32
	stream     *portaudio.Stream
	pending    []float32
}

// NewPortAudioSink opens the default output device's low-latency stereo
// stream at sampleRate, with the given callback buffer size.
func NewPortAudioSink(sampleRate float64, framesPerBuffer int) (*PortAudioSink, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("player: initializing portaudio: %w", err)
	}
	hostAPI, err := portaudio.DefaultHostApi()
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("player: getting default host API: %w", err)
	}

	params := portaudio.LowLatencyParameters(nil, hostAPI.DefaultOutputDevice)
	params.Input.Channels = 0
	params.Output.Channels = 2
	params.SampleRate = sampleRate
	params.FramesPerBuffer = framesPerBuffer

	s := &PortAudioSink{sampleRate: sampleRate, volume: 1}
	stream, err := portaudio.OpenStream(params, s.fill)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("player: opening portaudio stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("player: starting portaudio stream: %w", err)
	}
	s.stream = stream
	return s, nil
}

// fill is portaudio's output callback: it drains the pending buffer,
// zero-padding with silence once it runs dry.
func (s *PortAudioSink) fill(out []float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := copy(out, s.pending)
	for i := n; i < len(out); i++ {
		out[i] = 0
	}
	s.pending = s.pending[n:]
}

// SampleRate returns the rate the stream was opened at.
func (s *PortAudioSink) SampleRate() float64 { return s.sampleRate }

// Play interleaves left/right, scales by the current volume, and
// appends the result to the pending buffer the callback drains.
func (s *PortAudioSink) Play(left, right []float32) {
	s.mu.Lock()
	vol := s.volume
	buf := make([]float32, len(left)*2)
	for i := range left {
		buf[2*i] = left[i] * vol
		buf[2*i+1] = right[i] * vol
	}
	s.pending = append(s.pending, buf...)
	s.mu.Unlock()
}

// SetVolume stores v, clamped to [0,1], applied to subsequent Play calls.
func (s *PortAudioSink) SetVolume(v float32) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	s.mu.Lock()
	s.volume = v
	s.mu.Unlock()
}

// GetVolume returns the stored volume.
func (s *PortAudioSink) GetVolume() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// Close stops and closes the stream and terminates portaudio.
func (s *PortAudioSink) Close() error {
	s.stream.Stop()
	err := s.stream.Close()
	portaudio.Terminate()
	return err
}
