package player

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// OtoSink plays stereo int16 PCM through ebitengine/oto, the same
// library the reference command-line player uses. Play blocks only as
// long as it takes to hand bytes to the pipe oto reads from; oto itself
// buffers and paces playback against the output device's clock.
type OtoSink struct {
	mu         sync.Mutex
	sampleRate float64
	ctx        *oto.Context
	player     *oto.Player
	writer     *io.PipeWriter
}

// NewOtoSink opens a stereo 16-bit little-endian oto context and player
// at the given sample rate.
func NewOtoSink(sampleRate int) (*OtoSink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("player: creating oto context: %w", err)
	}
	<-ready

	reader, writer := io.Pipe()
	p := ctx.NewPlayer(reader)
	p.SetVolume(1)
	p.Play()

	return &OtoSink{
		sampleRate: float64(sampleRate),
		ctx:        ctx,
		player:     p,
		writer:     writer,
	}, nil
}

// SampleRate returns the rate the context was opened at.
func (s *OtoSink) SampleRate() float64 { return s.sampleRate }

// Play encodes left/right as interleaved int16 LE frames and writes them
// to oto's pipe.
func (s *OtoSink) Play(left, right []float32) {
	buf := make([]byte, len(left)*4)
	for i := range left {
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(floatToInt16(left[i])))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(floatToInt16(right[i])))
	}
	s.writer.Write(buf)
}

// SetVolume sets oto's player volume, clamped to [0,1].
func (s *OtoSink) SetVolume(v float32) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	s.mu.Lock()
	s.player.SetVolume(float64(v))
	s.mu.Unlock()
}

// GetVolume returns oto's player volume.
func (s *OtoSink) GetVolume() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float32(s.player.Volume())
}

// Close shuts down the pipe and the oto player.
func (s *OtoSink) Close() error {
	s.writer.Close()
	return s.player.Close()
}

func floatToInt16(x float32) int16 {
	v := x * 32767
	if v > 32767 {
		v = 32767
	}
	if v < -32768 {
		v = -32768
	}
	return int16(v)
}
