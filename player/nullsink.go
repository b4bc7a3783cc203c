package player

import "sync"

// NullSink discards every block it is given. It is used across the test
// suite in place of a hardware-backed sink, and as the default sink
// before a caller wires a real one.
type NullSink struct {
	mu         sync.Mutex
	sampleRate float64
	volume     float32
	PlayCount  int
}

// NewNullSink creates a discarding sink reporting sampleRate.
func NewNullSink(sampleRate float64) *NullSink {
	return &NullSink{sampleRate: sampleRate, volume: 1}
}

// SampleRate returns the configured rate.
func (s *NullSink) SampleRate() float64 { return s.sampleRate }

// Play discards left/right, only counting the call.
func (s *NullSink) Play(left, right []float32) {
	s.mu.Lock()
	s.PlayCount++
	s.mu.Unlock()
}

// SetVolume stores v, clamped to [0,1].
func (s *NullSink) SetVolume(v float32) {
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
func (s *NullSink) GetVolume() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}
