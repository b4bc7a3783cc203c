package primitive

import "github.com/jtarrio/signals/internal/dsp/filter"

// StereoSeparator recovers the WBFM L-R difference signal from a baseband
// multiplex (mono sum + 19kHz pilot + 38kHz DSB-suppressed-carrier
// difference) by coherently down-converting the 38kHz component with twice
// the locked pilot phase (spec §4.6). The caller is responsible for
// low-pass filtering the returned difference signal to the audio
// bandwidth before combining it with the mono sum.
type StereoSeparator struct {
	pilot *filter.PilotDetector
	zero  []float32
	cos   []float32
	sin   []float32
}

// NewStereoSeparator creates a stereo separator at sampleRate, locking
// onto the pilot within +/-toleranceHz of 19kHz.
func NewStereoSeparator(sampleRate, toleranceHz float64) *StereoSeparator {
	return &StereoSeparator{pilot: filter.NewPilotDetector(sampleRate, 19000, toleranceHz)}
}

// Process demodulates the 38kHz difference component of multiplex into
// diff, and reports whether the pilot is currently locked.
func (s *StereoSeparator) Process(multiplex []float32, diff []float32) (found bool) {
	n := len(multiplex)
	if cap(s.zero) < n {
		s.zero = make([]float32, n)
		s.cos = make([]float32, n)
		s.sin = make([]float32, n)
	}
	zero := s.zero[:n]
	cos := s.cos[:n]
	sin := s.sin[:n]
	for i := range zero {
		zero[i] = 0
	}

	s.pilot.Process(multiplex, zero, cos, sin)

	for i := range multiplex {
		diff[i] = multiplex[i] * cos[i] * sin[i] * 4
	}
	return s.pilot.Locked()
}
