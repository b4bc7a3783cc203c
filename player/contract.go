// Package player implements the player-sink contract of spec §6: the
// boundary a Demodulator plays audio out through. Two real
// implementations wrap ebitengine/oto and gordonklaus/portaudio; NullSink
// is a no-op collaborator for tests.
package player

// Sink is the player contract (spec §6). SampleRate is the rate the sink
// expects audio at; a Demodulator resamples internally to match it.
// Play receives two equal-length channels — Right is the same slice as
// Left for mono audio.
type Sink interface {
	SampleRate() float64
	Play(left, right []float32)
	SetVolume(v float32)
	GetVolume() float32
}
