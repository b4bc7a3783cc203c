package mode

import (
	"fmt"
	"sync"

	"github.com/jtarrio/signals"
)

// pipeline is the per-scheme demodulation contract: a stateful decoder
// from RF-rate I/Q to audio blocks (spec §4.7); the pipeline itself shifts
// the signal of interest to baseband, by the offset given to
// SetFrequencyOffset. It is deliberately unexported: callers
// drive schemes through Demodulator, which owns volume, frequency-offset,
// and glitch-free retune handling common to every scheme.
type pipeline interface {
	// Parameters returns the capability-uniform view of this scheme's
	// tunable knobs.
	Parameters() Parameters
	// SetFrequencyOffset retunes the signal of interest within the RF
	// passband, in Hz relative to center frequency.
	SetFrequencyOffset(hz float64)
	// Process demodulates one block of I/Q samples into an audio block.
	Process(I, Q []float32) signals.AudioBlock
}

// DemodFactory builds a fresh per-scheme pipeline at the given RF sample
// rate and initial mode.
type DemodFactory func(sampleRate float64, m Mode) pipeline

// ConfigFactory returns a scheme's default Mode.
type ConfigFactory func() Mode

type registryEntry struct {
	demod  DemodFactory
	config ConfigFactory
}

var (
	registryMu sync.RWMutex
	registry   = map[Scheme]registryEntry{}
)

// Register associates a scheme with the factories that build its
// demodulator and its default mode (spec §6, mode registry).
func Register(scheme Scheme, demod DemodFactory, config ConfigFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[scheme] = registryEntry{demod: demod, config: config}
}

// GetMode returns scheme's default mode instance.
func GetMode(scheme Scheme) Mode {
	registryMu.RLock()
	e, ok := registry[scheme]
	registryMu.RUnlock()
	if !ok {
		return Mode{Scheme: scheme}
	}
	return e.config()
}

// GetSchemes lists every registered scheme.
func GetSchemes() []Scheme {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Scheme, 0, len(registry))
	for s := range registry {
		out = append(out, s)
	}
	return out
}

// buildPipeline builds the registered pipeline for m.Scheme at the given
// RF sample rate. It panics if the scheme was never registered, which
// only happens if a caller constructs a Mode by hand with an unknown
// Scheme string.
func buildPipeline(sampleRate float64, m Mode) pipeline {
	registryMu.RLock()
	e, ok := registry[m.Scheme]
	registryMu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("mode: unregistered scheme %q", m.Scheme))
	}
	return e.demod(sampleRate, m)
}

// ModeParameters returns the capability-uniform view for any demodulator.
func ModeParameters(d *Demodulator) Parameters { return d.Parameters() }
