package source

import (
	"context"
	"sync"

	"github.com/jtarrio/signals"
)

// SampleFunc produces n complex samples for a generator source, starting
// at the given absolute sample index.
type SampleFunc func(startSample int64, n int) (I, Q []float32)

// Generator is the synchronous generator source of spec §4.8's component
// I responsibility row: it returns samples immediately on ReadSamples,
// with no wall-clock pacing, so round-trip modulation tests (§8 item 9)
// don't depend on real time.
type Generator struct {
	mu         sync.Mutex
	gen        SampleFunc
	sampleRate int64
	centerFreq int64
	params     signals.ParameterMap
	pos        int64
	closed     bool
}

// NewGenerator creates a generator source driven by fn.
func NewGenerator(fn SampleFunc) *Generator {
	return &Generator{gen: fn, params: signals.ParameterMap{}}
}

// SetSampleRate records and echoes back the requested rate.
func (g *Generator) SetSampleRate(ctx context.Context, hz int64) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sampleRate = hz
	return hz, nil
}

// SetCenterFrequency records and echoes back the requested frequency.
func (g *Generator) SetCenterFrequency(ctx context.Context, hz int64) (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.centerFreq = hz
	return hz, nil
}

// SetParameter stores key/value and echoes it back.
func (g *Generator) SetParameter(ctx context.Context, key string, value any) (any, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.params[key] = value
	return value, nil
}

// StartReceiving resets the virtual stream position to 0.
func (g *Generator) StartReceiving(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pos = 0
	g.closed = false
	return nil
}

// ReadSamples returns n freshly generated samples immediately.
func (g *Generator) ReadSamples(ctx context.Context, n int) (signals.IQBlock, error) {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return signals.IQBlock{}, ErrTransferCanceled
	}
	start := g.pos
	g.pos += int64(n)
	freq := g.centerFreq
	g.mu.Unlock()

	I, Q := g.gen(start, n)
	return signals.IQBlock{I: I, Q: Q, Frequency: freq}, nil
}

// Close marks the source closed; further reads fail with
// ErrTransferCanceled.
func (g *Generator) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	return nil
}
