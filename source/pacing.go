package source

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jtarrio/signals"
	"github.com/jtarrio/signals/internal/buffer"
)

// SampleFunc (already declared in generator.go) is reused here: pacing
// wraps the same shape of generator function, but drives it from a
// wall-clock tick instead of calling it synchronously per read.

const pacingTickInterval = 5 * time.Millisecond

// PacingSource wraps a sample-generator function that can produce
// arbitrary sample counts instantaneously and paces its output against
// wall-clock time, the way a real radio's sample clock would (spec
// §4.8). A virtual stream position advances on every tick; reads resolve
// once enough virtual samples have been generated to satisfy them.
type PacingSource struct {
	mu         sync.Mutex
	gen        SampleFunc
	sampleRate int64
	centerFreq int64
	params     signals.ParameterMap

	ringI, ringQ  *buffer.Ring
	pending       *buffer.PendingRing[signals.IQBlock]
	generatedUpTo int64
	t0            time.Time
	started       bool

	stop chan struct{}
	done chan struct{}
}

// NewPacingSource creates a pacing source around gen, with a pending-read
// ring of the given capacity (spec default 8).
func NewPacingSource(gen SampleFunc, pendingCapacity int) *PacingSource {
	if pendingCapacity <= 0 {
		pendingCapacity = 8
	}
	return &PacingSource{
		gen:        gen,
		sampleRate: 48000,
		params:     signals.ParameterMap{},
		pending:    buffer.NewPendingRing[signals.IQBlock](pendingCapacity),
	}
}

func ringCapacityFor(sampleRate int64) int {
	c := int(sampleRate / 10)
	if c < 65536 {
		c = 65536
	}
	return c
}

// SetSampleRate sets the rate and resizes the internal rings.
func (p *PacingSource) SetSampleRate(ctx context.Context, hz int64) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sampleRate = hz
	ringCap := ringCapacityFor(hz)
	p.ringI = buffer.NewRing(ringCap)
	p.ringQ = buffer.NewRing(ringCap)
	return hz, nil
}

// SetCenterFrequency records the tuned frequency.
func (p *PacingSource) SetCenterFrequency(ctx context.Context, hz int64) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.centerFreq = hz
	return hz, nil
}

// SetParameter stores key/value and echoes it back.
func (p *PacingSource) SetParameter(ctx context.Context, key string, value any) (any, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.params[key] = value
	return value, nil
}

// StartReceiving begins the wall-clock tick loop.
func (p *PacingSource) StartReceiving(ctx context.Context) error {
	p.mu.Lock()
	if p.ringI == nil {
		ringCap := ringCapacityFor(p.sampleRate)
		p.ringI = buffer.NewRing(ringCap)
		p.ringQ = buffer.NewRing(ringCap)
	}
	p.t0 = time.Now()
	p.generatedUpTo = 0
	p.started = true
	p.stop = make(chan struct{})
	p.done = make(chan struct{})
	p.mu.Unlock()

	go p.tickLoop()
	log.Info("pacing source started", "sampleRate", p.sampleRate)
	return nil
}

func (p *PacingSource) tickLoop() {
	defer close(p.done)
	ticker := time.NewTicker(pacingTickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-p.stop:
			return
		case now := <-ticker.C:
			p.tick(now)
		}
	}
}

// tick advances the virtual stream position and resolves any pending
// reads it can now satisfy (spec §4.8).
func (p *PacingSource) tick(now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}

	cur := int64(now.Sub(p.t0).Seconds() * float64(p.sampleRate))
	if cur > p.generatedUpTo {
		n := int(cur - p.generatedUpTo)
		I, Q := p.gen(p.generatedUpTo, n)
		p.ringI.Store(I)
		p.ringQ.Store(Q)
		p.generatedUpTo = cur
	}

	for {
		n, ok := p.pending.Front()
		if !ok {
			return
		}
		if n > p.ringI.Cap() {
			if p.ringI.Pending() < p.ringI.Cap() {
				return
			}
			n = p.ringI.Cap()
		}
		if p.ringI.Pending() < n {
			return
		}
		freq := p.centerFreq
		p.pending.ResolveWith(func(reqN int) (signals.IQBlock, error) {
			if reqN > p.ringI.Cap() {
				reqN = p.ringI.Cap()
			}
			I := make([]float32, reqN)
			Q := make([]float32, reqN)
			p.ringI.MoveTo(I)
			p.ringQ.MoveTo(Q)
			return signals.IQBlock{I: I, Q: Q, Frequency: freq}, nil
		})
	}
}

// ReadSamples enqueues a read of n samples and blocks until a tick
// satisfies it, ctx is canceled, or the source is closed.
func (p *PacingSource) ReadSamples(ctx context.Context, n int) (signals.IQBlock, error) {
	ticket, err := p.pending.Add(n)
	if err != nil {
		return signals.IQBlock{}, err
	}
	return ticket.Wait(ctx)
}

// Close stops the tick loop and cancels all pending and future reads.
func (p *PacingSource) Close() error {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		p.pending.CancelAll()
		return nil
	}
	p.started = false
	stop := p.stop
	done := p.done
	p.mu.Unlock()

	close(stop)
	<-done
	p.pending.CancelAll()
	log.Info("pacing source closed")
	return nil
}
