package source

import (
	"context"
	"sync"

	"github.com/jtarrio/signals"
	"github.com/jtarrio/signals/internal/buffer"
)

// PushSource is fed samples explicitly via PushSamples rather than
// pulling from a generator or a wall clock (spec §4.8). It resolves
// pending reads first from its internal ring then from newly pushed
// data; any leftover is stored for the next read. If no reads are
// pending, a push is simply stored.
//
// Resolved blocks borrow their I/Q arrays from a small pool instead of
// allocating fresh ones, so a receiver must treat them as valid only for
// the duration of the Receive call that hands them over.
type PushSource struct {
	mu         sync.Mutex
	sampleRate int64
	centerFreq int64
	params     signals.ParameterMap

	ringI, ringQ *buffer.Ring
	pending      *buffer.PendingRing[signals.IQBlock]
	poolI, poolQ *buffer.Pool
}

// NewPushSource creates a push source with a ring of the given capacity
// and a pending-read ring of the given capacity (spec default 8).
func NewPushSource(ringCapacity, pendingCapacity int) *PushSource {
	if ringCapacity <= 0 {
		ringCapacity = 65536
	}
	if pendingCapacity <= 0 {
		pendingCapacity = 8
	}
	return &PushSource{
		sampleRate: 48000,
		params:     signals.ParameterMap{},
		ringI:      buffer.NewRing(ringCapacity),
		ringQ:      buffer.NewRing(ringCapacity),
		pending:    buffer.NewPendingRing[signals.IQBlock](pendingCapacity),
		poolI:      buffer.NewPool(pendingCapacity, 0),
		poolQ:      buffer.NewPool(pendingCapacity, 0),
	}
}

// SetSampleRate records the sample rate.
func (p *PushSource) SetSampleRate(ctx context.Context, hz int64) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sampleRate = hz
	return hz, nil
}

// SetCenterFrequency records the tuned frequency.
func (p *PushSource) SetCenterFrequency(ctx context.Context, hz int64) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.centerFreq = hz
	return hz, nil
}

// SetParameter stores key/value and echoes it back.
func (p *PushSource) SetParameter(ctx context.Context, key string, value any) (any, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.params[key] = value
	return value, nil
}

// StartReceiving is a no-op: a push source is always ready to accept
// data.
func (p *PushSource) StartReceiving(ctx context.Context) error { return nil }

// PushSamples delivers newly arrived I/Q data. If freq is non-nil, the
// center frequency is updated to reflect it. Pending reads are resolved
// first from the ring, then from this push, in FIFO order.
func (p *PushSource) PushSamples(I, Q []float32, freq *int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if freq != nil {
		p.centerFreq = *freq
	}
	p.ringI.Store(I)
	p.ringQ.Store(Q)

	for {
		n, ok := p.pending.Front()
		if !ok || p.ringI.Pending() < n {
			return
		}
		freq := p.centerFreq
		p.pending.ResolveWith(func(reqN int) (signals.IQBlock, error) {
			oi := p.poolI.Get(reqN)
			oq := p.poolQ.Get(reqN)
			p.ringI.MoveTo(oi)
			p.ringQ.MoveTo(oq)
			return signals.IQBlock{I: oi, Q: oq, Frequency: freq}, nil
		})
	}
}

// ReadSamples enqueues a read of n samples, resolved by a concurrent or
// future PushSamples call.
func (p *PushSource) ReadSamples(ctx context.Context, n int) (signals.IQBlock, error) {
	ticket, err := p.pending.Add(n)
	if err != nil {
		return signals.IQBlock{}, err
	}
	return ticket.Wait(ctx)
}

// Close cancels all pending and future reads.
func (p *PushSource) Close() error {
	p.pending.CancelAll()
	return nil
}
