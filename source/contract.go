// Package source implements the SignalSource contract of spec §4.8: a
// pull-based I/Q producer with many reads in flight resolved in FIFO
// order, plus three concrete sources (a real-time pacing wrapper around a
// generator function, a push source fed by explicit data arrival, and a
// synchronous generator source for tests) and a WAV-file-backed source
// that exercises the contract against recorded captures.
package source

import (
	"context"

	"github.com/jtarrio/signals"
)

// Source is the pull-based signal-acquisition contract every concrete
// source implements (spec §4.8). All methods may fail with
// buffer.ErrTransferCanceled if the source has been closed; pending reads
// resolve in FIFO order of issuance.
type Source interface {
	// SetSampleRate requests a sample rate and returns the rate the
	// source actually adopted.
	SetSampleRate(ctx context.Context, hz int64) (int64, error)
	// SetCenterFrequency requests a center frequency and returns the
	// frequency the source actually tuned to.
	SetCenterFrequency(ctx context.Context, hz int64) (int64, error)
	// SetParameter applies a source-specific parameter, returning the
	// value actually adopted, or nil for an unrecognized key.
	SetParameter(ctx context.Context, key string, value any) (any, error)
	// StartReceiving begins sample production.
	StartReceiving(ctx context.Context) error
	// ReadSamples requests n samples; many calls may be in flight at
	// once, and resolve in the order they were issued.
	ReadSamples(ctx context.Context, n int) (signals.IQBlock, error)
	// Close shuts the source down, rejecting all pending and future
	// reads with buffer.ErrTransferCanceled.
	Close() error
}

// Provider returns a freshly initialized Source per radio start (spec
// §6).
type Provider interface {
	Get() Source
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func() Source

// Get calls f.
func (f ProviderFunc) Get() Source { return f() }
