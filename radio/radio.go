// Package radio implements the control plane that drives a signal
// source's pull-based read loop into a sample receiver (spec §4.9): an
// OFF/PLAYING state machine, a single-consumer command queue so that
// start/stop/frequency/parameter changes apply in submission order, and
// a two-in-flight read pipeline that keeps one buffer draining into the
// receiver while the next is already in flight against the source.
package radio

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/jtarrio/signals"
	"github.com/jtarrio/signals/receiver"
	"github.com/jtarrio/signals/source"
)

const (
	defaultBuffersPerSecond = 20
	parallelReads           = 2
	samplesPerBufUnit       = 512
)

// session holds the per-start state a radio's two read loops and any
// failure cleanup need to coordinate on; it is discarded on every stop.
type session struct {
	src      source.Source
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// Radio is the control-plane state machine of spec §4.9. It owns a
// SignalSourceProvider, a SampleReceiver, and the persisted parameter
// map that gets replayed against a freshly obtained source on every
// start.
type Radio struct {
	cmdCh chan func()

	provider         source.Provider
	receiver         receiver.Sample
	buffersPerSecond int

	state      State
	sampleRate int64
	centerFreq int64
	params     signals.ParameterMap

	sess *session

	evMu    sync.Mutex
	onEvent func(Event)
}

// New creates a radio around the given source provider and sample
// receiver, with an initial sample rate used on the first start.
func New(provider source.Provider, rcv receiver.Sample, sampleRate int64) *Radio {
	r := &Radio{
		cmdCh:            make(chan func(), 32),
		provider:         provider,
		receiver:         rcv,
		buffersPerSecond: defaultBuffersPerSecond,
		sampleRate:       sampleRate,
		params:           signals.ParameterMap{},
	}
	go r.commandLoop()
	return r
}

// OnEvent registers a callback invoked after every radio state
// transition (spec §6); started, stopped, or error.
func (r *Radio) OnEvent(fn func(Event)) {
	r.evMu.Lock()
	r.onEvent = fn
	r.evMu.Unlock()
}

func (r *Radio) emit(e Event) {
	r.evMu.Lock()
	fn := r.onEvent
	r.evMu.Unlock()
	if fn != nil {
		fn(e)
	}
}

// State reports the radio's current state.
func (r *Radio) State() State {
	var s State
	r.run(func() { s = r.state })
	return s
}

// GetFrequency returns the last center frequency the radio has applied
// or recorded for the next start.
func (r *Radio) GetFrequency() int64 {
	var f int64
	r.run(func() { f = r.centerFreq })
	return f
}

// GetParameter returns the last value recorded for key, applied or
// pending for the next start.
func (r *Radio) GetParameter(key string) any {
	var v any
	r.run(func() { v = r.params[key] })
	return v
}

// SetFrequency submits a center-frequency change. While PLAYING it is
// applied to the live source immediately; otherwise it is recorded for
// the next start.
func (r *Radio) SetFrequency(hz int64) {
	r.run(func() { r.doSetFrequency(hz) })
}

func (r *Radio) doSetFrequency(hz int64) {
	r.centerFreq = hz
	if r.state != Playing || r.sess == nil {
		return
	}
	actual, err := r.sess.src.SetCenterFrequency(context.Background(), hz)
	if err != nil {
		r.emit(Event{Type: EventError, Err: err})
		return
	}
	r.centerFreq = actual
}

// SetParameter submits a source parameter change, applied immediately
// while PLAYING and always recorded for replay on the next start.
func (r *Radio) SetParameter(key string, value any) {
	r.run(func() { r.doSetParameter(key, value) })
}

func (r *Radio) doSetParameter(key string, value any) {
	r.params[key] = value
	if r.state != Playing || r.sess == nil {
		return
	}
	applied, err := r.sess.src.SetParameter(context.Background(), key, value)
	if err != nil {
		r.emit(Event{Type: EventError, Err: err})
		return
	}
	r.params[key] = applied
}

// SetSampleRate records the sample rate to request on the next start; it
// has no effect on an already-PLAYING radio (spec §4.9).
func (r *Radio) SetSampleRate(hz int64) {
	r.run(func() { r.sampleRate = hz })
}

// Start transitions OFF→PLAYING: obtains a fresh source, applies the
// sample rate, center frequency and every stored parameter, then starts
// the two parallel read loops.
func (r *Radio) Start() {
	r.run(func() { r.doStart() })
}

func (r *Radio) doStart() {
	if r.state == Playing {
		return
	}

	src := r.provider.Get()
	ctx, cancel := context.WithCancel(context.Background())

	actualRate, err := src.SetSampleRate(ctx, r.sampleRate)
	if err != nil {
		cancel()
		r.emit(Event{Type: EventError, Err: err})
		return
	}
	r.sampleRate = actualRate

	actualFreq, err := src.SetCenterFrequency(ctx, r.centerFreq)
	if err != nil {
		cancel()
		r.emit(Event{Type: EventError, Err: err})
		return
	}
	r.centerFreq = actualFreq

	for k, v := range r.params {
		applied, err := src.SetParameter(ctx, k, v)
		if err != nil {
			r.emit(Event{Type: EventError, Err: err})
			continue
		}
		r.params[k] = applied
	}

	if err := src.StartReceiving(ctx); err != nil {
		cancel()
		r.emit(Event{Type: EventError, Err: err})
		return
	}

	r.receiver.SetSampleRate(float64(r.sampleRate))

	sess := &session{src: src, cancel: cancel}
	r.sess = sess
	r.state = Playing

	samplesPerBuf := samplesPerBufFor(r.sampleRate, r.buffersPerSecond)
	sess.wg.Add(parallelReads)
	for i := 0; i < parallelReads; i++ {
		go r.readLoop(ctx, sess, samplesPerBuf)
	}

	log.Info("radio started", "sampleRate", r.sampleRate, "centerFrequency", r.centerFreq)
	r.emit(Event{Type: EventStarted})
}

// samplesPerBufFor rounds the per-buffer sample count up to a multiple
// of 512 so that buffersPerSecond buffers per second cover the sample
// rate (spec §4.9).
func samplesPerBufFor(sampleRate int64, buffersPerSecond int) int {
	if buffersPerSecond <= 0 {
		buffersPerSecond = defaultBuffersPerSecond
	}
	perSecond := int64(samplesPerBufUnit * buffersPerSecond)
	units := (sampleRate + perSecond - 1) / perSecond
	if units < 1 {
		units = 1
	}
	return int(units) * samplesPerBufUnit
}

// readLoop is one of the two pipelined read transfers of spec §4.9: it
// keeps issuing reads and handing blocks to the receiver until the
// session is stopped or the source fails.
func (r *Radio) readLoop(ctx context.Context, sess *session, n int) {
	defer sess.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		blk, err := sess.src.ReadSamples(ctx, n)
		if err != nil {
			if errors.Is(err, source.ErrTransferCanceled) || errors.Is(err, context.Canceled) {
				return
			}
			r.emit(Event{Type: EventError, Err: err})
			r.failSession(sess)
			return
		}
		r.receiver.Receive(blk.I, blk.Q, blk.Frequency, blk.Data)
	}
}

// failSession attempts an orderly stop after a source failure (spec
// §4.9/§7): it cancels the session, waits for both read loops to drain,
// then closes the source and transitions back to OFF.
func (r *Radio) failSession(sess *session) {
	sess.stopOnce.Do(func() {
		sess.cancel()
		go func() {
			sess.wg.Wait()
			sess.src.Close()
			r.run(func() {
				if r.sess == sess {
					r.sess = nil
					r.state = Off
				}
			})
			log.Warn("radio stopped after source failure")
			r.emit(Event{Type: EventStopped})
		}()
	})
}

// Stop transitions PLAYING→OFF: stops requesting new reads, awaits both
// read loops draining, and closes the source.
func (r *Radio) Stop() {
	r.run(func() { r.doStop() })
}

func (r *Radio) doStop() {
	if r.state != Playing || r.sess == nil {
		return
	}
	sess := r.sess
	sess.stopOnce.Do(func() {
		sess.cancel()
		sess.wg.Wait()
		sess.src.Close()
	})
	r.sess = nil
	r.state = Off
	log.Info("radio stopped")
	r.emit(Event{Type: EventStopped})
}
