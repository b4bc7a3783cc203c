// Package receiver defines the sample-receiver contract a Radio drives
// (spec §4.10) and a handful of receivers built on it: a composite
// fan-out, a periodic-tick sample counter, a spectrum analyzer, and a
// raw I/Q recorder.
package receiver

// Sample is the contract every receiver a Radio drives must satisfy.
// SetSampleRate is called once at stream start and again on any
// sample-rate change; Receive is called once per block, in arrival
// order. Implementations must not retain I or Q beyond the call.
type Sample interface {
	SetSampleRate(r float64)
	Receive(I, Q []float32, freq int64, data any)
}
