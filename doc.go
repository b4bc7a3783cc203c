// Package signals is a real-time software-defined-radio demodulation
// library. It turns a stream of complex (I/Q) baseband samples into
// demodulated audio for WBFM (with stereo), NBFM, AM, SSB and CW, and
// exposes a frequency-domain spectrum utility over the same sample stream.
//
// The library is organized as three layers: internal/dsp holds the
// numeric kernels (FFT, filters, demodulator primitives), mode/source/
// receiver/radio hold the scheme pipelines and the control plane that
// wires a SignalSource through a Radio into a SampleReceiver, and player
// describes the audio sink contract the demodulator writes into.
package signals
