package signals

// IQBlock is an ordered pair of equal-length I and Q sample arrays plus the
// center frequency, in Hz, that was tuned when the samples were produced.
// Data is an optional opaque side channel a source can use to pass
// acquisition metadata through to receivers.
//
// Receivers must not retain a reference to I, Q or Data beyond the call
// that handed the block to them; the arrays may come from a pool slot that
// gets reused on the next read.
type IQBlock struct {
	I         []float32
	Q         []float32
	Frequency int64
	Data      any
}

// Len returns the number of samples in the block. It panics if I and Q
// have different lengths, which would violate the IQBlock invariant.
func (b IQBlock) Len() int {
	if len(b.I) != len(b.Q) {
		panic("signals: IQBlock I/Q length mismatch")
	}
	return len(b.I)
}

// AudioBlock is a block of demodulated audio. Right is nil, or identical to
// Left, for a mono block; it only differs from Left when Stereo is true.
// SNR is the ratio of in-band to total power for the block that produced
// it; it is an ordinal signal-quality indicator, not a calibrated SNR in dB.
type AudioBlock struct {
	Left   []float32
	Right  []float32
	Stereo bool
	SNR    float32
}

// Mono reports whether Left should be treated as the only channel.
func (a AudioBlock) Mono() bool {
	return !a.Stereo
}

// ParameterMap is a source-specific string-keyed map of untyped values. A
// Radio persists the map across stop/start cycles and replays it against
// a freshly obtained source on every start.
type ParameterMap map[string]any

// Clone returns a shallow copy of the map so callers can safely hand a
// ParameterMap to a Radio without aliasing their own copy.
func (p ParameterMap) Clone() ParameterMap {
	out := make(ParameterMap, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
