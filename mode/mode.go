// Package mode implements the per-scheme demodulation pipelines of spec
// §4.7: WBFM, NBFM, AM, SSB, and CW, each built from the internal/dsp
// kernel, registered behind a uniform Demodulator contract and capability
// view so a caller can drive any scheme without a type switch.
package mode

// Scheme identifies one of the five demodulation families of §3.
type Scheme string

const (
	WBFM Scheme = "wbfm"
	NBFM Scheme = "nbfm"
	AM   Scheme = "am"
	SSB  Scheme = "ssb"
	CW   Scheme = "cw"
)

// Mode is the tagged-variant configuration of a demodulator (spec §3):
// the active scheme plus whichever of its parameters apply. Squelch is
// intentionally absent — it lives alongside demodulator state, not in the
// mode value (spec §3, §4.7).
type Mode struct {
	Scheme    Scheme
	Stereo    bool    // WBFM only
	Bandwidth float64 // NBFM (2*maxDeviation), AM, SSB, CW
	Upper     bool    // SSB only: true selects USB, false LSB
}

// NewWBFM creates a WBFM mode. Bandwidth is fixed at 150kHz (spec §4.7)
// and is not user-adjustable.
func NewWBFM(stereo bool) Mode {
	return Mode{Scheme: WBFM, Stereo: stereo, Bandwidth: 150000}
}

// NewNBFM creates an NBFM mode from a maximum deviation; the pipeline
// bandwidth is twice that value.
func NewNBFM(maxDeviationHz float64) Mode {
	return Mode{Scheme: NBFM, Bandwidth: 2 * maxDeviationHz}
}

// NewAM creates an AM mode with the given low-pass bandwidth.
func NewAM(bandwidthHz float64) Mode {
	return Mode{Scheme: AM, Bandwidth: bandwidthHz}
}

// NewSSB creates an SSB mode; upper selects USB (true) or LSB (false).
func NewSSB(bandwidthHz float64, upper bool) Mode {
	return Mode{Scheme: SSB, Bandwidth: bandwidthHz, Upper: upper}
}

// NewCW creates a CW mode; bandwidthHz must be in [50, 1000] (spec §4.7).
func NewCW(bandwidthHz float64) Mode {
	return Mode{Scheme: CW, Bandwidth: bandwidthHz}
}

// MaxDeviation returns the NBFM max-deviation implied by Bandwidth; only
// meaningful when Scheme == NBFM.
func (m Mode) MaxDeviation() float64 { return m.Bandwidth / 2 }
