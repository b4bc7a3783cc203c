package mode

// Parameters is the capability-uniform view of a demodulator's tunable
// knobs (spec §4.7, §6): every scheme exposes the same getters and
// setters, no-op where the capability does not apply, so a UI can drive
// every scheme through one surface.
type Parameters struct {
	HasBandwidth  bool
	HasStereo     bool
	HasSquelch    bool
	HasDeemphasis bool

	getBandwidth     func() float64
	setBandwidth     func(float64)
	getStereo        func() bool
	setStereo        func(bool)
	getSquelch       func() float64
	setSquelch       func(float64)
	getDeemphasisTau func() float64
	setDeemphasisTau func(float64)
}

func newParameters() Parameters {
	return Parameters{
		getBandwidth:     func() float64 { return 0 },
		setBandwidth:     func(float64) {},
		getStereo:        func() bool { return false },
		setStereo:        func(bool) {},
		getSquelch:       func() float64 { return 0 },
		setSquelch:       func(float64) {},
		getDeemphasisTau: func() float64 { return 0 },
		setDeemphasisTau: func(float64) {},
	}
}

// Bandwidth returns the scheme's bandwidth, or 0 if HasBandwidth is false.
func (p Parameters) Bandwidth() float64 { return p.getBandwidth() }

// SetBandwidth sets the scheme's bandwidth; no-op if HasBandwidth is
// false.
func (p Parameters) SetBandwidth(v float64) { p.setBandwidth(v) }

// Stereo returns whether stereo is currently enabled, or false if
// HasStereo is false.
func (p Parameters) Stereo() bool { return p.getStereo() }

// SetStereo enables or disables stereo; no-op if HasStereo is false.
func (p Parameters) SetStereo(v bool) { p.setStereo(v) }

// Squelch returns the squelch threshold (an SNR ratio), or 0 if
// HasSquelch is false.
func (p Parameters) Squelch() float64 { return p.getSquelch() }

// SetSquelch sets the squelch threshold; no-op if HasSquelch is false.
func (p Parameters) SetSquelch(v float64) { p.setSquelch(v) }

// DeemphasisTau returns the de-emphasis time constant in seconds, or 0 if
// HasDeemphasis is false.
func (p Parameters) DeemphasisTau() float64 { return p.getDeemphasisTau() }

// SetDeemphasisTau sets the de-emphasis time constant in seconds; no-op if
// HasDeemphasis is false.
func (p Parameters) SetDeemphasisTau(v float64) { p.setDeemphasisTau(v) }
