package mode

import (
	"github.com/jtarrio/signals"
	"github.com/jtarrio/signals/internal/dsp/coeffs"
	"github.com/jtarrio/signals/internal/dsp/filter"
	"github.com/jtarrio/signals/internal/dsp/primitive"
)

const ssbIntermediateRate = 48000

type ssbPipeline struct {
	common    *commonStage
	detector  *primitive.SSBDetector
	audioLP   filter.Filter
	agc       *filter.AGC
	bandwidth float64
	squelch   float64
}

func newSSBPipeline(sampleRate float64, m Mode) pipeline {
	p := &ssbPipeline{bandwidth: m.Bandwidth}
	p.common = newCommonStage(sampleRate, ssbIntermediateRate, m.Bandwidth)

	hilbertTaps := coeffs.Hilbert(129)
	p.detector = primitive.NewSSBDetector(filter.NewFIR(hilbertTaps), m.Upper)

	p.rebuildAudioLP()
	p.agc = filter.NewAGC(ssbIntermediateRate, 10)
	return p
}

// rebuildAudioLP rebuilds the post-detector audio low-pass for the
// current bandwidth.
func (p *ssbPipeline) rebuildAudioLP() {
	cutoff := p.bandwidth
	if cutoff <= 0 {
		cutoff = 3000
	}
	audioTaps := coeffs.LowPass(ssbIntermediateRate, cutoff, 65, 1)
	p.audioLP = filter.NewFIR(audioTaps)
}

func (p *ssbPipeline) SetFrequencyOffset(hz float64) { p.common.setFrequencyOffset(hz) }

func (p *ssbPipeline) Parameters() Parameters {
	params := newParameters()
	params.HasBandwidth = true
	params.HasSquelch = true
	params.getBandwidth = func() float64 { return p.bandwidth }
	params.setBandwidth = func(v float64) {
		p.bandwidth = v
		p.common.setBandwidth(v)
		p.rebuildAudioLP()
	}
	params.getSquelch = func() float64 { return p.squelch }
	params.setSquelch = func(v float64) { p.squelch = v }
	return params
}

func (p *ssbPipeline) Process(I, Q []float32) signals.AudioBlock {
	bi, bq, total, inBand := p.common.run(I, Q)

	out := make([]float32, len(bi))
	p.detector.Process(bi, bq, out)
	p.audioLP.InPlace(out)
	p.agc.InPlace(out)

	snr := snrRatio(inBand, total)
	if float64(snr) < p.squelch {
		out = make([]float32, len(out))
	}

	return signals.AudioBlock{Left: out, Right: out, Stereo: false, SNR: snr}
}

func init() {
	Register(SSB, newSSBPipeline, func() Mode { return NewSSB(3000, true) })
}
