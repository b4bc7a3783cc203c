package mode

import (
	"math"

	"github.com/jtarrio/signals"
	"github.com/jtarrio/signals/internal/dsp/coeffs"
	"github.com/jtarrio/signals/internal/dsp/filter"
)

const (
	cwIntermediateRate = 48000
	cwBeatFrequency    = 600
)

// cwPipeline implements the beat-frequency-oscillator technique: the RF
// path is shifted so the carrier lands exactly at cwBeatFrequency after
// downconversion, at which point the real (I) branch of the complex
// baseband *is* the audible tone — no discriminator is needed beyond a
// bandpass around the beat frequency (spec §4.7).
type cwPipeline struct {
	common     *commonStage
	freqOffset float64

	hi  filter.Filter
	lo  filter.Filter
	agc *filter.AGC

	bandwidth float64
	squelch   float64
}

func newCWPipeline(sampleRate float64, m Mode) pipeline {
	p := &cwPipeline{bandwidth: m.Bandwidth}
	p.common = newCommonStage(sampleRate, cwIntermediateRate, cwIntermediateRate)
	p.rebuildBandpass()
	p.agc = filter.NewAGC(cwIntermediateRate, 10)
	p.SetFrequencyOffset(0)
	return p
}

func (p *cwPipeline) rebuildBandpass() {
	bw := p.bandwidth
	if bw < 50 {
		bw = 50
	}
	if bw > 1000 {
		bw = 1000
	}
	hiCut := cwBeatFrequency + bw/2
	loCut := cwBeatFrequency - bw/2
	if loCut < 1 {
		loCut = 1
	}
	hiTaps := coeffs.LowPass(cwIntermediateRate, hiCut, 129, 1)
	loTaps := coeffs.LowPass(cwIntermediateRate, loCut, 129, 1)
	p.hi = filter.NewFIR(hiTaps)
	p.lo = filter.NewFIR(loTaps)
}

func (p *cwPipeline) SetFrequencyOffset(hz float64) {
	p.freqOffset = hz
	p.common.setFrequencyOffset(hz - cwBeatFrequency)
}

func (p *cwPipeline) Parameters() Parameters {
	params := newParameters()
	params.HasBandwidth = true
	params.HasSquelch = true
	params.getBandwidth = func() float64 { return p.bandwidth }
	params.setBandwidth = func(v float64) {
		p.bandwidth = math.Max(50, math.Min(1000, v))
		p.rebuildBandpass()
	}
	params.getSquelch = func() float64 { return p.squelch }
	params.setSquelch = func(v float64) { p.squelch = v }
	return params
}

func (p *cwPipeline) Process(I, Q []float32) signals.AudioBlock {
	bi, _, total, inBand := p.common.run(I, Q)

	hiOut := append([]float32(nil), bi...)
	loOut := append([]float32(nil), bi...)
	p.hi.InPlace(hiOut)
	p.lo.InPlace(loOut)

	out := make([]float32, len(bi))
	for i := range out {
		out[i] = hiOut[i] - loOut[i]
	}
	p.agc.InPlace(out)

	snr := snrRatio(inBand, total)
	if float64(snr) < p.squelch {
		out = make([]float32, len(out))
	}

	return signals.AudioBlock{Left: out, Right: out, Stereo: false, SNR: snr}
}

func init() {
	Register(CW, newCWPipeline, func() Mode { return NewCW(200) })
}
