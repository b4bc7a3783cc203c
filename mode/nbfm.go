package mode

import (
	"github.com/jtarrio/signals"
	"github.com/jtarrio/signals/internal/dsp/coeffs"
	"github.com/jtarrio/signals/internal/dsp/filter"
	"github.com/jtarrio/signals/internal/dsp/primitive"
	"github.com/jtarrio/signals/internal/dsp/resample"
)

const nbfmIntermediateRate = 96000

type nbfmPipeline struct {
	common    *commonStage
	detector  *primitive.FMDetector
	agc       *filter.AGC
	toAudio   *resample.Real
	bandwidth float64
	squelch   float64
}

func newNBFMPipeline(sampleRate float64, m Mode) pipeline {
	p := &nbfmPipeline{bandwidth: m.Bandwidth}
	p.common = newCommonStage(sampleRate, nbfmIntermediateRate, m.Bandwidth)
	p.detector = primitive.NewFMDetector(nbfmIntermediateRate, m.MaxDeviation())
	p.agc = filter.NewAGC(nbfmIntermediateRate, 10)
	audioTaps := coeffs.LowPass(nbfmIntermediateRate, audioRate/2*0.9, 65, 1)
	p.toAudio = resample.NewReal(int(nbfmIntermediateRate/audioRate), filter.NewFIR(audioTaps))
	return p
}

func (p *nbfmPipeline) SetFrequencyOffset(hz float64) { p.common.setFrequencyOffset(hz) }

func (p *nbfmPipeline) Parameters() Parameters {
	params := newParameters()
	params.HasBandwidth = true
	params.HasSquelch = true
	params.getBandwidth = func() float64 { return p.bandwidth }
	params.setBandwidth = func(v float64) {
		p.bandwidth = v
		p.common.setBandwidth(v)
		p.detector = primitive.NewFMDetector(nbfmIntermediateRate, v/2)
	}
	params.getSquelch = func() float64 { return p.squelch }
	params.setSquelch = func(v float64) { p.squelch = v }
	return params
}

func (p *nbfmPipeline) Process(I, Q []float32) signals.AudioBlock {
	bi, bq, total, inBand := p.common.run(I, Q)

	audio := make([]float32, len(bi))
	p.detector.Process(bi, bq, audio)
	p.agc.InPlace(audio)
	out := p.toAudio.Process(audio)

	snr := snrRatio(inBand, total)
	if float64(snr) < p.squelch {
		out = make([]float32, len(out))
	}

	return signals.AudioBlock{Left: out, Right: out, Stereo: false, SNR: snr}
}

func init() {
	Register(NBFM, newNBFMPipeline, func() Mode { return NewNBFM(2500) })
}
