package mode

import (
	"github.com/jtarrio/signals"
	"github.com/jtarrio/signals/internal/dsp/coeffs"
	"github.com/jtarrio/signals/internal/dsp/filter"
	"github.com/jtarrio/signals/internal/dsp/primitive"
	"github.com/jtarrio/signals/internal/dsp/resample"
)

const amIntermediateRate = 48000

type amPipeline struct {
	common    *commonStage
	detector  *primitive.AMDetector
	agc       *filter.AGC
	toAudio   *resample.Real
	bandwidth float64
	squelch   float64
}

func newAMPipeline(sampleRate float64, m Mode) pipeline {
	p := &amPipeline{bandwidth: m.Bandwidth}
	p.common = newCommonStage(sampleRate, amIntermediateRate, m.Bandwidth)
	p.detector = primitive.NewAMDetector(amIntermediateRate)
	p.agc = filter.NewAGC(amIntermediateRate, 10)
	audioTaps := coeffs.LowPass(amIntermediateRate, audioRate/2*0.9, 65, 1)
	p.toAudio = resample.NewReal(int(amIntermediateRate/audioRate), filter.NewFIR(audioTaps))
	return p
}

func (p *amPipeline) SetFrequencyOffset(hz float64) { p.common.setFrequencyOffset(hz) }

func (p *amPipeline) Parameters() Parameters {
	params := newParameters()
	params.HasBandwidth = true
	params.HasSquelch = true
	params.getBandwidth = func() float64 { return p.bandwidth }
	params.setBandwidth = func(v float64) {
		p.bandwidth = v
		p.common.setBandwidth(v)
	}
	params.getSquelch = func() float64 { return p.squelch }
	params.setSquelch = func(v float64) { p.squelch = v }
	return params
}

func (p *amPipeline) Process(I, Q []float32) signals.AudioBlock {
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
	Register(AM, newAMPipeline, func() Mode { return NewAM(10000) })
}
