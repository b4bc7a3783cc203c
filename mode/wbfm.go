package mode

import (
	"github.com/jtarrio/signals"
	"github.com/jtarrio/signals/internal/dsp/coeffs"
	"github.com/jtarrio/signals/internal/dsp/filter"
	"github.com/jtarrio/signals/internal/dsp/primitive"
	"github.com/jtarrio/signals/internal/dsp/resample"
)

const (
	wbfmIntermediateRate = 336000
	wbfmMaxDeviation     = 75000
	wbfmAudioBandwidth   = 15000
	wbfmPilotTolerance   = 10
	wbfmDeemphasisTau    = 50e-6
)

type wbfmPipeline struct {
	common   *commonStage
	detector *primitive.FMDetector
	stereo   *primitive.StereoSeparator

	monoLP filter.Filter
	diffLP filter.Filter
	toMono *resample.Real
	toDiff *resample.Real

	deemphL *filter.OnePole
	deemphR *filter.OnePole

	stereoWanted bool
	tau          float64
	squelch      float64
}

func newWBFMPipeline(sampleRate float64, m Mode) pipeline {
	p := &wbfmPipeline{stereoWanted: m.Stereo, tau: wbfmDeemphasisTau}
	p.common = newCommonStage(sampleRate, wbfmIntermediateRate, 150000)
	p.detector = primitive.NewFMDetector(wbfmIntermediateRate, wbfmMaxDeviation)
	p.stereo = primitive.NewStereoSeparator(wbfmIntermediateRate, wbfmPilotTolerance)

	audioCutoff := wbfmAudioBandwidth * 0.9
	monoTaps := coeffs.LowPass(wbfmIntermediateRate, audioCutoff, 129, 1)
	diffTaps := coeffs.LowPass(wbfmIntermediateRate, audioCutoff, 129, 1)
	p.monoLP = filter.NewFIR(monoTaps)
	p.diffLP = filter.NewFIR(diffTaps)

	ratio := int(wbfmIntermediateRate / audioRate)
	decimTaps := coeffs.LowPass(wbfmIntermediateRate, audioRate/2*0.9, 65, 1)
	p.toMono = resample.NewReal(ratio, filter.NewFIR(decimTaps))
	p.toDiff = resample.NewReal(ratio, filter.NewFIR(decimTaps))

	p.rebuildDeemphasis()
	return p
}

// rebuildDeemphasis rebuilds the left/right de-emphasis filters for the
// current tau (spec §4.7: 50us default, 75us for the US/Korea variant).
func (p *wbfmPipeline) rebuildDeemphasis() {
	p.deemphL = filter.NewDeemphasis(audioRate, p.tau)
	p.deemphR = filter.NewDeemphasis(audioRate, p.tau)
}

func (p *wbfmPipeline) SetFrequencyOffset(hz float64) { p.common.setFrequencyOffset(hz) }

func (p *wbfmPipeline) Parameters() Parameters {
	params := newParameters()
	params.HasStereo = true
	params.getStereo = func() bool { return p.stereoWanted }
	params.setStereo = func(v bool) { p.stereoWanted = v }
	params.HasSquelch = true
	params.getSquelch = func() float64 { return p.squelch }
	params.setSquelch = func(v float64) { p.squelch = v }
	params.HasDeemphasis = true
	params.getDeemphasisTau = func() float64 { return p.tau }
	params.setDeemphasisTau = func(v float64) {
		p.tau = v
		p.rebuildDeemphasis()
	}
	return params
}

func (p *wbfmPipeline) Process(I, Q []float32) signals.AudioBlock {
	bi, bq, total, inBand := p.common.run(I, Q)

	composite := make([]float32, len(bi))
	p.detector.Process(bi, bq, composite)

	snr := snrRatio(inBand, total)

	if !p.stereoWanted {
		mono := append([]float32(nil), composite...)
		p.monoLP.InPlace(mono)
		out := p.toMono.Process(mono)
		p.deemphL.InPlace(out)
		if float64(snr) < p.squelch {
			out = make([]float32, len(out))
		}
		return signals.AudioBlock{Left: out, Right: out, Stereo: false, SNR: snr}
	}

	diff := make([]float32, len(composite))
	found := p.stereo.Process(composite, diff)

	mono := append([]float32(nil), composite...)
	p.monoLP.InPlace(mono)
	p.diffLP.InPlace(diff)

	monoOut := p.toMono.Process(mono)
	diffOut := p.toDiff.Process(diff)

	n := len(monoOut)
	if len(diffOut) < n {
		n = len(diffOut)
	}
	left := make([]float32, n)
	right := make([]float32, n)
	for i := 0; i < n; i++ {
		d := diffOut[i]
		if !found {
			d = 0
		}
		left[i] = monoOut[i] + d
		right[i] = monoOut[i] - d
	}
	p.deemphL.InPlace(left)
	p.deemphR.InPlace(right)

	if float64(snr) < p.squelch {
		left = make([]float32, n)
		right = make([]float32, n)
	}

	return signals.AudioBlock{Left: left, Right: right, Stereo: found, SNR: snr}
}

func init() {
	Register(WBFM, newWBFMPipeline, func() Mode { return NewWBFM(true) })
}
