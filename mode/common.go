package mode

import (
	"math"

	"github.com/jtarrio/signals/internal/dsp/coeffs"
	"github.com/jtarrio/signals/internal/dsp/filter"
	"github.com/jtarrio/signals/internal/dsp/resample"
)

// audioRate is the final output sample rate every scheme decimates down
// to (spec §4.7 step 5).
const audioRate = 48000.0

// commonStage runs the frequency-shift/decimate/band-limit steps shared
// by every scheme's pipeline (spec §4.7 steps 1-3), and the in-band power
// bookkeeping step 7 needs for its SNR estimate.
type commonStage struct {
	rfRate  float64
	midRate float64

	shifter   *filter.Shifter
	decimate  *resample.Complex
	bandwidth float64
	bandI     filter.Filter
	bandQ     filter.Filter
}

// newCommonStage builds the shared front end for a scheme whose
// passband-of-interest, after decimation to midRate, is bandwidthHz wide.
func newCommonStage(rfRate, midRate, bandwidthHz float64) *commonStage {
	ratio := int(math.Round(rfRate / midRate))
	if ratio < 1 {
		ratio = 1
	}
	decimCutoff := midRate / 2 * 0.9
	decimTaps := coeffs.LowPass(rfRate, decimCutoff, 129, 1)

	c := &commonStage{
		rfRate:   rfRate,
		midRate:  midRate,
		shifter:  filter.NewShifter(rfRate, 0),
		decimate: resample.NewComplex(ratio, filter.NewFIR(decimTaps)),
	}
	c.setBandwidth(bandwidthHz)
	return c
}

func (c *commonStage) setFrequencyOffset(hz float64) {
	c.shifter.SetFrequency(-hz)
}

// setBandwidth rebuilds the channel band-limit filter for a new
// passband width, in Hz.
func (c *commonStage) setBandwidth(bwHz float64) {
	if bwHz <= 0 {
		bwHz = c.midRate / 2
	}
	bandCutoff := bwHz / 2
	if bandCutoff >= c.midRate/2 {
		bandCutoff = c.midRate / 2 * 0.95
	}
	bandTaps := coeffs.LowPass(c.midRate, bandCutoff, 129, 1)
	c.bandwidth = bwHz
	c.bandI = filter.NewFIR(bandTaps)
	c.bandQ = filter.NewFIR(bandTaps)
}

// run shifts, decimates, and band-limits I/Q, returning the band-limited
// result along with the total and in-band power used for the SNR
// estimate of spec §4.7 step 7.
func (c *commonStage) run(I, Q []float32) (bi, bq []float32, totalPower, inBandPower float64) {
	c.shifter.InPlace(I, Q)
	di, dq := c.decimate.Process(I, Q)

	totalPower = power(di, dq)

	bi = append([]float32(nil), di...)
	bq = append([]float32(nil), dq...)
	c.bandI.InPlace(bi)
	c.bandQ.InPlace(bq)
	inBandPower = power(bi, bq)
	return bi, bq, totalPower, inBandPower
}

func power(I, Q []float32) float64 {
	if len(I) == 0 {
		return 0
	}
	var sum float64
	for i := range I {
		sum += float64(I[i])*float64(I[i]) + float64(Q[i])*float64(Q[i])
	}
	return sum / float64(len(I))
}

// snrRatio computes the clamped-positive in-band/total power ratio of
// spec §4.7 step 7.
func snrRatio(inBand, total float64) float32 {
	if total <= 0 {
		return 0
	}
	r := inBand / total
	if r < 0 {
		r = 0
	}
	return float32(r)
}
