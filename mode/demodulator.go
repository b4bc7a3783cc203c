package mode

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/jtarrio/signals"
	"github.com/jtarrio/signals/internal/dsp/coeffs"
	"github.com/jtarrio/signals/internal/dsp/filter"
	"github.com/jtarrio/signals/internal/dsp/resample"
	"github.com/jtarrio/signals/player"
)

// Demodulator is the public per-radio demodulator surface (spec §6):
// setMode/getMode, setVolume/getVolume, setFrequencyOffset/
// getFrequencyOffset, and the glitch-free expectFrequencyAndSetOffset
// retune. It satisfies the sample-receiver contract (SetSampleRate,
// Receive) so it can be registered directly with a radio.
type Demodulator struct {
	sampleRate float64
	mode       Mode
	pipe       pipeline

	volume float32

	freqOffset float64

	pendingCenter bool
	expectCenter  int64
	pendingOffset float64

	stereoLocked bool
	onAudio      func(signals.AudioBlock)
	onStereoFlip func(bool)

	sink           player.Sink
	sinkRatio      int
	sinkDecimLeft  *resample.Real
	sinkDecimRight *resample.Real
}

// NewDemodulator builds a demodulator for the given RF sample rate and
// initial mode.
func NewDemodulator(sampleRate float64, m Mode) *Demodulator {
	return &Demodulator{
		sampleRate: sampleRate,
		mode:       m,
		pipe:       buildPipeline(sampleRate, m),
		volume:     1,
	}
}

// SetMode switches the active scheme/parameters, rebuilding the pipeline;
// the frequency offset and volume carry over.
func (d *Demodulator) SetMode(m Mode) {
	d.mode = m
	d.pipe = buildPipeline(d.sampleRate, m)
	d.pipe.SetFrequencyOffset(d.freqOffset)
}

// Mode returns the current mode.
func (d *Demodulator) Mode() Mode { return d.mode }

// SetVolume sets the output volume, clamped to [0,1].
func (d *Demodulator) SetVolume(v float32) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	d.volume = v
}

// GetVolume returns the current output volume.
func (d *Demodulator) GetVolume() float32 { return d.volume }

// SetFrequencyOffset immediately retunes the signal of interest within
// the RF passband.
func (d *Demodulator) SetFrequencyOffset(hz float64) {
	d.freqOffset = hz
	d.pendingCenter = false
	d.pipe.SetFrequencyOffset(hz)
}

// GetFrequencyOffset returns the current frequency offset.
func (d *Demodulator) GetFrequencyOffset() float64 { return d.freqOffset }

// ExpectFrequencyAndSetOffset defers the offset change until the first
// subsequent block whose Frequency field equals newCenterHz, avoiding an
// audible glitch from applying the new offset against stale-center
// samples still in flight from the source (spec §6).
func (d *Demodulator) ExpectFrequencyAndSetOffset(newCenterHz int64, newOffsetHz float64) {
	d.pendingCenter = true
	d.expectCenter = newCenterHz
	d.pendingOffset = newOffsetHz
}

// Parameters returns the active scheme's capability-uniform view.
func (d *Demodulator) Parameters() Parameters { return d.pipe.Parameters() }

// StereoLocked reports whether the most recent block demodulated with a
// pilot lock (only meaningful for WBFM-stereo).
func (d *Demodulator) StereoLocked() bool { return d.stereoLocked }

// OnStereoStatus registers a callback invoked whenever the stereo-lock
// flag changes value (spec §4.9's stereo-status event).
func (d *Demodulator) OnStereoStatus(fn func(bool)) { d.onStereoFlip = fn }

// SetSampleRate implements half of the sample-receiver contract (spec
// §4.10); it rebuilds the pipeline for the new RF rate.
func (d *Demodulator) SetSampleRate(r float64) {
	if r == d.sampleRate {
		return
	}
	d.sampleRate = r
	d.pipe = buildPipeline(r, d.mode)
	d.pipe.SetFrequencyOffset(d.freqOffset)
}

// Receive implements the sample-receiver contract: it applies any pending
// glitch-free retune, runs the pipeline, scales by volume, and reports
// the resulting audio block via onAudio if set.
func (d *Demodulator) Receive(I, Q []float32, freq int64, data any) {
	if d.pendingCenter && freq == d.expectCenter {
		d.freqOffset = d.pendingOffset
		d.pendingCenter = false
		d.pipe.SetFrequencyOffset(d.freqOffset)
	}

	wi := append([]float32(nil), I...)
	wq := append([]float32(nil), Q...)

	audio := d.pipe.Process(wi, wq)
	scaleAudio(audio, d.volume)

	if audio.Stereo != d.stereoLocked {
		d.stereoLocked = audio.Stereo
		if d.onStereoFlip != nil {
			d.onStereoFlip(d.stereoLocked)
		}
	}

	d.playToSink(audio)

	if d.onAudio != nil {
		d.onAudio(audio)
	}
}

// OnAudio registers a callback invoked with each demodulated audio block.
func (d *Demodulator) OnAudio(fn func(signals.AudioBlock)) { d.onAudio = fn }

// SetSink wires a player.Sink to play every demodulated block through
// (spec §6). The demodulator always produces audio at audioRate; if the
// sink declares a different rate that divides it evenly, an internal
// decimator bridges the two. Otherwise the mismatch is logged once and
// audio is played at audioRate regardless.
func (d *Demodulator) SetSink(s player.Sink) {
	d.sink = s
	d.sinkDecimLeft = nil
	d.sinkDecimRight = nil
	d.sinkRatio = 1
	if s == nil {
		return
	}
	ratio := audioRate / s.SampleRate()
	rounded := math.Round(ratio)
	if rounded < 1 || math.Abs(ratio-rounded) > 1e-6 {
		log.Warn("player sink rate does not evenly divide the demodulator's audio rate; playing unresampled",
			"audioRate", audioRate, "sinkRate", s.SampleRate())
		return
	}
	d.sinkRatio = int(rounded)
	if d.sinkRatio > 1 {
		cutoff := s.SampleRate() / 2 * 0.9
		kernel := coeffs.LowPass(audioRate, cutoff, 129, 1)
		d.sinkDecimLeft = resample.NewReal(d.sinkRatio, filter.NewFIR(kernel))
		d.sinkDecimRight = resample.NewReal(d.sinkRatio, filter.NewFIR(kernel))
	}
}

// playToSink resamples, if needed, and plays a into the wired sink.
func (d *Demodulator) playToSink(a signals.AudioBlock) {
	if d.sink == nil {
		return
	}
	left, right := a.Left, a.Right
	if right == nil {
		right = left
	}
	if d.sinkRatio > 1 {
		left = d.sinkDecimLeft.Process(append([]float32(nil), left...))
		right = d.sinkDecimRight.Process(append([]float32(nil), right...))
	}
	d.sink.Play(left, right)
}

func scaleAudio(a signals.AudioBlock, gain float32) {
	for i := range a.Left {
		a.Left[i] *= gain
	}
	for i := range a.Right {
		a.Right[i] *= gain
	}
}
