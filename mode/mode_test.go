package mode

import (
	"math"
	"testing"

	"github.com/jtarrio/signals"
	"github.com/jtarrio/signals/mode/testsignal"
)

func fftPeakFraction(x []float32, sampleRate, freqHz float64) float64 {
	n := len(x)
	var re, im float64
	theta := 2 * math.Pi * freqHz / sampleRate
	for i, v := range x {
		re += float64(v) * math.Cos(theta*float64(i))
		im -= float64(v) * math.Sin(theta*float64(i))
	}
	mag := math.Hypot(re, im) / float64(n)
	return mag
}

func runDemod(d *Demodulator, I, Q []float32, blockSamples int) signals.AudioBlock {
	var last signals.AudioBlock
	d.OnAudio(func(a signals.AudioBlock) { last = a })
	for i := 0; i+blockSamples <= len(I); i += blockSamples {
		d.Receive(I[i:i+blockSamples], Q[i:i+blockSamples], 0, nil)
	}
	return last
}

func TestAM_810kHzToneRoundTrip(t *testing.T) {
	const rfRate = 2400000.0
	const n = 240000
	msg := testsignal.Tone(rfRate, 600, 0.5, n)
	// center frequency 810000 is tuned exactly onto the carrier, so the
	// captured I/Q already has the carrier at DC; offset stays 0.
	I, Q := testsignal.ModulateAM(rfRate, 0, 0.8, msg)

	d := NewDemodulator(rfRate, NewAM(10000))
	d.SetFrequencyOffset(0)
	audio := runDemod(d, I, Q, n)

	if len(audio.Left) == 0 {
		t.Fatalf("expected non-empty audio output")
	}
	peak := fftPeakFraction(audio.Left, audioRate, 600)
	if peak < 0.1 {
		t.Fatalf("expected a 600Hz peak in AM-demodulated audio, got magnitude %v", peak)
	}
}

func TestFM_DiscriminatorLinearity(t *testing.T) {
	const rfRate = 960000.0
	const n = 96000
	msg := make([]float32, n)
	for i := range msg {
		msg[i] = 0.5
	}
	I, Q := testsignal.ModulateFM(rfRate, 0, 20000, msg)

	d := NewDemodulator(rfRate, NewNBFM(25000))
	d.SetFrequencyOffset(0)
	audio := runDemod(d, I, Q, n)

	settle := len(audio.Left) / 2
	var sum float64
	for i := settle; i < len(audio.Left); i++ {
		sum += float64(audio.Left[i])
	}
	mean := sum / float64(len(audio.Left)-settle)
	if math.Abs(mean-0.5) > 0.3 {
		t.Fatalf("expected discriminator DC level near 0.5, got %v", mean)
	}
}

func TestWBFM_StereoLocksOnCleanMultiplex(t *testing.T) {
	const rfRate = 2400000.0
	const n = 240000
	left := testsignal.Tone(rfRate, 1500, 1, n)
	right := testsignal.Tone(rfRate, 2250, 1, n)
	multiplex := testsignal.WBFMMultiplex(rfRate, left, right)
	I, Q := testsignal.ModulateFM(rfRate, 0, 75000, multiplex)

	d := NewDemodulator(rfRate, NewWBFM(true))
	d.SetFrequencyOffset(0)
	audio := runDemod(d, I, Q, n)

	if !audio.Stereo {
		t.Fatalf("expected stereo lock on a clean multiplex")
	}
}

func TestSSB_RejectsOppositeSideband(t *testing.T) {
	const rfRate = 192000.0
	const n = 96000

	I, Q := testsignal.ModulateSSB(rfRate, 0, 1500, 0.5, true, n)
	d := NewDemodulator(rfRate, NewSSB(3000, true))
	d.SetFrequencyOffset(0)
	usbAudio := runDemod(d, I, Q, n)

	I2, Q2 := testsignal.ModulateSSB(rfRate, 0, 1500, 0.5, false, n)
	d2 := NewDemodulator(rfRate, NewSSB(3000, true))
	d2.SetFrequencyOffset(0)
	lsbAudio := runDemod(d2, I2, Q2, n)

	usbPeak := rmsAudio(usbAudio.Left)
	lsbPeak := rmsAudio(lsbAudio.Left)
	if usbPeak <= lsbPeak {
		t.Fatalf("expected USB detector to favor the matching sideband: usb=%v lsb=%v", usbPeak, lsbPeak)
	}
}

func TestCW_ZeroBeat(t *testing.T) {
	const rfRate = 48000.0
	const n = 48000

	// A carrier exactly at the tuned frequency (offset 0) beats at
	// cwBeatFrequency.
	I, Q := testsignal.ModulateSSB(rfRate, 0, 0, 0.5, true, n)
	d := NewDemodulator(rfRate, NewCW(200))
	d.SetFrequencyOffset(0)
	audio := runDemod(d, I, Q, n)

	peak := fftPeakFraction(audio.Left, audioRate, cwBeatFrequency)
	if peak < 0.05 {
		t.Fatalf("expected an audible beat tone near %vHz, got magnitude %v", cwBeatFrequency, peak)
	}
}

func rmsAudio(x []float32) float64 {
	var sum float64
	for _, v := range x {
		sum += float64(v) * float64(v)
	}
	if len(x) == 0 {
		return 0
	}
	return math.Sqrt(sum / float64(len(x)))
}
