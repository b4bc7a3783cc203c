// Command signalsdemo wires a signal source through a radio into a
// demodulator and a player sink — the illustrative example spec.md's
// scope deliberately excludes (acquisition backends, playback, and the
// CLI itself are named out of scope; only their contracts are
// specified). It either plays a synthetic WBFM broadcast test tone from
// a built-in generator, or decodes a captured stereo WAV file.
package main

import (
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/jtarrio/signals/mode"
	"github.com/jtarrio/signals/player"
	"github.com/jtarrio/signals/radio"
	"github.com/jtarrio/signals/receiver"
	"github.com/jtarrio/signals/source"
)

func main() {
	var (
		modeFlag   = pflag.StringP("mode", "m", "wbfm", "demodulation scheme: wbfm, nbfm, am, ssb, cw")
		stereo     = pflag.Bool("stereo", true, "WBFM: decode stereo")
		bandwidth  = pflag.Float64P("bandwidth", "b", 0, "scheme bandwidth in Hz (0 = scheme default)")
		upper      = pflag.Bool("usb", true, "SSB: upper sideband instead of lower")
		centerFreq = pflag.Int64P("freq", "f", 94600000, "center frequency in Hz")
		offset     = pflag.Float64("offset", 0, "frequency offset from center, in Hz")
		sampleRate = pflag.Int64P("rate", "r", 1024000, "RF sample rate, in Hz")
		wavPath    = pflag.String("wav", "", "decode a stereo WAV file (I=left, Q=right) instead of the built-in test tone")
		loop       = pflag.Bool("loop", true, "loop the WAV file (ignored without --wav)")
		backend    = pflag.String("backend", "null", "player backend: null, oto, portaudio")
		volume     = pflag.Float32P("volume", "v", 1, "initial output volume, 0..1")
		configFile = pflag.String("config", "", "optional YAML config file overriding these flags")
	)
	pflag.Parse()

	cfg := &config{
		Mode:       *modeFlag,
		Stereo:     *stereo,
		Bandwidth:  *bandwidth,
		Upper:      *upper,
		CenterFreq: *centerFreq,
		Offset:     *offset,
		SampleRate: *sampleRate,
		WavPath:    *wavPath,
		Loop:       *loop,
		Backend:    *backend,
		Volume:     *volume,
	}
	if *configFile != "" {
		if err := cfg.loadYAML(*configFile); err != nil {
			log.Fatal("loading config file", "err", err)
		}
	}

	m, err := cfg.buildMode()
	if err != nil {
		log.Fatal("building mode", "err", err)
	}

	var provider source.Provider
	if cfg.WavPath != "" {
		path, loop := cfg.WavPath, cfg.Loop
		provider = source.ProviderFunc(func() source.Source { return source.NewWavFile(path, loop) })
	} else {
		provider = source.ProviderFunc(func() source.Source {
			return source.NewPacingSource(wbfmTestTone(float64(cfg.SampleRate)), 8)
		})
	}

	demod := mode.NewDemodulator(float64(cfg.SampleRate), m)
	demod.SetVolume(cfg.Volume)
	demod.OnStereoStatus(func(locked bool) {
		log.Info("stereo status changed", "locked", locked)
	})

	sink, closeSink, err := buildSink(cfg.Backend)
	if err != nil {
		log.Fatal("building player sink", "backend", cfg.Backend, "err", err)
	}
	defer closeSink()
	demod.SetSink(sink)

	rcv := receiver.NewComposite(demod)

	r := radio.New(provider, rcv, cfg.SampleRate)
	r.OnEvent(func(e radio.Event) {
		if e.Type == radio.EventError {
			log.Error("radio event", "type", e.Type, "err", e.Err)
			return
		}
		log.Info("radio event", "type", e.Type)
	})

	r.SetFrequency(cfg.CenterFreq)
	demod.SetFrequencyOffset(cfg.Offset)
	r.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	log.Info("shutting down")
	r.Stop()
}

// buildSink constructs the selected player backend. "null" discards
// audio; "oto" and "portaudio" drive real output devices.
func buildSink(backend string) (player.Sink, func(), error) {
	switch backend {
	case "", "null":
		return player.NewNullSink(48000), func() {}, nil
	case "oto":
		s, err := player.NewOtoSink(48000)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	case "portaudio":
		s, err := player.NewPortAudioSink(48000, 2048)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	default:
		return nil, nil, os.ErrInvalid
	}
}

// wbfmTestTone returns a generator producing a synthetic stereo WBFM
// broadcast composite (440 Hz left tone, 660 Hz right tone) tuned
// exactly onto the receiver's center frequency, for exercising the
// pipeline without real acquisition hardware. Phase accumulates across
// calls so the signal stays continuous regardless of how the pacing
// source chunks it.
func wbfmTestTone(rfRate float64) source.SampleFunc {
	const (
		devHz       = 75000.0
		leftToneHz  = 440.0
		rightToneHz = 660.0
		pilotHz     = 19000.0
		subHz       = 38000.0
	)
	var phase float64
	return func(start int64, n int) (I, Q []float32) {
		I = make([]float32, n)
		Q = make([]float32, n)
		for i := 0; i < n; i++ {
			t := float64(start+int64(i)) / rfRate
			left := 0.7 * math.Sin(2*math.Pi*leftToneHz*t)
			right := 0.7 * math.Sin(2*math.Pi*rightToneHz*t)
			mono := (left + right) / 2
			diff := (left - right) / 2
			pilot := 0.1 * math.Sin(2*math.Pi*pilotHz*t)
			sub := diff * math.Sin(2*math.Pi*subHz*t)
			msg := mono + pilot + sub

			phase += 2 * math.Pi * devHz * msg / rfRate
			if phase > math.Pi {
				phase -= 2 * math.Pi
			} else if phase < -math.Pi {
				phase += 2 * math.Pi
			}
			I[i] = float32(math.Cos(phase))
			Q[i] = float32(math.Sin(phase))
		}
		return I, Q
	}
}
