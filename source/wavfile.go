package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jtarrio/signals"
)

// WavFile is a pull-based SignalSource backed by a stereo WAV file, I on
// the left channel and Q on the right — a file-backed implementation of
// the SignalSource contract built to exercise the radio against recorded
// captures without USB/network hardware (not a generalized acquisition
// subsystem).
type WavFile struct {
	mu         sync.Mutex
	path       string
	sampleRate int64
	centerFreq int64
	params     signals.ParameterMap

	I, Q   []float32
	pos    int
	loop   bool
	closed bool
}

// NewWavFile creates a WAV-file source. If loop is true, ReadSamples
// wraps around to the start of the file instead of returning a short
// final block.
func NewWavFile(path string, loop bool) *WavFile {
	return &WavFile{path: path, loop: loop, params: signals.ParameterMap{}}
}

// SetSampleRate echoes back the requested rate; the WAV file's own
// encoded sample rate is informational only once decoded.
func (w *WavFile) SetSampleRate(ctx context.Context, hz int64) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sampleRate = hz
	return hz, nil
}

// SetCenterFrequency records the tuned frequency.
func (w *WavFile) SetCenterFrequency(ctx context.Context, hz int64) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.centerFreq = hz
	return hz, nil
}

// SetParameter stores key/value and echoes it back.
func (w *WavFile) SetParameter(ctx context.Context, key string, value any) (any, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.params[key] = value
	return value, nil
}

// StartReceiving decodes the entire WAV file into memory as I/Q pairs.
func (w *WavFile) StartReceiving(ctx context.Context) error {
	f, err := os.Open(w.path)
	if err != nil {
		return fmt.Errorf("source: opening WAV file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return fmt.Errorf("source: %s is not a valid WAV file", w.path)
	}
	if err := decoder.FwdToPCM(); err != nil {
		return fmt.Errorf("source: seeking to PCM data: %w", err)
	}
	if decoder.NumChans != 2 {
		return fmt.Errorf("source: expected a stereo WAV (I=left, Q=right), got %d channels", decoder.NumChans)
	}

	var I, Q []float32
	buf := &audio.IntBuffer{Format: decoder.Format(), Data: make([]int, 8192)}
	fullScale := float32(int(1) << uint(decoder.BitDepth-1))
	for {
		n, err := decoder.PCMBuffer(buf)
		if n > 0 {
			for i := 0; i+1 < n; i += 2 {
				I = append(I, float32(buf.Data[i])/fullScale)
				Q = append(Q, float32(buf.Data[i+1])/fullScale)
			}
		}
		if err == io.EOF || n == 0 {
			break
		}
		if err != nil {
			return fmt.Errorf("source: reading WAV PCM data: %w", err)
		}
	}

	w.mu.Lock()
	w.I, w.Q = I, Q
	w.pos = 0
	w.closed = false
	w.mu.Unlock()
	return nil
}

// ReadSamples returns the next n samples from the decoded file, looping
// or returning a short final block per NewWavFile's loop flag.
func (w *WavFile) ReadSamples(ctx context.Context, n int) (signals.IQBlock, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return signals.IQBlock{}, ErrTransferCanceled
	}
	if len(w.I) == 0 {
		return signals.IQBlock{I: make([]float32, 0), Q: make([]float32, 0), Frequency: w.centerFreq}, nil
	}

	I := make([]float32, 0, n)
	Q := make([]float32, 0, n)
	for len(I) < n {
		remaining := len(w.I) - w.pos
		if remaining <= 0 {
			if !w.loop {
				break
			}
			w.pos = 0
			remaining = len(w.I)
		}
		take := n - len(I)
		if take > remaining {
			take = remaining
		}
		I = append(I, w.I[w.pos:w.pos+take]...)
		Q = append(Q, w.Q[w.pos:w.pos+take]...)
		w.pos += take
	}
	return signals.IQBlock{I: I, Q: Q, Frequency: w.centerFreq}, nil
}

// Close marks the source closed.
func (w *WavFile) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}
