package radio

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jtarrio/signals"
	"github.com/jtarrio/signals/source"
)

// mockSource records every call it receives, in order, and returns
// whatever value was configured for set_sample_rate/set_center_frequency/
// set_parameter verbatim (spec §8's "radio command ordering" scenario).
type mockSource struct {
	mu    sync.Mutex
	calls []string
}

func newMockSource() *mockSource {
	return &mockSource{}
}

func (m *mockSource) record(s string) {
	m.mu.Lock()
	m.calls = append(m.calls, s)
	m.mu.Unlock()
}

func (m *mockSource) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

func (m *mockSource) SetSampleRate(ctx context.Context, hz int64) (int64, error) {
	m.record("setSampleRate")
	return hz, nil
}

func (m *mockSource) SetCenterFrequency(ctx context.Context, hz int64) (int64, error) {
	m.record("setCenterFrequency")
	return hz, nil
}

func (m *mockSource) SetParameter(ctx context.Context, key string, value any) (any, error) {
	m.record("setParameter:" + key)
	return value, nil
}

func (m *mockSource) StartReceiving(ctx context.Context) error {
	m.record("startReceiving")
	return nil
}

func (m *mockSource) ReadSamples(ctx context.Context, n int) (signals.IQBlock, error) {
	select {
	case <-ctx.Done():
		return signals.IQBlock{}, ctx.Err()
	case <-time.After(time.Hour):
		return signals.IQBlock{}, nil
	}
}

func (m *mockSource) Close() error {
	m.record("close")
	return nil
}

type nullReceiver struct {
	mu         sync.Mutex
	sampleRate float64
	blocks     int
}

func (n *nullReceiver) SetSampleRate(r float64) {
	n.mu.Lock()
	n.sampleRate = r
	n.mu.Unlock()
}

func (n *nullReceiver) Receive(I, Q []float32, freq int64, data any) {
	n.mu.Lock()
	n.blocks++
	n.mu.Unlock()
}

func TestRadio_CommandOrdering(t *testing.T) {
	mock := newMockSource()
	provider := source.ProviderFunc(func() source.Source { return mock })
	rcv := &nullReceiver{}
	r := New(provider, rcv, 48000)

	r.SetFrequency(1000000)
	r.SetParameter("gain", 3)
	r.Start()

	if got := r.GetFrequency(); got != 1000000 {
		t.Fatalf("GetFrequency() = %d, want 1000000", got)
	}
	if got := r.GetParameter("gain"); got != 3 {
		t.Fatalf("GetParameter(gain) = %v, want 3", got)
	}
	if r.State() != Playing {
		t.Fatalf("expected Playing, got %v", r.State())
	}

	calls := mock.Calls()
	wantPrefix := []string{"setSampleRate", "setCenterFrequency", "setParameter:gain", "startReceiving"}
	if len(calls) < len(wantPrefix) {
		t.Fatalf("expected at least %d calls, got %v", len(wantPrefix), calls)
	}
	for i, want := range wantPrefix {
		if calls[i] != want {
			t.Fatalf("call %d = %q, want %q (full: %v)", i, calls[i], want, calls)
		}
	}

	r.Stop()
	if r.State() != Off {
		t.Fatalf("expected Off after Stop, got %v", r.State())
	}
}

func TestRadio_StopSetFrequencyStartLeavesPlayingAtNewFrequency(t *testing.T) {
	mock := newMockSource()
	provider := source.ProviderFunc(func() source.Source { return mock })
	rcv := &nullReceiver{}
	r := New(provider, rcv, 48000)

	r.Start()
	r.Stop()
	r.SetFrequency(7654321)
	r.Start()

	if r.State() != Playing {
		t.Fatalf("expected Playing, got %v", r.State())
	}
	if got := r.GetFrequency(); got != 7654321 {
		t.Fatalf("GetFrequency() = %d, want 7654321", got)
	}
	r.Stop()
}

func TestRadio_StartEmitsStartedEvent(t *testing.T) {
	mock := newMockSource()
	provider := source.ProviderFunc(func() source.Source { return mock })
	rcv := &nullReceiver{}
	r := New(provider, rcv, 48000)

	events := make(chan Event, 8)
	r.OnEvent(func(e Event) { events <- e })

	r.Start()
	select {
	case e := <-events:
		if e.Type != EventStarted {
			t.Fatalf("expected EventStarted, got %v", e.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for started event")
	}

	r.Stop()
	select {
	case e := <-events:
		if e.Type != EventStopped {
			t.Fatalf("expected EventStopped, got %v", e.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for stopped event")
	}
}

func TestRadio_DoubleStartIsNoop(t *testing.T) {
	mock := newMockSource()
	provider := source.ProviderFunc(func() source.Source { return mock })
	rcv := &nullReceiver{}
	r := New(provider, rcv, 48000)

	r.Start()
	r.Start()
	calls := mock.Calls()
	n := 0
	for _, c := range calls {
		if c == "startReceiving" {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("expected exactly 1 startReceiving call, got %d (calls: %v)", n, calls)
	}
	r.Stop()
}
