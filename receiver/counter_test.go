package receiver

import "testing"

func TestCounter_FiresOneTickPerSecond(t *testing.T) {
	c := NewCounter(1)
	c.SetSampleRate(1000)
	ticks := 0
	c.OnTick = func() { ticks++ }

	c.Receive(make([]float32, 500), make([]float32, 500), 0, nil)
	if ticks != 0 {
		t.Fatalf("expected 0 ticks after half a second, got %d", ticks)
	}
	c.Receive(make([]float32, 500), make([]float32, 500), 0, nil)
	if ticks != 1 {
		t.Fatalf("expected 1 tick after a full second, got %d", ticks)
	}
	c.Receive(make([]float32, 2500), make([]float32, 2500), 0, nil)
	if ticks != 3 {
		t.Fatalf("expected 3 ticks total after 3.5 seconds, got %d", ticks)
	}
}

func TestCounter_ResetsOnSampleRateChange(t *testing.T) {
	c := NewCounter(2)
	c.SetSampleRate(1000)
	ticks := 0
	c.OnTick = func() { ticks++ }

	c.Receive(make([]float32, 400), make([]float32, 400), 0, nil)
	if ticks != 0 {
		t.Fatalf("expected 0 ticks, got %d", ticks)
	}

	c.SetSampleRate(2000)
	c.Receive(make([]float32, 900), make([]float32, 900), 0, nil)
	if ticks != 0 {
		t.Fatalf("expected counter to reset on rate change, got %d ticks", ticks)
	}
	c.Receive(make([]float32, 100), make([]float32, 100), 0, nil)
	if ticks != 1 {
		t.Fatalf("expected 1 tick after reaching the new threshold, got %d", ticks)
	}
}
