package player

import "testing"

func TestNullSink_CountsPlayCalls(t *testing.T) {
	s := NewNullSink(48000)
	if s.SampleRate() != 48000 {
		t.Fatalf("SampleRate() = %v, want 48000", s.SampleRate())
	}
	s.Play([]float32{1, 2}, []float32{1, 2})
	s.Play([]float32{1, 2}, []float32{1, 2})
	if s.PlayCount != 2 {
		t.Fatalf("PlayCount = %d, want 2", s.PlayCount)
	}
}

func TestNullSink_VolumeClamped(t *testing.T) {
	s := NewNullSink(48000)
	s.SetVolume(2)
	if s.GetVolume() != 1 {
		t.Fatalf("GetVolume() = %v, want 1 (clamped)", s.GetVolume())
	}
	s.SetVolume(-1)
	if s.GetVolume() != 0 {
		t.Fatalf("GetVolume() = %v, want 0 (clamped)", s.GetVolume())
	}
}
