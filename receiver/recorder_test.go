package receiver

import "testing"

func TestRecorder_CopiesBlocksDefensively(t *testing.T) {
	r := NewRecorder()
	r.SetSampleRate(48000)

	I := []float32{1, 2, 3}
	Q := []float32{4, 5, 6}
	r.Receive(I, Q, 1000, "meta")

	I[0] = 99
	if r.Blocks[0].I[0] != 1 {
		t.Fatalf("expected recorder to defensively copy I, got %v", r.Blocks[0].I)
	}
	if r.SampleRate != 48000 {
		t.Fatalf("SampleRate = %v, want 48000", r.SampleRate)
	}
	if r.Blocks[0].Frequency != 1000 || r.Blocks[0].Data != "meta" {
		t.Fatalf("unexpected block metadata: %+v", r.Blocks[0])
	}
}

func TestRecorder_ResetClearsBlocks(t *testing.T) {
	r := NewRecorder()
	r.Receive([]float32{1}, []float32{1}, 0, nil)
	r.Reset()
	if len(r.Blocks) != 0 {
		t.Fatalf("expected Blocks to be empty after Reset, got %d", len(r.Blocks))
	}
}
