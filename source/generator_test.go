package source

import (
	"context"
	"testing"
)

func TestGenerator_AdvancesPositionAcrossReads(t *testing.T) {
	var starts []int64
	gen := func(start int64, n int) (I, Q []float32) {
		starts = append(starts, start)
		return make([]float32, n), make([]float32, n)
	}

	g := NewGenerator(gen)
	ctx := context.Background()
	g.SetCenterFrequency(ctx, 100000)
	g.StartReceiving(ctx)

	blk, err := g.ReadSamples(ctx, 10)
	if err != nil {
		t.Fatalf("ReadSamples: %v", err)
	}
	if len(blk.I) != 10 || blk.Frequency != 100000 {
		t.Fatalf("unexpected block: %+v", blk)
	}
	if _, err := g.ReadSamples(ctx, 7); err != nil {
		t.Fatalf("ReadSamples: %v", err)
	}
	if len(starts) != 2 || starts[0] != 0 || starts[1] != 10 {
		t.Fatalf("expected contiguous starts [0 10], got %v", starts)
	}
}

func TestGenerator_StartReceivingResetsPosition(t *testing.T) {
	var starts []int64
	gen := func(start int64, n int) (I, Q []float32) {
		starts = append(starts, start)
		return make([]float32, n), make([]float32, n)
	}

	g := NewGenerator(gen)
	ctx := context.Background()
	g.StartReceiving(ctx)
	g.ReadSamples(ctx, 5)
	g.StartReceiving(ctx)
	g.ReadSamples(ctx, 5)

	if len(starts) != 2 || starts[0] != 0 || starts[1] != 0 {
		t.Fatalf("expected position reset to 0 on restart, got %v", starts)
	}
}

func TestGenerator_CloseCancelsReads(t *testing.T) {
	gen := func(start int64, n int) (I, Q []float32) {
		return make([]float32, n), make([]float32, n)
	}
	g := NewGenerator(gen)
	ctx := context.Background()
	g.StartReceiving(ctx)
	g.Close()

	_, err := g.ReadSamples(ctx, 5)
	if err != ErrTransferCanceled {
		t.Fatalf("expected ErrTransferCanceled, got %v", err)
	}
}
