package source

import (
	"context"
	"testing"
	"time"
)

func TestPushSource_DistributesPushAcrossPendingReads(t *testing.T) {
	s := NewPushSource(65536, 8)
	ctx := context.Background()

	type result struct {
		n   int
		err error
	}
	results := make(chan result, 3)
	sizes := []int{5, 10, 3}
	for _, n := range sizes {
		n := n
		go func() {
			blk, err := s.ReadSamples(ctx, n)
			results <- result{n: len(blk.I), err: err}
		}()
	}
	time.Sleep(20 * time.Millisecond)

	I := make([]float32, 18)
	Q := make([]float32, 18)
	for i := range I {
		I[i] = float32(i)
	}
	s.PushSamples(I, Q, nil)

	got := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		r := <-results
		if r.err != nil {
			t.Fatalf("unexpected error: %v", r.err)
		}
		got = append(got, r.n)
	}

	total := 0
	for _, n := range got {
		total += n
	}
	if total != 18 {
		t.Fatalf("expected all 18 pushed samples to be distributed, got %d", total)
	}
}

func TestPushSource_CloseCancelsPending(t *testing.T) {
	s := NewPushSource(1024, 8)
	ctx := context.Background()

	errCh := make(chan error, 1)
	go func() {
		_, err := s.ReadSamples(ctx, 100)
		errCh <- err
	}()
	time.Sleep(10 * time.Millisecond)
	s.Close()

	err := <-errCh
	if err != ErrTransferCanceled {
		t.Fatalf("expected ErrTransferCanceled, got %v", err)
	}
}

func TestPushSource_TooManyReads(t *testing.T) {
	s := NewPushSource(1024, 1)
	ctx := context.Background()

	go s.ReadSamples(ctx, 10)
	time.Sleep(10 * time.Millisecond)

	_, err := s.ReadSamples(ctx, 10)
	if err != ErrTooManyReads {
		t.Fatalf("expected ErrTooManyReads, got %v", err)
	}
}
