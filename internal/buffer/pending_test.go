package buffer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPendingRing_FIFOResolution is the §8 property test: with k reads of
// sizes s1...sk pending, resolutions happen in that order regardless of
// the arrival order of the data that satisfies them.
func TestPendingRing_FIFOResolution(t *testing.T) {
	p := NewPendingRing[int](8)

	sizes := []int{5, 1, 9, 3}
	tickets := make([]Ticket[int], len(sizes))
	for i, n := range sizes {
		tk, err := p.Add(n)
		require.NoError(t, err)
		tickets[i] = tk
	}

	order := make([]int, 0, len(sizes))
	for range sizes {
		ok := p.ResolveWith(func(n int) (int, error) {
			order = append(order, n)
			return n * 10, nil
		})
		require.True(t, ok)
	}
	assert.Equal(t, sizes, order)

	ctx := context.Background()
	for i, n := range sizes {
		v, err := tickets[i].Wait(ctx)
		require.NoError(t, err)
		assert.Equal(t, n*10, v)
	}
}

func TestPendingRing_TooManyReads(t *testing.T) {
	p := NewPendingRing[int](2)
	_, err := p.Add(1)
	require.NoError(t, err)
	_, err = p.Add(1)
	require.NoError(t, err)
	_, err = p.Add(1)
	assert.ErrorIs(t, err, ErrTooManyReads)
}

func TestPendingRing_CancelAllRejects(t *testing.T) {
	p := NewPendingRing[int](4)
	tk1, err := p.Add(1)
	require.NoError(t, err)
	tk2, err := p.Add(2)
	require.NoError(t, err)

	p.CancelAll()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err = tk1.Wait(ctx)
	assert.ErrorIs(t, err, ErrTransferCanceled)
	_, err = tk2.Wait(ctx)
	assert.ErrorIs(t, err, ErrTransferCanceled)

	_, err = p.Add(1)
	assert.ErrorIs(t, err, ErrTransferCanceled)
}
