package buffer

// Ring is a fixed-capacity FIFO of float32 samples with two independent
// read views: CopyTo, a non-destructive "latest N" snapshot, and MoveTo, a
// destructive FIFO consume. Store never blocks and never errors: on
// overflow the oldest samples are silently dropped.
//
// The two views use independent logical cursors. Store only ever resets
// the consume cursor when the unconsumed backlog would exceed the ring's
// capacity — at that point the data the consumer hadn't read yet has
// already been overwritten, so the cursor is advanced to the oldest
// sample still actually present.
type Ring struct {
	buf      []float32
	cap      int
	written  int64
	consumed int64
}

// NewRing creates a ring buffer with the given capacity.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		panic("buffer: ring capacity must be positive")
	}
	return &Ring{buf: make([]float32, capacity), cap: capacity}
}

// Cap returns the ring's fixed capacity.
func (r *Ring) Cap() int { return r.cap }

// Available reports how many samples are available to copyTo (the newest
// min(written, cap) samples).
func (r *Ring) Available() int {
	if r.written > int64(r.cap) {
		return r.cap
	}
	return int(r.written)
}

// Pending reports how many samples are available to MoveTo.
func (r *Ring) Pending() int {
	return int(r.written - r.consumed)
}

// Store appends xs to the ring. On overflow, the oldest samples — whether
// already stored or still unconsumed — are silently dropped.
func (r *Ring) Store(xs []float32) {
	for _, x := range xs {
		r.buf[r.written%int64(r.cap)] = x
		r.written++
	}
	if oldest := r.written - int64(r.cap); r.consumed < oldest {
		r.consumed = oldest
	}
}

// CopyTo copies the latest min(len(dst), Available()) samples into dst,
// right-aligned so the most recently stored sample ends up at
// dst[len(dst)-1]. It returns the number of samples copied and does not
// touch the consume cursor.
func (r *Ring) CopyTo(dst []float32) int {
	n := len(dst)
	if a := r.Available(); n > a {
		n = a
	}
	start := r.written - int64(n)
	off := len(dst) - n
	for j := 0; j < n; j++ {
		dst[off+j] = r.buf[(start+int64(j))%int64(r.cap)]
	}
	return n
}

// MoveTo consumes up to len(dst) of the oldest unconsumed samples, in
// arrival order, into dst. It returns the number of samples actually
// copied and advances the consume cursor by that amount.
func (r *Ring) MoveTo(dst []float32) int {
	n := len(dst)
	if p := r.Pending(); n > p {
		n = p
	}
	for j := 0; j < n; j++ {
		dst[j] = r.buf[(r.consumed+int64(j))%int64(r.cap)]
	}
	r.consumed += int64(n)
	return n
}
