package filter

// FIR is a time-domain finite-impulse-response filter. It maintains
// N-1 samples of history across calls to InPlace so that filtering two
// consecutive blocks is equivalent to filtering their concatenation.
type FIR struct {
	taps    []float32
	history []float32
}

// NewFIR creates a FIR filter with the given kernel. Odd-length kernels
// give an exact integer group delay of floor(N/2).
func NewFIR(taps []float32) *FIR {
	f := &FIR{
		taps:    append([]float32(nil), taps...),
		history: make([]float32, len(taps)-1),
	}
	return f
}

// Delay returns floor(N/2), the FIR's group delay at DC.
func (f *FIR) Delay() int { return len(f.taps) / 2 }

// Clone returns a fresh FIR with the same taps and cleared history.
func (f *FIR) Clone() Filter {
	return &FIR{
		taps:    append([]float32(nil), f.taps...),
		history: make([]float32, len(f.history)),
	}
}

// InPlace convolves buf with the kernel, consuming the carried-over
// history from the previous call and saving the new tail for the next.
func (f *FIR) InPlace(buf []float32) {
	n := len(f.taps)
	if n == 0 {
		return
	}
	hlen := len(f.history)

	// ext = history ++ buf, so ext[i+hlen] aligns with buf[i].
	ext := make([]float32, hlen+len(buf))
	copy(ext, f.history)
	copy(ext[hlen:], buf)

	for i := range buf {
		start := i // position of ext[i] == buf[i-n+1] .. using ext indices i..i+n-1
		var acc float32
		j := 0
		taps := f.taps
		for ; j+4 <= n; j += 4 {
			acc += ext[start+j]*taps[n-1-j] +
				ext[start+j+1]*taps[n-1-j-1] +
				ext[start+j+2]*taps[n-1-j-2] +
				ext[start+j+3]*taps[n-1-j-3]
		}
		for ; j < n; j++ {
			acc += ext[start+j] * taps[n-1-j]
		}
		buf[i] = acc
	}

	if hlen > 0 {
		tail := ext[len(ext)-hlen:]
		copy(f.history, tail)
	}
}
