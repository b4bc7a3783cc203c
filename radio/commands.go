package radio

// run serializes fn through the radio's single-consumer command queue and
// blocks until it has completed (spec §4.9: commands complete in
// submission order, each fully finishing — including any awaited calls
// into the source — before the next begins).
func (r *Radio) run(fn func()) {
	done := make(chan struct{})
	r.cmdCh <- func() {
		fn()
		close(done)
	}
	<-done
}

// commandLoop is the single consumer draining the command queue.
func (r *Radio) commandLoop() {
	for cmd := range r.cmdCh {
		cmd()
	}
}
