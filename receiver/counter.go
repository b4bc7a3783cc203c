package receiver

// Counter counts incoming samples and fires OnTick that many times
// whenever the running count crosses a sample-rate-relative threshold
// (spec §4.10): `floor(new_count / (sample_rate / ticksPerSecond))`
// ticks since the last block. It is tolerant of sample-rate changes —
// the count and threshold reset together.
type Counter struct {
	ticksPerSecond float64
	sampleRate     float64
	count          int64
	ticked         int64
	OnTick         func()
}

// NewCounter creates a sample counter that fires OnTick ticksPerSecond
// times per second of audio, once a sample rate is known.
func NewCounter(ticksPerSecond float64) *Counter {
	return &Counter{ticksPerSecond: ticksPerSecond}
}

// SetSampleRate resets the counter's state for the new rate.
func (c *Counter) SetSampleRate(r float64) {
	c.sampleRate = r
	c.count = 0
	c.ticked = 0
}

// Receive advances the sample count and fires OnTick once per tick
// threshold crossed.
func (c *Counter) Receive(I, Q []float32, freq int64, data any) {
	c.count += int64(len(I))
	if c.sampleRate <= 0 || c.ticksPerSecond <= 0 {
		return
	}
	samplesPerTick := c.sampleRate / c.ticksPerSecond
	wantTicks := int64(float64(c.count) / samplesPerTick)
	for c.ticked < wantTicks {
		c.ticked++
		if c.OnTick != nil {
			c.OnTick()
		}
	}
}
