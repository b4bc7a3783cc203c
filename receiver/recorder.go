package receiver

// Recorder is a trivial Sample that copies every block it receives, used
// across the test suite in place of ad hoc test doubles.
type Recorder struct {
	SampleRate float64
	Blocks     []RecordedBlock
}

// RecordedBlock is a defensive copy of one Receive call's arguments.
type RecordedBlock struct {
	I, Q      []float32
	Frequency int64
	Data      any
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// SetSampleRate records the most recent sample rate reported.
func (r *Recorder) SetSampleRate(rate float64) {
	r.SampleRate = rate
}

// Receive copies I and Q and appends them to Blocks.
func (r *Recorder) Receive(I, Q []float32, freq int64, data any) {
	ci := append([]float32(nil), I...)
	cq := append([]float32(nil), Q...)
	r.Blocks = append(r.Blocks, RecordedBlock{I: ci, Q: cq, Frequency: freq, Data: data})
}

// Reset clears all recorded blocks.
func (r *Recorder) Reset() {
	r.Blocks = nil
}
