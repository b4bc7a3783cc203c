package receiver

// Composite broadcasts both contract methods to an ordered list of
// children (spec §4.10). There is no error isolation: children run in
// list order and a panic in one propagates to the caller exactly as if
// the radio had called it directly.
type Composite struct {
	children []Sample
}

// NewComposite creates a composite receiver fanning out to children, in
// order.
func NewComposite(children ...Sample) *Composite {
	return &Composite{children: children}
}

// Add appends another child to the fan-out list.
func (c *Composite) Add(child Sample) {
	c.children = append(c.children, child)
}

// SetSampleRate forwards to every child, in order.
func (c *Composite) SetSampleRate(r float64) {
	for _, child := range c.children {
		child.SetSampleRate(r)
	}
}

// Receive forwards to every child, in order.
func (c *Composite) Receive(I, Q []float32, freq int64, data any) {
	for _, child := range c.children {
		child.Receive(I, Q, freq, data)
	}
}
