package bayes

// Table is a read-only probability mass function. Keys iterate in the order
// they were first observed.
type Table[K comparable] struct {
	keys  []K
	probs map[K]float64
}

// Get reports the probability of k and whether k was observed at all.
func (t Table[K]) Get(k K) (float64, bool) {
	p, ok := t.probs[k]
	return p, ok
}

// Prob returns the probability of k, or 0 when k was never observed.
func (t Table[K]) Prob(k K) float64 {
	return t.probs[k]
}

func (t Table[K]) Keys() []K {
	out := make([]K, len(t.keys))
	copy(out, t.keys)
	return out
}

func (t Table[K]) Len() int { return len(t.keys) }

func (t Table[K]) Sum() float64 {
	s := 0.0
	for _, k := range t.keys {
		s += t.probs[k]
	}
	return s
}

type counter[K comparable] struct {
	keys   []K
	counts map[K]int
	total  int
}

func newCounter[K comparable]() *counter[K] {
	return &counter[K]{counts: make(map[K]int)}
}

func (c *counter[K]) add(k K) {
	if _, ok := c.counts[k]; !ok {
		c.keys = append(c.keys, k)
	}
	c.counts[k]++
	c.total++
}

// normalize divides every count by the running total. Callers never
// normalize an empty counter.
func (c *counter[K]) normalize() Table[K] {
	t := Table[K]{
		keys:  make([]K, len(c.keys)),
		probs: make(map[K]float64, len(c.keys)),
	}
	copy(t.keys, c.keys)
	for _, k := range c.keys {
		t.probs[k] = float64(c.counts[k]) / float64(c.total)
	}
	return t
}
