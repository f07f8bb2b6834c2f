package bayes

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTrainingSet = errors.New("empty training set")
	ErrUnknownCategory  = errors.New("unknown category")
)

// Model is a fitted categorical naive Bayes classifier. It is built once by
// Fit and never mutated afterwards, so a single Model may be shared between
// goroutines.
type Model struct {
	prior              Table[Label]
	colorGivenLabel    map[Label]Table[Color]
	softnessGivenLabel map[Label]Table[Softness]
}

// Fit estimates the label prior and the per-label color and softness
// distributions from examples. No smoothing is applied: a category never seen
// under a label is absent from that label's table.
func Fit(examples []Example) (*Model, error) {
	if len(examples) == 0 {
		return nil, fmt.Errorf("fit: %w", ErrEmptyTrainingSet)
	}

	labels := newCounter[Label]()
	colors := make(map[Label]*counter[Color])
	softness := make(map[Label]*counter[Softness])

	for _, ex := range examples {
		labels.add(ex.Label)
		if _, ok := colors[ex.Label]; !ok {
			colors[ex.Label] = newCounter[Color]()
			softness[ex.Label] = newCounter[Softness]()
		}
		colors[ex.Label].add(ex.Color)
		softness[ex.Label].add(ex.Softness)
	}

	m := &Model{
		prior:              labels.normalize(),
		colorGivenLabel:    make(map[Label]Table[Color], len(colors)),
		softnessGivenLabel: make(map[Label]Table[Softness], len(softness)),
	}
	// each per-label counter total equals labels.counts[label]
	for _, l := range labels.keys {
		m.colorGivenLabel[l] = colors[l].normalize()
		m.softnessGivenLabel[l] = softness[l].normalize()
	}
	return m, nil
}

func (m *Model) Prior() Table[Label] { return m.prior }

// Labels returns the labels seen in training, in first-seen order.
func (m *Model) Labels() []Label { return m.prior.Keys() }

// ColorGivenLabel returns P(color | label). The table is empty for a label
// that never appeared in training.
func (m *Model) ColorGivenLabel(l Label) Table[Color] {
	return m.colorGivenLabel[l]
}

func (m *Model) SoftnessGivenLabel(l Label) Table[Softness] {
	return m.softnessGivenLabel[l]
}
