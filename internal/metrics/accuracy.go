package metrics

import (
	"errors"
	"fmt"
)

var ErrLengthMismatch = errors.New("length mismatch")

// Accuracy returns the fraction of positions where predictions and actual
// agree. Both slices must have the same length; an empty pair scores 0.
func Accuracy[T comparable](predictions, actual []T) (float64, error) {
	if len(predictions) != len(actual) {
		return 0, fmt.Errorf("%w: expected predictions and actual to be same length but got pred=%d and actual=%d",
			ErrLengthMismatch, len(predictions), len(actual))
	}
	if len(predictions) == 0 {
		return 0, nil
	}
	c := 0
	for i := range predictions {
		if predictions[i] == actual[i] {
			c++
		}
	}
	return float64(c) / float64(len(predictions)), nil
}
