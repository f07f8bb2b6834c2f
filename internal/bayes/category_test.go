package bayes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trknhr/ripeness/internal/bayes"
)

func TestParseExample(t *testing.T) {
	ex, err := bayes.ParseExample(" Green", "SOFT ", "ripe")
	require.NoError(t, err)
	assert.Equal(t, bayes.Example{Color: bayes.Green, Softness: bayes.Soft, Label: bayes.Ripe}, ex)

	_, err = bayes.ParseExample("purple", "soft", "ripe")
	assert.ErrorIs(t, err, bayes.ErrUnknownCategory)

	_, err = bayes.ParseExample("green", "squishy", "ripe")
	assert.ErrorIs(t, err, bayes.ErrUnknownCategory)

	_, err = bayes.ParseExample("green", "soft", "")
	assert.ErrorIs(t, err, bayes.ErrUnknownCategory)
}

func TestParseLabel(t *testing.T) {
	for _, s := range []string{"ripe", "unripe", "spoiled"} {
		l, err := bayes.ParseLabel(s)
		require.NoError(t, err)
		assert.Equal(t, bayes.Label(s), l)
	}
}
