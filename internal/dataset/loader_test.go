package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trknhr/ripeness/internal/bayes"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

var wantExamples = []bayes.Example{
	{Color: bayes.Green, Softness: bayes.Hard, Label: bayes.Unripe},
	{Color: bayes.Brown, Softness: bayes.Soft, Label: bayes.Ripe},
}

func TestCSVLoader_Load(t *testing.T) {
	path := writeFile(t, "data.csv", "softness,color,good_to_eat\n"+
		"hard,green,unripe\n"+
		"soft,purple,ripe\n"+ // unknown color
		"soft\n"+ // short row
		"Soft, Brown ,RIPE\n")

	loader, err := NewLoader(path)
	require.NoError(t, err)
	require.IsType(t, &CSVLoader{}, loader)

	got, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, wantExamples, got)
}

func TestCSVLoader_MissingColumns(t *testing.T) {
	path := writeFile(t, "data.csv", "color,good_to_eat\ngreen,unripe\n")
	_, err := NewCSVLoader(path).Load()
	assert.Error(t, err)

	empty := writeFile(t, "empty.csv", "")
	_, err = NewCSVLoader(empty).Load()
	assert.Error(t, err)
}

func TestJSONLLoader_Load(t *testing.T) {
	path := writeFile(t, "data.jsonl", `{"color":"green","softness":"hard","good_to_eat":"unripe"}
not json

{"color":"brown","softness":"soft","good_to_eat":"ripe"}
{"color":"brown","softness":"soft","good_to_eat":"maybe"}
`)

	loader, err := NewLoader(path)
	require.NoError(t, err)

	got, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, wantExamples, got)
}

func TestYAMLLoader_Load(t *testing.T) {
	path := writeFile(t, "data.yml", `examples:
  - {color: green, softness: hard, good_to_eat: unripe}
  - color: brown
    softness: soft
    good_to_eat: ripe
  - {color: blue, softness: soft, good_to_eat: ripe}
`)

	loader, err := NewLoader(path)
	require.NoError(t, err)

	got, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, wantExamples, got)
}

func TestNewLoader_Unsupported(t *testing.T) {
	_, err := NewLoader("data.parquet")
	assert.Error(t, err)
}

func TestLoader_MtimeAndKey(t *testing.T) {
	path := writeFile(t, "data.csv", "color,softness,good_to_eat\n")
	loader := NewCSVLoader(path)

	got, err := loader.GetCurrentMtime()
	require.NoError(t, err)
	stat, _ := os.Stat(path)
	assert.Equal(t, stat.ModTime().UnixNano(), got)

	assert.Equal(t, path, loader.Path())
	assert.Equal(t, "dataset:"+path, loader.Key())
}

func TestSplit(t *testing.T) {
	colors, softness, labels := Split(wantExamples)
	assert.Equal(t, []bayes.Color{bayes.Green, bayes.Brown}, colors)
	assert.Equal(t, []bayes.Softness{bayes.Hard, bayes.Soft}, softness)
	assert.Equal(t, []bayes.Label{bayes.Unripe, bayes.Ripe}, labels)
}
