package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trknhr/ripeness/internal/bayes"
)

//go:generate mockgen -source=loader.go -destination=mock_loader.go -package=dataset

type Loader interface {
	Load() ([]bayes.Example, error)
	GetCurrentMtime() (int64, error)
	Path() string
	Key() string
}

// NewLoader picks a loader from the file extension.
func NewLoader(path string) (Loader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return &CSVLoader{path: path}, nil
	case ".jsonl":
		return &JSONLLoader{path: path}, nil
	case ".yaml", ".yml":
		return &YAMLLoader{path: path}, nil
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .csv, .jsonl, .yaml)", ext)
	}
}

// Key identifies a dataset file in the store; the absolute path keeps two
// relative invocations of the same file together.
func keyFor(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return "dataset:" + abs
	}
	return "dataset:" + path
}

// mtime reports the modification time in nanoseconds.
func mtime(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.ModTime().UnixNano(), nil
}

// Split separates examples into per-feature inputs and the label column.
func Split(examples []bayes.Example) ([]bayes.Color, []bayes.Softness, []bayes.Label) {
	colors := make([]bayes.Color, len(examples))
	softness := make([]bayes.Softness, len(examples))
	labels := make([]bayes.Label, len(examples))
	for i, ex := range examples {
		colors[i] = ex.Color
		softness[i] = ex.Softness
		labels[i] = ex.Label
	}
	return colors, softness, labels
}
