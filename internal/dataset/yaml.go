package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/trknhr/ripeness/internal/bayes"
	"github.com/trknhr/ripeness/internal/logger"
)

// YAMLLoader reads a document of the form
//
//	examples:
//	  - {color: green, softness: hard, good_to_eat: unripe}
type YAMLLoader struct {
	path string
}

func NewYAMLLoader(path string) *YAMLLoader { return &YAMLLoader{path: path} }

func (y *YAMLLoader) Load() ([]bayes.Example, error) {
	data, err := os.ReadFile(y.path)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Examples []rawExample `yaml:"examples"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", y.path, err)
	}

	var examples []bayes.Example
	for i, raw := range doc.Examples {
		ex, err := bayes.ParseExample(raw.Color, raw.Softness, raw.Label)
		if err != nil {
			logger.Warn("skipping example %d in %s: %v", i, y.path, err)
			continue
		}
		examples = append(examples, ex)
	}
	return examples, nil
}

func (y *YAMLLoader) GetCurrentMtime() (int64, error) { return mtime(y.path) }
func (y *YAMLLoader) Path() string                    { return y.path }
func (y *YAMLLoader) Key() string                     { return keyFor(y.path) }
