package dataset

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"

	"github.com/trknhr/ripeness/internal/bayes"
	"github.com/trknhr/ripeness/internal/logger"
)

type rawExample struct {
	Color    string `json:"color" yaml:"color"`
	Softness string `json:"softness" yaml:"softness"`
	Label    string `json:"good_to_eat" yaml:"good_to_eat"`
}

// JSONLLoader reads one {"color","softness","good_to_eat"} object per line.
type JSONLLoader struct {
	path string
}

func NewJSONLLoader(path string) *JSONLLoader { return &JSONLLoader{path: path} }

func (j *JSONLLoader) Load() ([]bayes.Example, error) {
	file, err := os.Open(j.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var examples []bayes.Example
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var raw rawExample
		if err := json.Unmarshal([]byte(text), &raw); err != nil {
			logger.Warn("JSON decode error at %s:%d: %v", j.path, line, err)
			continue
		}
		ex, err := bayes.ParseExample(raw.Color, raw.Softness, raw.Label)
		if err != nil {
			logger.Warn("skipping %s:%d: %v", j.path, line, err)
			continue
		}
		examples = append(examples, ex)
	}
	return examples, scanner.Err()
}

func (j *JSONLLoader) GetCurrentMtime() (int64, error) { return mtime(j.path) }
func (j *JSONLLoader) Path() string                    { return j.path }
func (j *JSONLLoader) Key() string                     { return keyFor(j.path) }
