package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/trknhr/ripeness/internal/bayes"
	"github.com/trknhr/ripeness/internal/logger"
)

// CSVLoader reads rows with a header naming the color, softness and
// good_to_eat (or label) columns in any order.
type CSVLoader struct {
	path string
}

func NewCSVLoader(path string) *CSVLoader { return &CSVLoader{path: path} }

func (c *CSVLoader) Load() ([]bayes.Example, error) {
	file, err := os.Open(c.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV file")
	}

	header := records[0]
	colorIdx, softIdx, labelIdx := -1, -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "color":
			colorIdx = i
		case "softness":
			softIdx = i
		case "good_to_eat", "label":
			labelIdx = i
		}
	}
	if colorIdx == -1 || softIdx == -1 || labelIdx == -1 {
		return nil, fmt.Errorf("CSV must contain 'color', 'softness' and 'good_to_eat' columns")
	}

	var examples []bayes.Example
	for i, record := range records[1:] {
		row := i + 2
		if len(record) <= max(colorIdx, softIdx, labelIdx) {
			logger.Warn("skipping malformed row %d in %s", row, c.path)
			continue
		}
		ex, err := bayes.ParseExample(record[colorIdx], record[softIdx], record[labelIdx])
		if err != nil {
			logger.Warn("skipping row %d in %s: %v", row, c.path, err)
			continue
		}
		examples = append(examples, ex)
	}
	return examples, nil
}

func (c *CSVLoader) GetCurrentMtime() (int64, error) { return mtime(c.path) }
func (c *CSVLoader) Path() string                    { return c.path }
func (c *CSVLoader) Key() string                     { return keyFor(c.path) }
