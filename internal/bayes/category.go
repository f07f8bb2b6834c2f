package bayes

import (
	"fmt"
	"strings"
)

// Label is the GoodToEat outcome.
type Label string

const (
	Ripe    Label = "ripe"
	Unripe  Label = "unripe"
	Spoiled Label = "spoiled"
)

type Color string

const (
	Green Color = "green"
	Red   Color = "red"
	Brown Color = "brown"
	Black Color = "black"
)

type Softness string

const (
	Hard   Softness = "hard"
	Medium Softness = "medium"
	Soft   Softness = "soft"
)

var (
	knownLabels   = []Label{Ripe, Unripe, Spoiled}
	knownColors   = []Color{Green, Red, Brown, Black}
	knownSoftness = []Softness{Hard, Medium, Soft}
)

// Example is one labeled training observation.
type Example struct {
	Color    Color    `json:"color" yaml:"color"`
	Softness Softness `json:"softness" yaml:"softness"`
	Label    Label    `json:"good_to_eat" yaml:"good_to_eat"`
}

func ParseLabel(s string) (Label, error) {
	return parse(s, knownLabels, "label")
}

func ParseColor(s string) (Color, error) {
	return parse(s, knownColors, "color")
}

func ParseSoftness(s string) (Softness, error) {
	return parse(s, knownSoftness, "softness")
}

// ParseExample validates all three fields of a raw row.
func ParseExample(color, softness, label string) (Example, error) {
	c, err := ParseColor(color)
	if err != nil {
		return Example{}, err
	}
	s, err := ParseSoftness(softness)
	if err != nil {
		return Example{}, err
	}
	l, err := ParseLabel(label)
	if err != nil {
		return Example{}, err
	}
	return Example{Color: c, Softness: s, Label: l}, nil
}

func parse[T ~string](s string, known []T, kind string) (T, error) {
	v := T(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range known {
		if k == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: unknown %s %q", ErrUnknownCategory, kind, s)
}
