package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/trknhr/ripeness/internal/bayes"
)

var heading = color.New(color.Bold, color.FgCyan)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// PrintModel writes the prior and both conditional tables of m.
func PrintModel(w io.Writer, m *bayes.Model) error {
	heading.Fprintln(w, "good to eat prior")
	tw := newTable(w)
	fmt.Fprintln(tw, "label\tp")
	prior := m.Prior()
	for _, l := range prior.Keys() {
		fmt.Fprintf(tw, "%s\t%.4f\n", l, prior.Prob(l))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	heading.Fprintln(w, "color given good to eat pmf")
	if err := printConditional(w, "color", m.Labels(), m.ColorGivenLabel); err != nil {
		return err
	}
	fmt.Fprintln(w)

	heading.Fprintln(w, "softness given good to eat pmf")
	return printConditional(w, "softness", m.Labels(), m.SoftnessGivenLabel)
}

func printConditional[K ~string](w io.Writer, feature string, labels []bayes.Label, table func(bayes.Label) bayes.Table[K]) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "label\t%s\tp\n", feature)
	for _, l := range labels {
		t := table(l)
		for _, k := range t.Keys() {
			fmt.Fprintf(tw, "%s\t%s\t%.4f\n", l, k, t.Prob(k))
		}
	}
	return tw.Flush()
}

// PrintPosteriors writes one row per observation with the posterior of every
// label and the arg-max prediction.
func PrintPosteriors[K ~string](w io.Writer, labels []bayes.Label, xs []K, rows [][]bayes.Posterior) error {
	tw := newTable(w)
	fmt.Fprint(tw, "value")
	for _, l := range labels {
		fmt.Fprintf(tw, "\tP(%s)", l)
	}
	fmt.Fprintln(tw, "\tprediction")

	for i, x := range xs {
		fmt.Fprint(tw, string(x))
		for _, p := range rows[i] {
			fmt.Fprintf(tw, "\t%.4f", p.Probability)
		}
		best, _ := bayes.Argmax(rows[i])
		fmt.Fprintf(tw, "\t%s\n", best)
	}
	return tw.Flush()
}

func PrintAccuracy(w io.Writer, feature string, accuracy float64) {
	fmt.Fprintf(w, "accuracy when predicting only on %s: %.4f\n", feature, accuracy)
}
