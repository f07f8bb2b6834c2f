package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trknhr/ripeness/internal/bayes"
	"github.com/trknhr/ripeness/internal/report"
)

func newPredictCmd(a *app) *cobra.Command {
	var file string
	var feature string

	cmd := &cobra.Command{
		Use:   "predict VALUE...",
		Short: "Print posteriors and the predicted label for color or softness values",
		Example: `
  ripeness predict -f avocados.csv --feature color green brown black
  ripeness predict --feature softness soft hard`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := a.fit(file)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch feature {
			case "color":
				xs, err := parseAll(args, bayes.ParseColor)
				if err != nil {
					return err
				}
				rows, err := m.PredictColorProbaParallel(cmd.Context(), xs, a.cfg.Workers)
				if err != nil {
					return err
				}
				return report.PrintPosteriors(out, m.Labels(), xs, rows)
			case "softness":
				xs, err := parseAll(args, bayes.ParseSoftness)
				if err != nil {
					return err
				}
				rows, err := m.PredictSoftnessProbaParallel(cmd.Context(), xs, a.cfg.Workers)
				if err != nil {
					return err
				}
				return report.PrintPosteriors(out, m.Labels(), xs, rows)
			default:
				return fmt.Errorf("unknown feature %q (expected color or softness)", feature)
			}
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "training dataset (.csv, .jsonl, .yaml); defaults to the store")
	cmd.Flags().StringVar(&feature, "feature", "color", "feature the values belong to (color, softness)")
	return cmd
}

func parseAll[T any](args []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(args))
	for _, s := range args {
		v, err := parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
