package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trknhr/ripeness/internal/dataset"
	"github.com/trknhr/ripeness/internal/metrics"
	"github.com/trknhr/ripeness/internal/report"
)

func newFitCmd(a *app) *cobra.Command {
	var file string
	var noAccuracy bool

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit the model and print its probability tables",
		Example: `
  # Fit on a CSV file
  ripeness fit -f avocados.csv

  # Fit on everything imported into the store
  ripeness fit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, examples, err := a.fit(file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := report.PrintModel(out, m); err != nil {
				return err
			}
			if noAccuracy {
				return nil
			}

			colors, softness, labels := dataset.Split(examples)
			fmt.Fprintln(out)
			colorAcc, err := metrics.Accuracy(m.PredictColor(colors), labels)
			if err != nil {
				return err
			}
			report.PrintAccuracy(out, "color", colorAcc)

			softAcc, err := metrics.Accuracy(m.PredictSoftness(softness), labels)
			if err != nil {
				return err
			}
			report.PrintAccuracy(out, "softness", softAcc)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "training dataset (.csv, .jsonl, .yaml); defaults to the store")
	cmd.Flags().BoolVar(&noAccuracy, "no-accuracy", false, "skip the training-set accuracy report")
	return cmd
}
