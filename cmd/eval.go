package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trknhr/ripeness/internal/dataset"
	"github.com/trknhr/ripeness/internal/metrics"
	"github.com/trknhr/ripeness/internal/report"
)

func newEvalCmd(a *app) *cobra.Command {
	var trainFile string
	var testFile string

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Fit on a training set and report per-feature accuracy on a test set",
		Example: `
  ripeness eval -f train.csv -t test.jsonl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := a.fit(trainFile)
			if err != nil {
				return err
			}

			loader, err := dataset.NewLoader(testFile)
			if err != nil {
				return err
			}
			cases, err := loader.Load()
			if err != nil {
				return fmt.Errorf("failed to load evaluation cases: %w", err)
			}
			if len(cases) == 0 {
				return fmt.Errorf("no valid evaluation cases in %s", testFile)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "evaluated %d cases\n", len(cases))

			colors, softness, labels := dataset.Split(cases)
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

	cmd.Flags().StringVarP(&trainFile, "file", "f", "", "training dataset; defaults to the store")
	cmd.Flags().StringVarP(&testFile, "test", "t", "", "test dataset (.csv, .jsonl, .yaml)")
	_ = cmd.MarkFlagRequired("test")
	return cmd
}
