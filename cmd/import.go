package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trknhr/ripeness/internal/dataset"
	"github.com/trknhr/ripeness/internal/store"
	"github.com/trknhr/ripeness/internal/worker"
)

func newImportCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import FILE...",
		Short: "Import dataset files into the example store",
		Long: `Import copies labeled examples into the local database so later runs can
fit without --file. Files whose modification time has not changed since the
last import are skipped unless --force is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.openDB()
			if err != nil {
				return err
			}
			exampleStore := store.NewSQLExampleStore(db)

			syncers := make([]worker.SyncWorker, 0, len(args))
			for _, path := range args {
				loader, err := dataset.NewLoader(path)
				if err != nil {
					return err
				}
				syncers = append(syncers, worker.NewDatasetSyncWorker(exampleStore, loader, force))
			}

			if err := worker.RunSyncWorkers(cmd.Context(), syncers...); err != nil {
				return err
			}

			total, err := exampleStore.LoadExamples("")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "store holds %d examples\n", len(total))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "re-import even when a file is unchanged")
	return cmd
}
