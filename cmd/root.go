package cmd

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/trknhr/ripeness/internal"
	"github.com/trknhr/ripeness/internal/bayes"
	"github.com/trknhr/ripeness/internal/config"
	"github.com/trknhr/ripeness/internal/dataset"
	"github.com/trknhr/ripeness/internal/logger"
	"github.com/trknhr/ripeness/internal/store"
)

// app carries state shared by every subcommand. The database is opened only
// by commands that read or write the example store.
type app struct {
	cfgFile string
	cfg     config.Config
	db      *sql.DB
}

func (a *app) openDB() (*sql.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	db, err := internal.OpenDB(a.cfg.DBPath)
	if err != nil {
		return nil, err
	}
	a.db = db
	return db, nil
}

func (a *app) close() {
	if a.db != nil {
		a.db.Close()
		a.db = nil
	}
}

// trainingExamples reads a dataset file when one is given and falls back to
// everything imported into the store otherwise.
func (a *app) trainingExamples(file string) ([]bayes.Example, error) {
	if file != "" {
		loader, err := dataset.NewLoader(file)
		if err != nil {
			return nil, err
		}
		examples, err := loader.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
		logger.Debug("loaded %d examples from %s", len(examples), file)
		return examples, nil
	}

	db, err := a.openDB()
	if err != nil {
		return nil, err
	}
	examples, err := store.NewSQLExampleStore(db).LoadExamples("")
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded %d examples from %s", len(examples), a.cfg.DBPath)
	return examples, nil
}

// fit returns the model together with the examples it was fitted on.
func (a *app) fit(file string) (*bayes.Model, []bayes.Example, error) {
	examples, err := a.trainingExamples(file)
	if err != nil {
		return nil, nil, err
	}
	m, err := bayes.Fit(examples)
	if err != nil {
		if file == "" {
			return nil, nil, fmt.Errorf("%w (import a dataset or pass --file)", err)
		}
		return nil, nil, err
	}
	logger.Info("fitted model on %d examples, labels %v", len(examples), m.Labels())
	return m, examples, nil
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "ripeness",
		Short: "Naive Bayes ripeness predictor for avocados",
		Long: `ripeness fits a categorical naive Bayes model that predicts whether an
avocado is good to eat from its color or its softness.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(viper.New(), cmd.Flags(), a.cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			a.cfg = cfg
			return logger.Init(cfg.LogFile, cfg.LogLevel)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
			_ = logger.Close()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.ripeness/config.yaml)")
	flags.String(config.KeyDB, config.DefaultDBPath(), "path of the dataset database")
	flags.String(config.KeyLogLevel, "info", "log level (debug, info, warn, error, none)")
	flags.String(config.KeyLogFile, "", "also append logs to this file")
	flags.Int(config.KeyWorkers, 1, "goroutines used for posterior inference")

	cmd.AddCommand(
		newFitCmd(a),
		newPredictCmd(a),
		newEvalCmd(a),
		newImportCmd(a),
	)
	return cmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
