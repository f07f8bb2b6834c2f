package worker

import (
	"fmt"

	"github.com/trknhr/ripeness/internal/dataset"
	"github.com/trknhr/ripeness/internal/logger"
	"github.com/trknhr/ripeness/internal/store"
)

// DatasetSyncWorker copies a dataset file into the example store when the
// file changed since its last import.
type DatasetSyncWorker struct {
	store  store.ExampleStore
	loader dataset.Loader
	force  bool
}

func NewDatasetSyncWorker(store store.ExampleStore, loader dataset.Loader, force bool) *DatasetSyncWorker {
	return &DatasetSyncWorker{store: store, loader: loader, force: force}
}

func (d *DatasetSyncWorker) Key() string  { return d.loader.Key() }
func (d *DatasetSyncWorker) Path() string { return d.loader.Path() }
func (d *DatasetSyncWorker) NeedsReload() bool {
	if d.force {
		return true
	}
	last, err := d.store.GetLastProcessedMtime(d.Key(), d.Path())
	if err != nil {
		return true // conservative: try to reload if error
	}
	curr, err := d.loader.GetCurrentMtime()
	if err != nil {
		return false // don't try if can't stat
	}
	return curr > last
}

func (d *DatasetSyncWorker) Sync() error {
	examples, err := d.loader.Load()
	if err != nil {
		return err
	}
	if len(examples) == 0 {
		return fmt.Errorf("no valid examples in %s", d.Path())
	}
	if err := d.store.SaveExamples(d.Key(), examples); err != nil {
		return err
	}
	logger.Debug("imported %d examples from %s", len(examples), d.Path())
	curr, err := d.loader.GetCurrentMtime()
	if err != nil {
		return err
	}
	return d.store.UpdateMetadata(d.Key(), d.Path(), curr)
}
