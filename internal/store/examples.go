package store

import (
	"database/sql"
	"fmt"

	"github.com/trknhr/ripeness/internal/bayes"
	"github.com/trknhr/ripeness/internal/logger"
	"github.com/trknhr/ripeness/internal/utils"
)

//go:generate mockgen -source=examples.go -destination=mock_examples.go -package=store

// ExampleStore keeps labeled training rows grouped by the dataset they were
// imported from. It never stores fitted tables.
type ExampleStore interface {
	SaveExamples(source string, examples []bayes.Example) error
	LoadExamples(source string) ([]bayes.Example, error)
	GetLastProcessedMtime(key, path string) (int64, error)
	UpdateMetadata(key, path string, mtime int64) error
}

type SQLExampleStore struct {
	db *sql.DB
}

func NewSQLExampleStore(db *sql.DB) ExampleStore {
	return &SQLExampleStore{db: db}
}

// SaveExamples replaces every row previously imported for source.
func (s *SQLExampleStore) SaveExamples(source string, examples []bayes.Example) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM examples WHERE source = ?`, source); err != nil {
		return fmt.Errorf("failed to clear examples for %s: %w", source, err)
	}

	stmt, err := tx.Prepare(`
        INSERT INTO examples(source, position, color, softness, label, hash)
        VALUES (?, ?, ?, ?, ?, ?)
    `)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, ex := range examples {
		hash := utils.Hash(fmt.Sprintf("%s|%d|%s|%s|%s", source, i, ex.Color, ex.Softness, ex.Label))
		if _, err := stmt.Exec(source, i, string(ex.Color), string(ex.Softness), string(ex.Label), hash); err != nil {
			return fmt.Errorf("failed to insert example %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		logger.Error("failed to commit examples tx: %v", err)
		return err
	}
	return nil
}

// LoadExamples returns rows in import order. An empty source loads every
// dataset.
func (s *SQLExampleStore) LoadExamples(source string) ([]bayes.Example, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if source == "" {
		rows, err = s.db.Query(`SELECT color, softness, label FROM examples ORDER BY source, position`)
	} else {
		rows, err = s.db.Query(`SELECT color, softness, label FROM examples WHERE source = ? ORDER BY position`, source)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var examples []bayes.Example
	for rows.Next() {
		var color, softness, label string
		if err := rows.Scan(&color, &softness, &label); err != nil {
			return nil, err
		}
		ex, err := bayes.ParseExample(color, softness, label)
		if err != nil {
			return nil, fmt.Errorf("corrupt example row: %w", err)
		}
		examples = append(examples, ex)
	}
	return examples, rows.Err()
}

func (s *SQLExampleStore) GetLastProcessedMtime(key, path string) (int64, error) {
	var mtime int64
	err := s.db.QueryRow("SELECT mtime FROM meta WHERE key = ? AND path = ?", key, path).Scan(&mtime)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return mtime, err
}

func (s *SQLExampleStore) UpdateMetadata(key, path string, mtime int64) error {
	_, err := s.db.Exec(`
        INSERT INTO meta (key, path, mtime) 
        VALUES (?, ?, ?) 
        ON CONFLICT(key) DO UPDATE SET 
            path = excluded.path,
            mtime = excluded.mtime`,
		key, path, mtime)
	return err
}
