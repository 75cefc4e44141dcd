package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bobycv06fpm/news-credibility/table"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

var ErrInvalidTableName = errors.New("invalid table name")

// SQLiteSink writes extracted tables into a single SQLite database,
// one SQL table per dataset
type SQLiteSink struct {
	db   *sql.DB
	lock sync.Mutex

	path   string
	logger *zap.Logger
}

func OpenSQLite(path string, logger *zap.Logger) (*SQLiteSink, error) {

	if logger == nil {
		logger = zap.NewNop()
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// a single writer, sqlite serializes them anyway
	db.SetMaxOpenConns(1)

	return &SQLiteSink{
		db:     db,
		path:   path,
		logger: logger,
	}, nil
}

func (s *SQLiteSink) Close() error {
	return s.db.Close()
}

func quoteIdent(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrInvalidTableName
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`, nil
}

// WriteTable replaces the SQL table name with the rows of t
func (s *SQLiteSink) WriteTable(ctx context.Context, name string, t *table.Table) (topErr error) {

	ident, identErr := quoteIdent(name)
	if identErr != nil {
		return identErr
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	tx, txErr := s.db.BeginTx(ctx, nil)
	if txErr != nil {
		return fmt.Errorf("unable to begin transaction: %w", txErr)
	}
	defer func() {
		if topErr != nil {
			tx.Rollback()
		}
	}()

	schemaSQL := fmt.Sprintf(`
	DROP TABLE IF EXISTS %[1]s;
	CREATE TABLE %[1]s (
		id INTEGER NOT NULL,
		content TEXT NOT NULL,
		label REAL NOT NULL,
		partition INTEGER NOT NULL
	);`, ident)

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("unable to create table %s: %w", name, err)
	}

	stmt, prepErr := tx.PrepareContext(ctx, fmt.Sprintf(`INSERT INTO %s (id, content, label, partition) VALUES (?, ?, ?, ?)`, ident))
	if prepErr != nil {
		return fmt.Errorf("unable to prepare insert into %s: %w", name, prepErr)
	}
	defer stmt.Close()

	for partitionIdx := range t.NumPartitions() {
		for _, row := range t.Partition(partitionIdx) {
			if _, err := stmt.ExecContext(ctx, row.Id, row.Content, row.Label, partitionIdx); err != nil {
				return fmt.Errorf("unable to insert into %s: %w", name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("unable to commit %s: %w", name, err)
	}

	s.logger.Info("table exported to sqlite", zap.String("db", s.path), zap.String("table", name), zap.Int("rows", t.Count()))

	return nil
}

func (s *SQLiteSink) Count(ctx context.Context, name string) (int, error) {

	ident, identErr := quoteIdent(name)
	if identErr != nil {
		return 0, identErr
	}

	count := 0
	err := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, ident)).Scan(&count)

	return count, err
}

// ReadTable loads a written table back, keeping partitions and row order
func (s *SQLiteSink) ReadTable(ctx context.Context, name string) (*table.Table, error) {

	ident, identErr := quoteIdent(name)
	if identErr != nil {
		return nil, identErr
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT id, content, label, partition FROM %s ORDER BY partition, rowid`, ident))
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", name, err)
	}
	defer rows.Close()

	partitions := [][]table.Row{}

	for rows.Next() {
		var (
			row       table.Row
			partition int
		)

		if err := rows.Scan(&row.Id, &row.Content, &row.Label, &partition); err != nil {
			return nil, err
		}

		for len(partitions) <= partition {
			partitions = append(partitions, []table.Row{})
		}
		partitions[partition] = append(partitions[partition], row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return table.NewPartitioned(name, partitions), nil
}
