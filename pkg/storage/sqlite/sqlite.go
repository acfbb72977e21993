// Package sqlite stores documents as rows of a single sqlite table.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/openmediastation/mediaserver/pkg/logger"
	"github.com/openmediastation/mediaserver/pkg/storage"
	"go.uber.org/zap"
)

var _ storage.DocumentStore = (*SQLite)(nil)

type SQLite struct {
	db *sql.DB
}

// New opens the database at filePath and applies pending migrations
func New(ctx context.Context, filePath string) (*SQLite, error) {
	log := logger.FromCtx(ctx)

	db, err := sql.Open("sqlite3", filePath+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	// sqlite allows a single writer; one connection keeps read-modify-write transactions ordered
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to %s: %w", filePath, err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	log.Debugw("sqlite document store ready", "path", filePath)
	return &SQLite{db: db}, nil
}

// Read returns the stored document or nil when none exists
func (s *SQLite) Read(ctx context.Context, name string) ([]byte, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE name = ?`, name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return body, nil
}

// Modify reads and replaces a document inside one transaction
func (s *SQLite) Modify(ctx context.Context, name string, fn func(current []byte) ([]byte, error)) error {
	log := logger.FromCtx(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			log.Error("failed to rollback document transaction", zap.String("name", name), zap.Error(err))
		}
	}()

	var current []byte
	err = tx.QueryRowContext(ctx, `SELECT body FROM documents WHERE name = ?`, name).Scan(&current)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	next, err := fn(current)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO documents (name, body, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`, name, next)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	return tx.Commit()
}

// Names lists stored document names with the given prefix
func (s *SQLite) Names(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM documents WHERE name LIKE ? || '%' ORDER BY name`, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}

	return names, rows.Err()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
