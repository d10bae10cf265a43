package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/gramcare/caselink/internal/dbx"
	"github.com/gramcare/caselink/internal/shared"
	"github.com/gramcare/caselink/internal/storage/migrations"
)

// SQLite implements Slot on top of a local SQLite file, so two processes
// pointed at the same path share one persisted collection.
type SQLite struct {
	db *sql.DB
}

// Open opens (or creates) the database at dsn and applies pending
// migrations.
func Open(ctx context.Context, dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// NewSQLite wraps an already opened database. The caller is responsible
// for the schema; tests use this with an in-memory database.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) Get(ctx context.Context, key string) (string, int64, error) {
	var value string
	var revision int64

	query := `select value, revision from slots where key = ?`
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value, &revision)
	if errors.Is(err, sql.ErrNoRows) {
		return "", 0, nil
	}
	if err != nil {
		return "", 0, fmt.Errorf("failed to read slot %q: %w", key, err)
	}
	return value, revision, nil
}

func (s *SQLite) Put(ctx context.Context, key, value string, expectRevision int64) (int64, error) {
	newRevision := expectRevision + 1

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var current int64
		err := tx.QueryRowContext(ctx, `select revision from slots where key = ?`, key).Scan(&current)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to read slot revision: %w", err)
		}
		if current != expectRevision {
			return shared.ErrorStaleRevision
		}

		query := `insert into slots (key, value, revision) values (?, ?, ?)
			on conflict(key) do update set value = excluded.value, revision = excluded.revision`
		if _, err := tx.ExecContext(ctx, query, key, value, newRevision); err != nil {
			return fmt.Errorf("failed to write slot %q: %w", key, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newRevision, nil
}
