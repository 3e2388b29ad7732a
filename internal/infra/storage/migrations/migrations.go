package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/m04kA/SMC-CanchaBooking/pkg/dbmetrics"
)

//go:embed sql/*.sql
var files embed.FS

var ErrMigration = errors.New("migrations: failed to apply migration")

const createVersionsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    VARCHAR(255) PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Logger interface {
	Info(format string, v ...interface{})
}

// Migrator применяет встроенные SQL-миграции по порядку имён файлов
type Migrator struct {
	db        dbmetrics.DBExecutor
	txManager TransactionManager
	logger    Logger
}

func NewMigrator(db dbmetrics.DBExecutor, txManager TransactionManager, logger Logger) *Migrator {
	return &Migrator{db: db, txManager: txManager, logger: logger}
}

// Versions имена встроенных миграций в порядке применения
func Versions() ([]string, error) {
	entries, err := fs.ReadDir(files, "sql")
	if err != nil {
		return nil, err
	}

	versions := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			versions = append(versions, e.Name())
		}
	}
	sort.Strings(versions)
	return versions, nil
}

// Up применяет все ещё не применённые миграции; каждая в своей транзакции
func (m *Migrator) Up(ctx context.Context) (int, error) {
	if _, err := m.db.ExecContext(ctx, createVersionsTable); err != nil {
		return 0, fmt.Errorf("%w: create schema_migrations: %v", ErrMigration, err)
	}

	versions, err := Versions()
	if err != nil {
		return 0, fmt.Errorf("%w: list migrations: %v", ErrMigration, err)
	}

	applied := 0
	for _, version := range versions {
		body, err := files.ReadFile("sql/" + version)
		if err != nil {
			return applied, fmt.Errorf("%w: read %s: %v", ErrMigration, version, err)
		}

		done := false
		err = m.txManager.Do(ctx, func(txCtx context.Context) error {
			executor := dbmetrics.GetExecutor(txCtx, m.db)

			var exists bool
			if err := executor.QueryRowContext(txCtx,
				"SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)", version,
			).Scan(&exists); err != nil {
				return err
			}
			if exists {
				return nil
			}

			if _, err := executor.ExecContext(txCtx, string(body)); err != nil {
				return err
			}
			if _, err := executor.ExecContext(txCtx,
				"INSERT INTO schema_migrations (version) VALUES ($1)", version,
			); err != nil {
				return err
			}
			done = true
			return nil
		})
		if err != nil {
			return applied, fmt.Errorf("%w: %s: %v", ErrMigration, version, err)
		}

		if done {
			applied++
			m.logger.Info("Migration applied: %s", version)
		}
	}

	return applied, nil
}
