package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/klwxsrx/random-coffee-bot/pkg/log"
)

const (
	migrationLock  = "perform_migration_lock"
	querySeparator = ";\n"

	migrationTableDDL = `
		CREATE TABLE IF NOT EXISTS migration (
			id text PRIMARY KEY
		)
	`
)

type MigrationSource interface {
	fs.ReadDirFS
}

func FSMigrations(fsys fs.ReadDirFS) MigrationSource {
	return fsys
}

type Migrator struct {
	txClient TxClient
	logger   log.Logger
}

func NewMigrator(txClient TxClient, logger log.Logger) *Migrator {
	return &Migrator{txClient: txClient, logger: logger}
}

func (m *Migrator) Execute(ctx context.Context, sources ...MigrationSource) error {
	lock := newLock(ctx, migrationLock, m.txClient)

	err := lock.Get()
	if err != nil {
		return fmt.Errorf("failed to get migration lock: %w", err)
	}
	defer lock.Release()

	_, err = m.txClient.ExecContext(ctx, migrationTableDDL)
	if err != nil {
		return fmt.Errorf("failed to create migration table: %w", err)
	}

	for _, source := range sources {
		err = m.performSourceMigrations(ctx, source)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Migrator) performSourceMigrations(ctx context.Context, source MigrationSource) error {
	migrationIDs, err := m.getFileNames(source)
	if err != nil {
		return fmt.Errorf("failed to get migration file names: %w", err)
	}
	if len(migrationIDs) == 0 {
		return nil
	}

	performedMigrationIDs, err := m.getPerformedMigrationIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to get performed migrations: %w", err)
	}

	for _, migrationID := range migrationIDs {
		if _, ok := performedMigrationIDs[migrationID]; ok {
			continue
		}

		content, err := fs.ReadFile(source, migrationID)
		if err != nil {
			return fmt.Errorf("failed to read migration sql: %w", err)
		}

		err = m.performMigration(ctx, migrationID, string(content))
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Migrator) getFileNames(source MigrationSource) ([]string, error) {
	entries, err := source.ReadDir(".")
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		result = append(result, entry.Name())
	}
	return result, nil
}

func (m *Migrator) performMigration(ctx context.Context, migrationID, migrationSQL string) error {
	if migrationSQL == "" {
		return errors.New("empty migration")
	}

	tx, err := m.txClient.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start tx: %w", err)
	}

	err = m.processMigration(ctx, tx, migrationID, migrationSQL)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("migration %s failed: %w", migrationID, err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	m.logger.WithField("migrationID", migrationID).Info(ctx, "migration executed successfully")
	return nil
}

func (m *Migrator) processMigration(ctx context.Context, client Client, migrationID, migrationSQL string) error {
	_, err := client.ExecContext(ctx, `INSERT INTO migration VALUES ($1)`, migrationID)
	if err != nil {
		return err
	}

	for _, query := range strings.Split(migrationSQL, querySeparator) {
		_, err = client.ExecContext(ctx, query)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Migrator) getPerformedMigrationIDs(ctx context.Context) (map[string]struct{}, error) {
	var ids []string
	err := m.txClient.SelectContext(ctx, &ids, `SELECT id FROM migration`)
	if err != nil {
		return nil, err
	}
	result := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		result[id] = struct{}{}
	}
	return result, nil
}
