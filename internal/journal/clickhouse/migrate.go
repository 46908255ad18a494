package clickhouse

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/clickhouse"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// Migrator applies the journal schema kept as golang-migrate files.
type Migrator struct {
	m      *migrate.Migrate
	logger *zap.Logger
}

// NewMigrator opens the migration source in dir against dsn. Multi-statement
// execution is enabled on the DSN unless it is already set, so one migration file
// may create several tables.
func NewMigrator(dsn, dir string, logger *zap.Logger) (*Migrator, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	sourceURL, err := migrationsSourceURL(dir)
	if err != nil {
		return nil, err
	}
	m, err := migrate.New(sourceURL, withMultiStatement(dsn))
	if err != nil {
		return nil, fmt.Errorf("init migrate: %w", err)
	}
	return &Migrator{m: m, logger: logger.Named("migrator")}, nil
}

// Up applies every pending migration. Nothing to apply is not an error.
func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.logger.Info("no migrations to apply")
			return nil
		}
		return fmt.Errorf("migrate up: %w", err)
	}
	m.logVersion("migrations applied")
	return nil
}

// Down reverts every applied migration.
func (m *Migrator) Down() error {
	if err := m.m.Down(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.logger.Info("no migrations to revert")
			return nil
		}
		return fmt.Errorf("migrate down: %w", err)
	}
	m.logger.Info("migrations reverted")
	return nil
}

func (m *Migrator) logVersion(msg string) {
	version, dirty, err := m.m.Version()
	if err != nil {
		m.logger.Info(msg)
		return
	}
	m.logger.Info(msg, zap.Uint("version", version), zap.Bool("dirty", dirty))
}

// Close releases the source and the database connection.
func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	if srcErr != nil {
		return fmt.Errorf("close migration source: %w", srcErr)
	}
	if dbErr != nil {
		return fmt.Errorf("close migration database: %w", dbErr)
	}
	return nil
}

func migrationsSourceURL(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve migrations dir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("stat migrations dir %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

func withMultiStatement(dsn string) string {
	if strings.Contains(dsn, "x-multi-statement=") {
		return dsn
	}
	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}
	return dsn + separator + "x-multi-statement=true"
}
