// AngelaMos | 2026
// migrate.go

package core

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pressly/goose/v3"
)

const (
	migrationsDir      = "migrations"
	migrationTableName = "schema_migrations"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

type slogGooseLogger struct{}

func (slogGooseLogger) Printf(format string, v ...any) {
	slog.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrate")
}

func (slogGooseLogger) Fatalf(format string, v ...any) {
	slog.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "migrate")
}

func configureGoose() error {
	goose.SetBaseFS(migrationFS)
	goose.SetLogger(slogGooseLogger{})
	goose.SetTableName(migrationTableName)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return nil
}

// Migrate applies every pending embedded migration, including the role seed.
func Migrate(ctx context.Context, db *sql.DB) error {
	if err := configureGoose(); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	slog.Info("database schema up to date", "version", version)
	return nil
}

// Migrations lists the embedded migration versions in apply order.
func Migrations() ([]int64, error) {
	if err := configureGoose(); err != nil {
		return nil, err
	}

	migrations, err := goose.CollectMigrations(migrationsDir, 0, goose.MaxVersion)
	if err != nil {
		return nil, fmt.Errorf("collect migrations: %w", err)
	}

	versions := make([]int64, 0, len(migrations))
	for _, m := range migrations {
		versions = append(versions, m.Version)
	}
	return versions, nil
}
