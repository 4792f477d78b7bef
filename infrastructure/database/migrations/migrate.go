// Package migrations aplica o schema do banco com goose a partir dos arquivos SQL embutidos.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

const (
	postgresDialect = "postgres"
	migrationsDir   = "sql"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

// Up aplica todas as migrações pendentes
func Up(db *sql.DB) error {
	goose.SetBaseFS(migrationFiles)

	if err := goose.SetDialect(postgresDialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("run goose up migrations: %w", err)
	}

	return nil
}

// Files lista os arquivos de migração embutidos, em ordem
func Files() ([]string, error) {
	entries, err := migrationFiles.ReadDir(migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		files = append(files, entry.Name())
	}
	return files, nil
}
