// Package migrations holds the database schema and applies it with golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var files embed.FS

// Up applies every pending "up" migration to db and reports whether anything changed.
// The migrate driver owns db afterwards and closes it, so pass a dedicated handle.
func Up(db *sql.DB) (applied bool, err error) {
	src, err := iofs.New(files, ".")
	if err != nil {
		return false, fmt.Errorf("open migration source: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return false, fmt.Errorf("create postgres migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return false, fmt.Errorf("create migrate instance: %w", err)
	}

	upErr := m.Up()
	srcErr, dbErr := m.Close()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return false, fmt.Errorf("apply migrations: %w", upErr)
	}
	if srcErr != nil {
		return false, fmt.Errorf("close migration source: %w", srcErr)
	}
	if dbErr != nil {
		return false, fmt.Errorf("close migration database: %w", dbErr)
	}

	return upErr == nil, nil
}
