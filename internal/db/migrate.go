package db

import (
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"coinloop/db/migrations"
)

// MigratePostgres applies all up migrations to the database at addr.
func MigratePostgres(addr string) error {
	driver, err := iofs.New(migrations.FS, migrations.Postgres)
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		return err
	}
	defer mg.Close()
	return run(mg)
}

// MigrateSQLite applies all up migrations through an already open handle.
// The handle is left open.
func MigrateSQLite(conn *sql.DB) error {
	driver, err := iofs.New(migrations.FS, migrations.SQLite)
	if err != nil {
		return err
	}
	defer driver.Close()

	var target database.Driver
	if target, err = sqlite.WithInstance(conn, &sqlite.Config{}); err != nil {
		return err
	}
	mg, err := migrate.NewWithInstance("iofs", driver, "sqlite", target)
	if err != nil {
		return err
	}
	return run(mg)
}

func run(mg *migrate.Migrate) error {
	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
